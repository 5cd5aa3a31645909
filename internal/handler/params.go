package handler

import (
	"strings"

	"exam-admin/internal/domain"
	"exam-admin/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// pageRequest reads page and pageSize from the query string.
func pageRequest(c *fiber.Ctx, mode domain.CountMode) domain.PageRequest {
	return domain.NewPageRequest(c.Query("page"), c.Query("pageSize"), mode)
}

func sortFor(c *fiber.Ctx, table *mapper.Table) domain.Sort {
	return table.Sort(c.Query("sortBy"), c.Query("sortOrder"))
}

// query returns the trimmed query value.
func query(c *fiber.Ctx, name string) string {
	return strings.TrimSpace(c.Query(name))
}

// optionalBool is nil unless the value is "true" or "false".
func optionalBool(raw string) *bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}

func organizationFilter(c *fiber.Ctx) domain.OrganizationFilter {
	return domain.OrganizationFilter{
		Search: query(c, "search"),
		Region: query(c, "region"),
		Status: query(c, "status"),
		Sort:   sortFor(c, mapper.Organizations),
	}
}

func examFilter(c *fiber.Ctx) domain.ExamFilter {
	return domain.ExamFilter{
		OrganizationID:  query(c, "organizationId"),
		ExamType:        query(c, "examType"),
		GradeLevel:      query(c, "gradeLevel"),
		Status:          query(c, "status"),
		DifficultyLevel: query(c, "difficultyLevel"),
		Search:          query(c, "search"),
		StartDate:       query(c, "startDate"),
		EndDate:         query(c, "endDate"),
		Sort:            sortFor(c, mapper.Exams),
	}
}

func questionFilter(c *fiber.Ctx) domain.QuestionFilter {
	return domain.QuestionFilter{
		ExamID:          query(c, "examId"),
		OrganizationID:  query(c, "organizationId"),
		Subject:         query(c, "subject"),
		QuestionType:    query(c, "questionType"),
		DifficultyLevel: query(c, "difficultyLevel"),
		VocabularyLevel: query(c, "vocabularyLevel"),
		Status:          query(c, "status"),
		HasAudio:        optionalBool(c.Query("hasAudio")),
		Search:          query(c, "search"),
		KnowledgePoints: domain.SplitList(c.Query("knowledgePoints")),
		Tags:            domain.SplitList(c.Query("tags")),
		Sort:            sortFor(c, mapper.Questions),
	}
}
