package handler

import (
	"exam-admin/internal/domain"
	"exam-admin/internal/dto"
	"exam-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SearchHandler serves the search and statistics endpoints.
type SearchHandler struct {
	search     service.SearchService
	statistics service.StatisticsService
	countMode  domain.CountMode
}

func NewSearchHandler(search service.SearchService, statistics service.StatisticsService, countMode domain.CountMode) *SearchHandler {
	return &SearchHandler{search: search, statistics: statistics, countMode: countMode}
}

// SearchQuestions godoc
// @Summary Search published questions
// @Tags search
// @Produce json
// @Param q query string true "Keyword"
// @Param subject query string false "Subject"
// @Param examId query string false "Exam ID"
// @Param difficultyLevel query string false "Difficulty level"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.SuccessResponse{data=dto.SearchQuestionsResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /search/questions [get]
func (h *SearchHandler) SearchQuestions(c *fiber.Ctx) error {
	resp, err := h.search.SearchQuestions(c.UserContext(), domain.QuestionSearch{
		Query:           c.Query("q"),
		Subject:         query(c, "subject"),
		ExamID:          query(c, "examId"),
		DifficultyLevel: query(c, "difficultyLevel"),
	}, pageRequest(c, h.countMode))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(resp, ""))
}

// SearchKnowledgePoints godoc
// @Summary Search knowledge points
// @Description Knowledge points of published questions containing the keyword, most frequent first
// @Tags search
// @Produce json
// @Param q query string true "Keyword"
// @Param subject query string false "Subject"
// @Success 200 {object} dto.SuccessResponse{data=dto.KnowledgePointsResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /search/knowledge-points [get]
func (h *SearchHandler) SearchKnowledgePoints(c *fiber.Ctx) error {
	resp, err := h.statistics.SearchKnowledgePoints(c.UserContext(), c.Query("q"), query(c, "subject"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(resp, ""))
}

// GetOverview godoc
// @Summary System overview
// @Tags statistics
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=dto.OverviewResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /statistics/overview [get]
func (h *SearchHandler) GetOverview(c *fiber.Ctx) error {
	resp, err := h.statistics.GetOverview(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(resp, ""))
}
