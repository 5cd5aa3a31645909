package handler

import (
	"exam-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler of the API.
type Handlers struct {
	Organization *OrganizationHandler
	Exam         *ExamHandler
	Question     *QuestionHandler
	Search       *SearchHandler
	Health       *HealthHandler
}

// Register mounts the API under /api and the health check at /health.
func (h Handlers) Register(app *fiber.App) {
	if h.Health != nil {
		app.Get("/health", h.Health.Health)
	}

	api := app.Group("/api")
	body := middleware.JSONBody()

	orgs := api.Group("/organizations")
	orgs.Get("/", h.Organization.ListOrganizations)
	orgs.Post("/", body, h.Organization.CreateOrganization)
	orgs.Get("/:id", h.Organization.GetOrganization)
	orgs.Put("/:id", body, h.Organization.ReplaceOrganization)
	orgs.Patch("/:id", body, h.Organization.PatchOrganization)
	orgs.Delete("/:id", h.Organization.DeleteOrganization)

	exams := api.Group("/exams")
	exams.Get("/", h.Exam.ListExams)
	exams.Post("/", body, h.Exam.CreateExam)
	exams.Get("/:id/overview", h.Exam.GetExamOverview)
	exams.Get("/:id", h.Exam.GetExam)
	exams.Put("/:id", body, h.Exam.ReplaceExam)
	exams.Patch("/:id", body, h.Exam.PatchExam)
	exams.Delete("/:id", h.Exam.DeleteExam)

	// Static segments are registered before /:id.
	questions := api.Group("/questions")
	questions.Get("/", h.Question.ListQuestions)
	questions.Post("/", body, h.Question.CreateQuestion)
	questions.Post("/batch", body, h.Question.BatchQuestions)
	questions.Get("/japanese/statistics", h.Question.GetJapaneseStatistics)
	questions.Get("/:id", h.Question.GetQuestion)
	questions.Put("/:id", body, h.Question.ReplaceQuestion)
	questions.Patch("/:id", body, h.Question.PatchQuestion)
	questions.Delete("/:id", h.Question.DeleteQuestion)

	search := api.Group("/search")
	search.Get("/questions", h.Search.SearchQuestions)
	search.Get("/knowledge-points", h.Search.SearchKnowledgePoints)

	api.Get("/statistics/overview", h.Search.GetOverview)
}
