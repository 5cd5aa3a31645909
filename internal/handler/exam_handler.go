package handler

import (
	"exam-admin/internal/domain"
	"exam-admin/internal/dto"
	"exam-admin/internal/middleware"
	"exam-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ExamHandler handles exam HTTP requests
type ExamHandler struct {
	service   service.ExamService
	countMode domain.CountMode
}

func NewExamHandler(service service.ExamService, countMode domain.CountMode) *ExamHandler {
	return &ExamHandler{service: service, countMode: countMode}
}

// ListExams godoc
// @Summary List exams
// @Description Returns a filtered, ordered page of exams with per-subject question counts
// @Tags exams
// @Produce json
// @Param organizationId query string false "Organization ID"
// @Param examType query string false "Exam type"
// @Param gradeLevel query string false "Grade level"
// @Param status query string false "Status"
// @Param difficultyLevel query string false "Difficulty level"
// @Param search query string false "Substring of name, description or exam code"
// @Param startDate query string false "Earliest start date (YYYY-MM-DD)"
// @Param endDate query string false "Latest end date (YYYY-MM-DD)"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.SuccessResponse{data=dto.ExamListResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams [get]
func (h *ExamHandler) ListExams(c *fiber.Ctx) error {
	resp, err := h.service.ListExams(c.UserContext(), examFilter(c), pageRequest(c, h.countMode))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(resp, ""))
}

// GetExam godoc
// @Summary Get an exam
// @Tags exams
// @Produce json
// @Param id path string true "Exam ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.ExamResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id} [get]
func (h *ExamHandler) GetExam(c *fiber.Ctx) error {
	resp, err := h.service.GetExam(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(resp, ""))
}

// GetExamOverview godoc
// @Summary Exam overview
// @Description Exam header with subject, difficulty and type distributions of its published questions
// @Tags exams
// @Produce json
// @Param id path string true "Exam ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.ExamOverviewResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id}/overview [get]
func (h *ExamHandler) GetExamOverview(c *fiber.Ctx) error {
	resp, err := h.service.GetExamOverview(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(resp, ""))
}

// CreateExam godoc
// @Summary Create an exam
// @Tags exams
// @Accept json
// @Produce json
// @Param exam body dto.ExamRequest true "Exam"
// @Success 201 {object} dto.SuccessResponse{data=dto.ExamResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams [post]
func (h *ExamHandler) CreateExam(c *fiber.Ctx) error {
	body, err := middleware.Body(c)
	if err != nil {
		return err
	}
	resp, err := h.service.CreateExam(c.UserContext(), body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSuccessResponse(resp, "考试创建成功"))
}

// ReplaceExam godoc
// @Summary Replace an exam
// @Tags exams
// @Accept json
// @Produce json
// @Param id path string true "Exam ID"
// @Param exam body dto.ExamRequest true "Exam"
// @Success 200 {object} dto.SuccessResponse{data=dto.ExamResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id} [put]
func (h *ExamHandler) ReplaceExam(c *fiber.Ctx) error {
	return h.update(c, true)
}

// PatchExam godoc
// @Summary Partially update an exam
// @Tags exams
// @Accept json
// @Produce json
// @Param id path string true "Exam ID"
// @Param exam body object true "Fields to change"
// @Success 200 {object} dto.SuccessResponse{data=dto.ExamResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id} [patch]
func (h *ExamHandler) PatchExam(c *fiber.Ctx) error {
	return h.update(c, false)
}

func (h *ExamHandler) update(c *fiber.Ctx, full bool) error {
	body, err := middleware.Body(c)
	if err != nil {
		return err
	}
	resp, err := h.service.UpdateExam(c.UserContext(), c.Params("id"), body, full)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(resp, "考试更新成功"))
}

// DeleteExam godoc
// @Summary Delete an exam
// @Description Refused while questions belong to the exam
// @Tags exams
// @Produce json
// @Param id path string true "Exam ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /exams/{id} [delete]
func (h *ExamHandler) DeleteExam(c *fiber.Ctx) error {
	if err := h.service.DeleteExam(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(nil, "考试删除成功"))
}
