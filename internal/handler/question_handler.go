package handler

import (
	"encoding/json"

	"exam-admin/internal/domain"
	"exam-admin/internal/dto"
	"exam-admin/internal/middleware"
	"exam-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles question HTTP requests, including batch operations
// and the Japanese statistics view.
type QuestionHandler struct {
	service    service.QuestionService
	batch      service.BatchService
	statistics service.StatisticsService
	countMode  domain.CountMode
}

func NewQuestionHandler(
	service service.QuestionService,
	batch service.BatchService,
	statistics service.StatisticsService,
	countMode domain.CountMode,
) *QuestionHandler {
	return &QuestionHandler{
		service:    service,
		batch:      batch,
		statistics: statistics,
		countMode:  countMode,
	}
}

// ListQuestions godoc
// @Summary List questions
// @Tags questions
// @Produce json
// @Param examId query string false "Exam ID"
// @Param organizationId query string false "Organization ID"
// @Param subject query string false "Subject"
// @Param questionType query string false "Question type"
// @Param difficultyLevel query string false "Difficulty level"
// @Param vocabularyLevel query string false "Japanese vocabulary level"
// @Param status query string false "Status"
// @Param hasAudio query bool false "Only questions with (true) or without (false) audio"
// @Param search query string false "Substring of question text, Japanese text or reference answer"
// @Param knowledgePoints query string false "Comma separated knowledge points, all required"
// @Param tags query string false "Comma separated tags, all required"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.SuccessResponse{data=dto.QuestionListResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	resp, err := h.service.ListQuestions(c.UserContext(), questionFilter(c), pageRequest(c, h.countMode))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(resp, ""))
}

// GetQuestion godoc
// @Summary Get a question
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.QuestionResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	resp, err := h.service.GetQuestion(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(resp, ""))
}

// CreateQuestion godoc
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionRequest true "Question"
// @Success 201 {object} dto.SuccessResponse{data=dto.QuestionResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	body, err := middleware.Body(c)
	if err != nil {
		return err
	}
	resp, err := h.service.CreateQuestion(c.UserContext(), body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSuccessResponse(resp, "题目创建成功"))
}

// ReplaceQuestion godoc
// @Summary Replace a question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param question body dto.QuestionRequest true "Question"
// @Success 200 {object} dto.SuccessResponse{data=dto.QuestionResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [put]
func (h *QuestionHandler) ReplaceQuestion(c *fiber.Ctx) error {
	return h.update(c, true)
}

// PatchQuestion godoc
// @Summary Partially update a question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param question body object true "Fields to change"
// @Success 200 {object} dto.SuccessResponse{data=dto.QuestionResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [patch]
func (h *QuestionHandler) PatchQuestion(c *fiber.Ctx) error {
	return h.update(c, false)
}

func (h *QuestionHandler) update(c *fiber.Ctx, full bool) error {
	body, err := middleware.Body(c)
	if err != nil {
		return err
	}
	resp, err := h.service.UpdateQuestion(c.UserContext(), c.Params("id"), body, full)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(resp, "题目更新成功"))
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	if err := h.service.DeleteQuestion(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(nil, "题目删除成功"))
}

// BatchQuestions godoc
// @Summary Batch question operation
// @Description Deletes, updates or exports a set of questions in one transaction
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.BatchRequest true "Batch request"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions/batch [post]
func (h *QuestionHandler) BatchQuestions(c *fiber.Ctx) error {
	body, err := middleware.Body(c)
	if err != nil {
		return err
	}
	req, err := decodeBatchRequest(body)
	if err != nil {
		return err
	}
	result, message, err := h.batch.Execute(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(result, message))
}

// decodeBatchRequest treats fields of the wrong type as missing.
func decodeBatchRequest(body map[string]json.RawMessage) (dto.BatchRequest, error) {
	var req dto.BatchRequest
	_ = json.Unmarshal(body["action"], &req.Action)
	_ = json.Unmarshal(body["questionIds"], &req.QuestionIDs)
	if raw, ok := body["updateData"]; ok {
		if err := json.Unmarshal(raw, &req.UpdateData); err != nil {
			return req, domain.NewInvalidRequestError("批量更新需要提供updateData")
		}
	}
	return req, nil
}

// GetJapaneseStatistics godoc
// @Summary Japanese question statistics
// @Description Distributions over published Japanese questions
// @Tags questions
// @Produce json
// @Param examId query string false "Exam ID"
// @Param organizationId query string false "Organization ID"
// @Param vocabularyLevel query string false "Vocabulary level"
// @Success 200 {object} dto.SuccessResponse{data=dto.JapaneseStatisticsResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions/japanese/statistics [get]
func (h *QuestionHandler) GetJapaneseStatistics(c *fiber.Ctx) error {
	resp, err := h.statistics.GetJapaneseStatistics(c.UserContext(), domain.QuestionFacetFilter{
		ExamID:          query(c, "examId"),
		OrganizationID:  query(c, "organizationId"),
		VocabularyLevel: query(c, "vocabularyLevel"),
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(resp, ""))
}
