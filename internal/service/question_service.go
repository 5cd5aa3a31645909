package service

import (
	"context"
	"encoding/json"

	"exam-admin/internal/domain"
	"exam-admin/internal/dto"
	"exam-admin/internal/logger"
	"exam-admin/internal/mapper"
	"exam-admin/internal/util"
	"exam-admin/internal/validation"

	"go.uber.org/zap"
)

// QuestionService defines the question use cases.
type QuestionService interface {
	ListQuestions(ctx context.Context, filter domain.QuestionFilter, page domain.PageRequest) (*dto.QuestionListResponse, error)
	GetQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error)
	CreateQuestion(ctx context.Context, body map[string]json.RawMessage) (*dto.QuestionResponse, error)
	UpdateQuestion(ctx context.Context, id string, body map[string]json.RawMessage, full bool) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id string) error
}

type questionService struct {
	repo      domain.QuestionRepository
	validator *validation.Validator
	cache     *ResponseCache
}

func NewQuestionService(repo domain.QuestionRepository, validator *validation.Validator, cache *ResponseCache) QuestionService {
	return &questionService{repo: repo, validator: validator, cache: cache}
}

func (s *questionService) ListQuestions(ctx context.Context, filter domain.QuestionFilter, page domain.PageRequest) (*dto.QuestionListResponse, error) {
	rows, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		logger.Get().Error("Failed to list questions", zap.Error(err))
		return nil, storageError("查询题目失败", err)
	}
	items := make([]dto.QuestionResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapper.QuestionToResponse(row))
	}
	return &dto.QuestionListResponse{
		Items:      items,
		Pagination: domain.NewPagination(page, total, len(rows)),
	}, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.Get().Error("Failed to get question", zap.String("id", id), zap.Error(err))
		return nil, storageError("查询题目失败", err)
	}
	if row == nil {
		return nil, domain.NewNotFoundError("题目不存在")
	}
	resp := mapper.QuestionToResponse(*row)
	return &resp, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, body map[string]json.RawMessage) (*dto.QuestionResponse, error) {
	if err := s.validator.ValidateQuestion(body); err != nil {
		return nil, err
	}
	columns, err := mapper.Questions.Apply(body)
	if err != nil {
		return nil, err
	}
	columns = mapper.WithDefaults(columns, mapper.QuestionDefaults())
	id := util.NewULID()
	columns["id"] = id

	if err := s.repo.Create(ctx, columns); err != nil {
		logger.Get().Error("Failed to create question", zap.Error(err))
		return nil, storageError("创建题目失败", err)
	}
	s.cache.Invalidate(ctx)
	logger.Get().Info("Question created", zap.String("id", id))
	return s.GetQuestion(ctx, id)
}

func (s *questionService) UpdateQuestion(ctx context.Context, id string, body map[string]json.RawMessage, full bool) (*dto.QuestionResponse, error) {
	if full {
		if err := s.validator.ValidateQuestion(body); err != nil {
			return nil, err
		}
	}
	columns, err := mapper.Questions.Apply(body)
	if err != nil {
		return nil, err
	}

	found, err := s.repo.Update(ctx, id, columns)
	if err != nil {
		logger.Get().Error("Failed to update question", zap.String("id", id), zap.Error(err))
		return nil, storageError("更新题目失败", err)
	}
	if !found {
		return nil, domain.NewNotFoundError("题目不存在")
	}
	s.cache.Invalidate(ctx)
	return s.GetQuestion(ctx, id)
}

// DeleteQuestion is unconditional; nothing references a question.
func (s *questionService) DeleteQuestion(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Get().Error("Failed to delete question", zap.String("id", id), zap.Error(err))
		return storageError("删除题目失败", err)
	}
	s.cache.Invalidate(ctx)
	logger.Get().Info("Question deleted", zap.String("id", id))
	return nil
}
