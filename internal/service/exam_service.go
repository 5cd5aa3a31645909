package service

import (
	"context"
	"encoding/json"
	"errors"

	"exam-admin/internal/cache"
	"exam-admin/internal/domain"
	"exam-admin/internal/dto"
	"exam-admin/internal/logger"
	"exam-admin/internal/mapper"
	"exam-admin/internal/util"
	"exam-admin/internal/validation"

	"go.uber.org/zap"
)

// ExamService defines the exam use cases.
type ExamService interface {
	ListExams(ctx context.Context, filter domain.ExamFilter, page domain.PageRequest) (*dto.ExamListResponse, error)
	GetExam(ctx context.Context, id string) (*dto.ExamResponse, error)
	CreateExam(ctx context.Context, body map[string]json.RawMessage) (*dto.ExamResponse, error)
	UpdateExam(ctx context.Context, id string, body map[string]json.RawMessage, full bool) (*dto.ExamResponse, error)
	DeleteExam(ctx context.Context, id string) error
	// GetExamOverview aggregates the published questions of one exam.
	GetExamOverview(ctx context.Context, id string) (*dto.ExamOverviewResponse, error)
}

type examService struct {
	repo         domain.ExamRepository
	questionRepo domain.QuestionRepository
	txManager    domain.TransactionManager
	validator    *validation.Validator
	cache        *ResponseCache
}

func NewExamService(
	repo domain.ExamRepository,
	questionRepo domain.QuestionRepository,
	txManager domain.TransactionManager,
	validator *validation.Validator,
	cache *ResponseCache,
) ExamService {
	return &examService{
		repo:         repo,
		questionRepo: questionRepo,
		txManager:    txManager,
		validator:    validator,
		cache:        cache,
	}
}

func (s *examService) ListExams(ctx context.Context, filter domain.ExamFilter, page domain.PageRequest) (*dto.ExamListResponse, error) {
	rows, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		logger.Get().Error("Failed to list exams", zap.Error(err))
		return nil, storageError("查询考试失败", err)
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	counts := map[string]map[string]int64{}
	if len(ids) > 0 {
		subjectRows, err := s.repo.SubjectCounts(ctx, ids)
		if err != nil {
			logger.Get().Error("Failed to count exam questions", zap.Error(err))
			return nil, storageError("查询考试题目统计失败", err)
		}
		counts = mapper.SubjectCountsByExam(subjectRows)
	}

	items := make([]dto.ExamResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapper.ExamToResponse(row, counts[row.ID]))
	}
	return &dto.ExamListResponse{
		Items:      items,
		Pagination: domain.NewPagination(page, total, len(rows)),
	}, nil
}

func (s *examService) GetExam(ctx context.Context, id string) (*dto.ExamResponse, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.Get().Error("Failed to get exam", zap.String("id", id), zap.Error(err))
		return nil, storageError("查询考试失败", err)
	}
	if row == nil {
		return nil, domain.NewNotFoundError("考试不存在")
	}
	subjectRows, err := s.repo.SubjectCounts(ctx, []string{id})
	if err != nil {
		logger.Get().Error("Failed to count exam questions", zap.String("id", id), zap.Error(err))
		return nil, storageError("查询考试题目统计失败", err)
	}
	resp := mapper.ExamToResponse(*row, mapper.SubjectCountsByExam(subjectRows)[id])
	return &resp, nil
}

func (s *examService) CreateExam(ctx context.Context, body map[string]json.RawMessage) (*dto.ExamResponse, error) {
	if err := s.validator.ValidateExam(body); err != nil {
		return nil, err
	}
	columns, err := mapper.Exams.Apply(body)
	if err != nil {
		return nil, err
	}
	columns = mapper.WithDefaults(columns, mapper.ExamDefaults())
	id := util.NewULID()
	columns["id"] = id

	if err := s.repo.Create(ctx, columns); err != nil {
		logger.Get().Error("Failed to create exam", zap.Error(err))
		return nil, storageError("创建考试失败", err)
	}
	s.cache.Invalidate(ctx)
	logger.Get().Info("Exam created", zap.String("id", id))
	return s.GetExam(ctx, id)
}

func (s *examService) UpdateExam(ctx context.Context, id string, body map[string]json.RawMessage, full bool) (*dto.ExamResponse, error) {
	if full {
		if err := s.validator.ValidateExam(body); err != nil {
			return nil, err
		}
	}
	columns, err := mapper.Exams.Apply(body)
	if err != nil {
		return nil, err
	}

	found, err := s.repo.Update(ctx, id, columns)
	if err != nil {
		logger.Get().Error("Failed to update exam", zap.String("id", id), zap.Error(err))
		return nil, storageError("更新考试失败", err)
	}
	if !found {
		return nil, domain.NewNotFoundError("考试不存在")
	}
	s.cache.Invalidate(ctx)
	return s.GetExam(ctx, id)
}

func (s *examService) DeleteExam(ctx context.Context, id string) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	})
	if errors.Is(err, domain.ErrReferenced) {
		return domain.NewConflictError("无法删除考试，存在关联的题目")
	}
	if err != nil {
		logger.Get().Error("Failed to delete exam", zap.String("id", id), zap.Error(err))
		return storageError("删除考试失败", err)
	}
	s.cache.Invalidate(ctx)
	logger.Get().Info("Exam deleted", zap.String("id", id))
	return nil
}

func (s *examService) GetExamOverview(ctx context.Context, id string) (*dto.ExamOverviewResponse, error) {
	key := cache.GenerateCacheKey(StatisticsCacheService, "exam_overview", id)
	return readThrough(ctx, s.cache, key, func(ctx context.Context) (*dto.ExamOverviewResponse, error) {
		exam, err := s.repo.GetByID(ctx, id)
		if err != nil {
			logger.Get().Error("Failed to get exam for overview", zap.String("id", id), zap.Error(err))
			return nil, storageError("查询考试失败", err)
		}
		if exam == nil {
			return nil, domain.NewNotFoundError("考试不存在")
		}

		facets, err := s.questionRepo.Facets(ctx, domain.QuestionFacetFilter{ExamID: id})
		if err != nil {
			logger.Get().Error("Failed to load exam question facets", zap.String("id", id), zap.Error(err))
			return nil, storageError("查询题目统计失败", err)
		}

		subjects := make([]string, 0, len(domain.Subjects))
		for _, subject := range domain.Subjects {
			subjects = append(subjects, string(subject))
		}
		resp := &dto.ExamOverviewResponse{
			ID:                     exam.ID,
			ExamCode:               exam.ExamCode,
			ExamName:               exam.Name,
			OrganizationName:       util.NullStringPtr(exam.OrganizationName),
			StartDate:              exam.StartDate.Ptr(),
			EndDate:                exam.EndDate.Ptr(),
			GradeLevel:             util.NullStringPtr(exam.GradeLevel),
			ExamType:               util.NullStringPtr(exam.ExamType),
			TotalQuestions:         len(facets),
			SubjectStatistics:      dto.NewOrderedCounts(subjects...),
			DifficultyDistribution: dto.NewOrderedCounts(domain.DifficultyLevels...),
			TypeDistribution:       dto.NewOrderedCounts(),
		}
		for _, f := range facets {
			if resp.SubjectStatistics.Has(f.Subject) {
				resp.SubjectStatistics.Inc(f.Subject)
			}
			if f.DifficultyLevel.Valid && resp.DifficultyDistribution.Has(f.DifficultyLevel.String) {
				resp.DifficultyDistribution.Inc(f.DifficultyLevel.String)
			}
			if f.QuestionType != "" {
				resp.TypeDistribution.Inc(f.QuestionType)
			}
		}
		return resp, nil
	})
}
