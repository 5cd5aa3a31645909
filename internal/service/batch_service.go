package service

import (
	"context"
	"fmt"
	"time"

	"exam-admin/internal/domain"
	"exam-admin/internal/dto"
	"exam-admin/internal/mapper"

	"go.uber.org/zap"
)

// BatchService runs one batch operation over a set of questions.
type BatchService interface {
	// Execute returns the action result and the success message.
	Execute(ctx context.Context, req dto.BatchRequest) (interface{}, string, error)
}

type batchService struct {
	questionRepo domain.QuestionRepository
	txManager    domain.TransactionManager
	cache        *ResponseCache
	logger       *zap.Logger
}

func NewBatchService(
	questionRepo domain.QuestionRepository,
	txManager domain.TransactionManager,
	cache *ResponseCache,
	logger *zap.Logger,
) BatchService {
	return &batchService{
		questionRepo: questionRepo,
		txManager:    txManager,
		cache:        cache,
		logger:       logger,
	}
}

// Execute validates req before touching storage. The whole batch runs in one transaction.
func (s *batchService) Execute(ctx context.Context, req dto.BatchRequest) (interface{}, string, error) {
	if req.Action == "" || len(req.QuestionIDs) == 0 {
		return nil, "", domain.NewInvalidRequestError("缺少必需的参数：action和questionIds")
	}

	var columns domain.Columns
	switch req.Action {
	case dto.BatchDelete, dto.BatchExport:
	case dto.BatchUpdate:
		if len(req.UpdateData) == 0 {
			return nil, "", domain.NewInvalidRequestError("批量更新需要提供updateData")
		}
		var err error
		if columns, err = mapper.BatchQuestionUpdates.Apply(req.UpdateData); err != nil {
			return nil, "", err
		}
		if len(columns) == 0 {
			return nil, "", domain.NewInvalidRequestError("批量更新需要提供updateData")
		}
	default:
		return nil, "", domain.NewInvalidRequestError("不支持的批量操作类型")
	}

	s.logger.Info("Starting batch operation",
		zap.String("action", req.Action),
		zap.Int("questions", len(req.QuestionIDs)))

	var (
		result  interface{}
		message string
	)
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		switch req.Action {
		case dto.BatchDelete:
			ids, err := s.questionRepo.DeleteMany(txCtx, req.QuestionIDs)
			if err != nil {
				return err
			}
			result = dto.BatchDeleteResult{DeletedCount: len(ids), DeletedIDs: ids}
			message = fmt.Sprintf("成功删除%d道题目", len(ids))
		case dto.BatchUpdate:
			ids, err := s.questionRepo.UpdateMany(txCtx, req.QuestionIDs, columns)
			if err != nil {
				return err
			}
			result = dto.BatchUpdateResult{UpdatedCount: len(ids), UpdatedIDs: ids}
			message = fmt.Sprintf("成功更新%d道题目", len(ids))
		case dto.BatchExport:
			rows, err := s.questionRepo.ListByIDs(txCtx, req.QuestionIDs)
			if err != nil {
				return err
			}
			export := make([]dto.ExportRow, 0, len(rows))
			for _, row := range rows {
				export = append(export, mapper.QuestionToExportRow(row))
			}
			result = dto.BatchExportResult{
				ExportData:  export,
				ExportCount: len(export),
				ExportTime:  dto.FormatTime(time.Now()),
			}
			message = fmt.Sprintf("成功导出%d道题目数据", len(export))
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Batch operation failed", zap.String("action", req.Action), zap.Error(err))
		return nil, "", storageError("批量操作失败", err)
	}

	if req.Action != dto.BatchExport {
		s.cache.Invalidate(ctx)
	}
	s.logger.Info("Batch operation finished", zap.String("action", req.Action), zap.String("result", message))
	return result, message, nil
}
