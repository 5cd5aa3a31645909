package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"exam-admin/internal/domain"
	"exam-admin/internal/dto"
	"exam-admin/internal/repository/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBatchService() (BatchService, *MockQuestionRepository, *MockTransactionManager, *MockCache) {
	repo := new(MockQuestionRepository)
	tx := new(MockTransactionManager)
	cache := new(MockCache)
	return NewBatchService(repo, tx, NewResponseCache(cache, time.Minute), zap.NewNop()), repo, tx, cache
}

func TestBatchService_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.BatchRequest
		message string
	}{
		{"MissingAction", dto.BatchRequest{QuestionIDs: []string{"q1"}}, "缺少必需的参数：action和questionIds"},
		{"EmptyIDs", dto.BatchRequest{Action: dto.BatchDelete}, "缺少必需的参数：action和questionIds"},
		{"UpdateWithoutData", dto.BatchRequest{Action: dto.BatchUpdate, QuestionIDs: []string{"q1"}}, "批量更新需要提供updateData"},
		{"UpdateWithOnlyUnknownFields", dto.BatchRequest{
			Action:      dto.BatchUpdate,
			QuestionIDs: []string{"q1"},
			UpdateData:  map[string]json.RawMessage{"questionText": json.RawMessage(`"x"`)},
		}, "批量更新需要提供updateData"},
		{"UnknownAction", dto.BatchRequest{Action: "archive", QuestionIDs: []string{"q1"}}, "不支持的批量操作类型"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, tx, _ := newTestBatchService()

			_, _, err := svc.Execute(context.Background(), tt.req)

			require.Error(t, err)
			assert.True(t, domain.IsCode(err, domain.CodeValidation))
			assert.Equal(t, tt.message, err.Error())
			tx.AssertNotCalled(t, "WithTransaction", mock.Anything)
			assert.Empty(t, repo.Calls)
		})
	}
}

func TestBatchService_Execute_Delete(t *testing.T) {
	svc, repo, tx, cache := newTestBatchService()
	ctx := context.Background()
	tx.On("WithTransaction", ctx).Once()
	repo.On("DeleteMany", ctx, []string{"q1", "q2", "q3"}).Return([]string{"q1", "q3"}, nil).Once()
	cache.On("DeleteByPrefix", ctx, "examadmin:statistics:").Return(nil).Once()

	result, message, err := svc.Execute(ctx, dto.BatchRequest{Action: dto.BatchDelete, QuestionIDs: []string{"q1", "q2", "q3"}})

	require.NoError(t, err)
	assert.Equal(t, dto.BatchDeleteResult{DeletedCount: 2, DeletedIDs: []string{"q1", "q3"}}, result)
	assert.Equal(t, "成功删除2道题目", message)
	cache.AssertExpectations(t)
}

func TestBatchService_Execute_Update(t *testing.T) {
	svc, repo, tx, cache := newTestBatchService()
	ctx := context.Background()
	tx.On("WithTransaction", ctx).Once()
	repo.On("UpdateMany", ctx, []string{"q1"}, domain.Columns{"status": "published"}).Return([]string{"q1"}, nil).Once()
	cache.On("DeleteByPrefix", ctx, mock.Anything).Return(nil).Once()

	result, message, err := svc.Execute(ctx, dto.BatchRequest{
		Action:      dto.BatchUpdate,
		QuestionIDs: []string{"q1"},
		UpdateData:  map[string]json.RawMessage{"status": json.RawMessage(`"published"`), "questionText": json.RawMessage(`"ignored"`)},
	})

	require.NoError(t, err)
	assert.Equal(t, dto.BatchUpdateResult{UpdatedCount: 1, UpdatedIDs: []string{"q1"}}, result)
	assert.Equal(t, "成功更新1道题目", message)
}

func TestBatchService_Execute_Export(t *testing.T) {
	svc, repo, tx, cache := newTestBatchService()
	ctx := context.Background()
	tx.On("WithTransaction", ctx).Once()
	repo.On("ListByIDs", ctx, []string{"q1"}).Return([]models.Question{{
		ID: "q1", Subject: "日语", QuestionType: "单选题", QuestionText: "次の文を読んでください",
		KnowledgePoints: models.StringSlice{"助词", "敬语"},
	}}, nil).Once()

	result, message, err := svc.Execute(ctx, dto.BatchRequest{Action: dto.BatchExport, QuestionIDs: []string{"q1"}})

	require.NoError(t, err)
	export, ok := result.(dto.BatchExportResult)
	require.True(t, ok)
	assert.Equal(t, 1, export.ExportCount)
	assert.Equal(t, "助词, 敬语", export.ExportData[0].KnowledgePoints)
	assert.NotEmpty(t, export.ExportTime)
	assert.Equal(t, "成功导出1道题目数据", message)
	cache.AssertNotCalled(t, "DeleteByPrefix", mock.Anything, mock.Anything)
}

func TestBatchService_Execute_StorageErrorAbortsBatch(t *testing.T) {
	svc, repo, tx, cache := newTestBatchService()
	ctx := context.Background()
	tx.On("WithTransaction", ctx).Once()
	repo.On("DeleteMany", ctx, mock.Anything).Return(nil, errors.New("deadlock detected")).Once()

	_, _, err := svc.Execute(ctx, dto.BatchRequest{Action: dto.BatchDelete, QuestionIDs: []string{"q1"}})

	assert.True(t, domain.IsCode(err, domain.CodeDatabase))
	cache.AssertNotCalled(t, "DeleteByPrefix", mock.Anything, mock.Anything)
}
