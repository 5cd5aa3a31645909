package service

import (
	"context"
	"testing"
	"time"

	"exam-admin/internal/domain"
	"exam-admin/internal/repository/models"
	"exam-admin/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestQuestionService() (QuestionService, *MockQuestionRepository, *MockCache) {
	repo := new(MockQuestionRepository)
	cache := new(MockCache)
	return NewQuestionService(repo, validation.NewValidator(), NewResponseCache(cache, time.Minute)), repo, cache
}

func TestQuestionService_CreateQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("ChoiceQuestionNeedsOptions", func(t *testing.T) {
		svc, repo, _ := newTestQuestionService()

		_, err := svc.CreateQuestion(ctx, decode(t, `{"organizationId":"o1","examId":"e1","subject":"数学","questionType":"单选题","questionText":"下列哪个是偶数？","options":[{"label":"A","content":"2"}]}`))

		assert.True(t, domain.IsCode(err, domain.CodeValidation))
		assert.Contains(t, domain.ValidationMessages(err), "选择题必须至少有2个选项")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("StoresJSONColumnsAndDefaults", func(t *testing.T) {
		svc, repo, cache := newTestQuestionService()
		repo.On("Create", ctx, mock.MatchedBy(func(c domain.Columns) bool {
			return c["status"] == domain.StatusDraft && c["subject"] == "日语" && c["vocabulary_level"] == "N3"
		})).Return(nil).Once()
		repo.On("GetByID", ctx, mock.Anything).Return(&models.Question{
			ID: "q1", Subject: "日语", QuestionType: "解答题", QuestionText: "次の文を訳しなさい", Status: domain.StatusDraft,
		}, nil).Once()
		cache.On("DeleteByPrefix", ctx, mock.Anything).Return(nil).Once()

		resp, err := svc.CreateQuestion(ctx, decode(t, `{"organizationId":"o1","examId":"e1","subject":"日语","questionType":"解答题","questionText":"次の文を訳しなさい","vocabularyLevel":"N3","tags":["翻译"]}`))

		require.NoError(t, err)
		assert.Equal(t, "q1", resp.ID)
		assert.Empty(t, resp.Options)
		assert.NotNil(t, resp.Options)
		repo.AssertExpectations(t)
	})
}

func TestQuestionService_UpdateQuestion_TypeMismatch(t *testing.T) {
	svc, repo, _ := newTestQuestionService()

	_, err := svc.UpdateQuestion(context.Background(), "q1", decode(t, `{"totalScore":"ten"}`), false)

	assert.True(t, domain.IsCode(err, domain.CodeValidation))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuestionService_DeleteQuestion_MissingIsIdempotent(t *testing.T) {
	svc, repo, cache := newTestQuestionService()
	ctx := context.Background()
	repo.On("Delete", ctx, "missing").Return(nil).Once()
	cache.On("DeleteByPrefix", ctx, mock.Anything).Return(nil).Once()

	assert.NoError(t, svc.DeleteQuestion(ctx, "missing"))
	repo.AssertExpectations(t)
}
