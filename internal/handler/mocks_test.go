package handler

import (
	"context"
	"encoding/json"

	"exam-admin/internal/domain"
	"exam-admin/internal/dto"

	"github.com/stretchr/testify/mock"
)

type MockOrganizationService struct {
	mock.Mock
}

func (m *MockOrganizationService) ListOrganizations(ctx context.Context, f domain.OrganizationFilter, p domain.PageRequest) (*dto.OrganizationListResponse, error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OrganizationListResponse), args.Error(1)
}

func (m *MockOrganizationService) GetOrganization(ctx context.Context, id string) (*dto.OrganizationResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OrganizationResponse), args.Error(1)
}

func (m *MockOrganizationService) CreateOrganization(ctx context.Context, body map[string]json.RawMessage) (*dto.OrganizationResponse, error) {
	args := m.Called(ctx, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OrganizationResponse), args.Error(1)
}

func (m *MockOrganizationService) UpdateOrganization(ctx context.Context, id string, body map[string]json.RawMessage, full bool) (*dto.OrganizationResponse, error) {
	args := m.Called(ctx, id, body, full)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OrganizationResponse), args.Error(1)
}

func (m *MockOrganizationService) DeleteOrganization(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockExamService struct {
	mock.Mock
}

func (m *MockExamService) ListExams(ctx context.Context, f domain.ExamFilter, p domain.PageRequest) (*dto.ExamListResponse, error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExamListResponse), args.Error(1)
}

func (m *MockExamService) GetExam(ctx context.Context, id string) (*dto.ExamResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExamResponse), args.Error(1)
}

func (m *MockExamService) CreateExam(ctx context.Context, body map[string]json.RawMessage) (*dto.ExamResponse, error) {
	args := m.Called(ctx, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExamResponse), args.Error(1)
}

func (m *MockExamService) UpdateExam(ctx context.Context, id string, body map[string]json.RawMessage, full bool) (*dto.ExamResponse, error) {
	args := m.Called(ctx, id, body, full)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExamResponse), args.Error(1)
}

func (m *MockExamService) DeleteExam(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockExamService) GetExamOverview(ctx context.Context, id string) (*dto.ExamOverviewResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExamOverviewResponse), args.Error(1)
}

type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) ListQuestions(ctx context.Context, f domain.QuestionFilter, p domain.PageRequest) (*dto.QuestionListResponse, error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuestionListResponse), args.Error(1)
}

func (m *MockQuestionService) GetQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuestionResponse), args.Error(1)
}

func (m *MockQuestionService) CreateQuestion(ctx context.Context, body map[string]json.RawMessage) (*dto.QuestionResponse, error) {
	args := m.Called(ctx, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuestionResponse), args.Error(1)
}

func (m *MockQuestionService) UpdateQuestion(ctx context.Context, id string, body map[string]json.RawMessage, full bool) (*dto.QuestionResponse, error) {
	args := m.Called(ctx, id, body, full)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuestionResponse), args.Error(1)
}

func (m *MockQuestionService) DeleteQuestion(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockBatchService struct {
	mock.Mock
}

func (m *MockBatchService) Execute(ctx context.Context, req dto.BatchRequest) (interface{}, string, error) {
	args := m.Called(ctx, req)
	return args.Get(0), args.String(1), args.Error(2)
}

type MockStatisticsService struct {
	mock.Mock
}

func (m *MockStatisticsService) GetOverview(ctx context.Context) (*dto.OverviewResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OverviewResponse), args.Error(1)
}

func (m *MockStatisticsService) GetJapaneseStatistics(ctx context.Context, f domain.QuestionFacetFilter) (*dto.JapaneseStatisticsResponse, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.JapaneseStatisticsResponse), args.Error(1)
}

func (m *MockStatisticsService) SearchKnowledgePoints(ctx context.Context, q, subject string) (*dto.KnowledgePointsResponse, error) {
	args := m.Called(ctx, q, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.KnowledgePointsResponse), args.Error(1)
}

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) SearchQuestions(ctx context.Context, s domain.QuestionSearch, p domain.PageRequest) (*dto.SearchQuestionsResponse, error) {
	args := m.Called(ctx, s, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SearchQuestionsResponse), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) PingContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
