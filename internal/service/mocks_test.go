package service

import (
	"context"
	"time"

	"exam-admin/internal/domain"
	"exam-admin/internal/repository/models"

	"github.com/stretchr/testify/mock"
)

// --- MockOrganizationRepository ---
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) List(ctx context.Context, f domain.OrganizationFilter, p domain.PageRequest) ([]models.Organization, *int64, error) {
	args := m.Called(ctx, f, p)
	var total *int64
	if args.Get(1) != nil {
		total = args.Get(1).(*int64)
	}
	if args.Get(0) == nil {
		return nil, total, args.Error(2)
	}
	return args.Get(0).([]models.Organization), total, args.Error(2)
}

func (m *MockOrganizationRepository) GetByID(ctx context.Context, id string) (*models.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) Create(ctx context.Context, columns domain.Columns) error {
	return m.Called(ctx, columns).Error(0)
}

func (m *MockOrganizationRepository) Update(ctx context.Context, id string, columns domain.Columns) (bool, error) {
	args := m.Called(ctx, id, columns)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrganizationRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrganizationRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockExamRepository ---
type MockExamRepository struct {
	mock.Mock
}

func (m *MockExamRepository) List(ctx context.Context, f domain.ExamFilter, p domain.PageRequest) ([]models.Exam, *int64, error) {
	args := m.Called(ctx, f, p)
	var total *int64
	if args.Get(1) != nil {
		total = args.Get(1).(*int64)
	}
	if args.Get(0) == nil {
		return nil, total, args.Error(2)
	}
	return args.Get(0).([]models.Exam), total, args.Error(2)
}

func (m *MockExamRepository) GetByID(ctx context.Context, id string) (*models.Exam, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Exam), args.Error(1)
}

func (m *MockExamRepository) Create(ctx context.Context, columns domain.Columns) error {
	return m.Called(ctx, columns).Error(0)
}

func (m *MockExamRepository) Update(ctx context.Context, id string, columns domain.Columns) (bool, error) {
	args := m.Called(ctx, id, columns)
	return args.Bool(0), args.Error(1)
}

func (m *MockExamRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockExamRepository) SubjectCounts(ctx context.Context, examIDs []string) ([]models.SubjectCount, error) {
	args := m.Called(ctx, examIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SubjectCount), args.Error(1)
}

func (m *MockExamRepository) Count(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExamRepository) Recent(ctx context.Context, limit int) ([]models.ExamActivity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ExamActivity), args.Error(1)
}

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) List(ctx context.Context, f domain.QuestionFilter, p domain.PageRequest) ([]models.Question, *int64, error) {
	args := m.Called(ctx, f, p)
	var total *int64
	if args.Get(1) != nil {
		total = args.Get(1).(*int64)
	}
	if args.Get(0) == nil {
		return nil, total, args.Error(2)
	}
	return args.Get(0).([]models.Question), total, args.Error(2)
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id string) (*models.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}

func (m *MockQuestionRepository) Create(ctx context.Context, columns domain.Columns) error {
	return m.Called(ctx, columns).Error(0)
}

func (m *MockQuestionRepository) Update(ctx context.Context, id string, columns domain.Columns) (bool, error) {
	args := m.Called(ctx, id, columns)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuestionRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockQuestionRepository) Search(ctx context.Context, s domain.QuestionSearch, p domain.PageRequest) ([]models.Question, *int64, error) {
	args := m.Called(ctx, s, p)
	var total *int64
	if args.Get(1) != nil {
		total = args.Get(1).(*int64)
	}
	if args.Get(0) == nil {
		return nil, total, args.Error(2)
	}
	return args.Get(0).([]models.Question), total, args.Error(2)
}

func (m *MockQuestionRepository) Facets(ctx context.Context, f domain.QuestionFacetFilter) ([]models.QuestionFacet, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuestionFacet), args.Error(1)
}

func (m *MockQuestionRepository) ListByIDs(ctx context.Context, ids []string) ([]models.Question, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Question), args.Error(1)
}

func (m *MockQuestionRepository) DeleteMany(ctx context.Context, ids []string) ([]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockQuestionRepository) UpdateMany(ctx context.Context, ids []string, columns domain.Columns) ([]string, error) {
	args := m.Called(ctx, ids, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- MockTransactionManager runs fn directly ---
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Called(ctx)
	return fn(ctx)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	return m.Called(ctx, prefix).Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
