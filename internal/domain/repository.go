package domain

import (
	"context"
	"errors"

	"exam-admin/internal/repository/models"
)

// ErrReferenced is returned by repository deletes refused because other rows still point at the target.
var ErrReferenced = errors.New("row is referenced by other rows")

// Columns maps storage column names to values for inserts and updates.
type Columns map[string]interface{}

// TransactionManager runs fn inside a transaction carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// OrganizationRepository persists organizations. Get returns nil, nil when the row does not exist.
type OrganizationRepository interface {
	List(ctx context.Context, filter OrganizationFilter, page PageRequest) ([]models.Organization, *int64, error)
	GetByID(ctx context.Context, id string) (*models.Organization, error)
	Create(ctx context.Context, columns Columns) error
	// Update reports false when no row has the id.
	Update(ctx context.Context, id string, columns Columns) (bool, error)
	// Delete returns ErrReferenced while exams belong to the organization.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ExamRepository persists exams.
type ExamRepository interface {
	List(ctx context.Context, filter ExamFilter, page PageRequest) ([]models.Exam, *int64, error)
	GetByID(ctx context.Context, id string) (*models.Exam, error)
	Create(ctx context.Context, columns Columns) error
	Update(ctx context.Context, id string, columns Columns) (bool, error)
	// Delete returns ErrReferenced while questions belong to the exam.
	Delete(ctx context.Context, id string) error
	// SubjectCounts groups question counts by exam and subject for the given exams.
	SubjectCounts(ctx context.Context, examIDs []string) ([]models.SubjectCount, error)
	// Count counts exams, optionally only those with status.
	Count(ctx context.Context, status string) (int64, error)
	Recent(ctx context.Context, limit int) ([]models.ExamActivity, error)
}

// QuestionRepository persists questions.
type QuestionRepository interface {
	List(ctx context.Context, filter QuestionFilter, page PageRequest) ([]models.Question, *int64, error)
	GetByID(ctx context.Context, id string) (*models.Question, error)
	Create(ctx context.Context, columns Columns) error
	Update(ctx context.Context, id string, columns Columns) (bool, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, search QuestionSearch, page PageRequest) ([]models.Question, *int64, error)
	// Facets returns the aggregation projection of published questions.
	Facets(ctx context.Context, filter QuestionFacetFilter) ([]models.QuestionFacet, error)
	ListByIDs(ctx context.Context, ids []string) ([]models.Question, error)
	// DeleteMany and UpdateMany return the ids of the rows actually touched.
	DeleteMany(ctx context.Context, ids []string) ([]string, error)
	UpdateMany(ctx context.Context, ids []string, columns Columns) ([]string, error)
}
