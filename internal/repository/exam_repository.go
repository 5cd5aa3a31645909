package repository

import (
	"context"
	"errors"
	"fmt"

	"exam-admin/internal/domain"
	"exam-admin/internal/repository/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var examColumns = []string{
	"id", "organization_id", "exam_code", "name", "description", "exam_type", "grade_level",
	"start_date", "end_date", "start_time", "end_time",
	"chinese_pdf_url", "math_pdf_url", "english_pdf_url", "physics_pdf_url", "chemistry_pdf_url",
	"biology_pdf_url", "politics_pdf_url", "history_pdf_url", "geography_pdf_url",
	"technology_pdf_url", "japanese_pdf_url",
	"additional_subjects", "exam_duration", "total_score", "difficulty_level", "status",
	"created_at", "updated_at",
}

// ExamRepositoryImpl implements domain.ExamRepository using sqlx.DB
type ExamRepositoryImpl struct {
	db *sqlx.DB
}

func NewExamRepository(db *sqlx.DB) domain.ExamRepository {
	return &ExamRepositoryImpl{db: db}
}

func examSelect(columns ...string) sq.SelectBuilder {
	return psql.Select(columns...).
		From("exams e").
		Join("organizations o ON o.id = e.organization_id")
}

func examWhere(f domain.ExamFilter) sq.And {
	where := sq.And{}
	where = eqIfSet(where, "e.organization_id", f.OrganizationID)
	where = eqIfSet(where, "e.exam_type", f.ExamType)
	where = eqIfSet(where, "e.grade_level", f.GradeLevel)
	where = eqIfSet(where, "e.status", f.Status)
	where = eqIfSet(where, "e.difficulty_level", f.DifficultyLevel)
	if f.Search != "" {
		where = append(where, ilikeAny(f.Search, "e.name", "e.description", "e.exam_code"))
	}
	if f.StartDate != "" {
		where = append(where, sq.GtOrEq{"e.start_date": f.StartDate})
	}
	if f.EndDate != "" {
		where = append(where, sq.LtOrEq{"e.end_date": f.EndDate})
	}
	return where
}

func examSelectColumns() []string {
	return append(prefixed("e", examColumns), "o.name AS organization_name")
}

func (r *ExamRepositoryImpl) List(ctx context.Context, f domain.ExamFilter, p domain.PageRequest) ([]models.Exam, *int64, error) {
	where := examWhere(f)
	query := examSelect(examSelectColumns()...).Where(where).OrderBy(orderBy("e", f.Sort))
	count := examSelect("COUNT(*)").Where(where)

	exams := []models.Exam{}
	total, err := fetchPage(ctx, GetExecutor(ctx, r.db), &exams, query, count, p)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exams: %w", err)
	}
	return exams, total, nil
}

func (r *ExamRepositoryImpl) GetByID(ctx context.Context, id string) (*models.Exam, error) {
	var exam models.Exam
	query := examSelect(examSelectColumns()...).Where(sq.Eq{"e.id": id})
	found, err := getOne(ctx, GetExecutor(ctx, r.db), &exam, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get exam by ID %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	return &exam, nil
}

func (r *ExamRepositoryImpl) Create(ctx context.Context, columns domain.Columns) error {
	if err := insert(ctx, GetExecutor(ctx, r.db), "exams", columns); err != nil {
		return fmt.Errorf("failed to create exam: %w", err)
	}
	return nil
}

func (r *ExamRepositoryImpl) Update(ctx context.Context, id string, columns domain.Columns) (bool, error) {
	found, err := update(ctx, GetExecutor(ctx, r.db), "exams", id, columns)
	if err != nil {
		return false, fmt.Errorf("failed to update exam %s: %w", id, err)
	}
	return found, nil
}

func (r *ExamRepositoryImpl) Delete(ctx context.Context, id string) error {
	err := deleteUnreferenced(ctx, GetExecutor(ctx, r.db), "exams", id, "questions", "exam_id")
	if err != nil && !errors.Is(err, domain.ErrReferenced) {
		return fmt.Errorf("failed to delete exam %s: %w", id, err)
	}
	return err
}

func (r *ExamRepositoryImpl) SubjectCounts(ctx context.Context, examIDs []string) ([]models.SubjectCount, error) {
	counts := []models.SubjectCount{}
	if len(examIDs) == 0 {
		return counts, nil
	}
	sqlStr, args, err := psql.Select("exam_id", "subject", "COUNT(*) AS count").
		From("questions").
		Where(sq.Eq{"exam_id": examIDs}).
		GroupBy("exam_id", "subject").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build subject count query: %w", err)
	}
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &counts, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("failed to count questions per subject: %w", err)
	}
	return counts, nil
}

func (r *ExamRepositoryImpl) Count(ctx context.Context, status string) (int64, error) {
	query := psql.Select("COUNT(*)").From("exams")
	if status != "" {
		query = query.Where(sq.Eq{"status": status})
	}
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build exam count query: %w", err)
	}
	var total int64
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &total, sqlStr, args...); err != nil {
		return 0, fmt.Errorf("failed to count exams: %w", err)
	}
	return total, nil
}

func (r *ExamRepositoryImpl) Recent(ctx context.Context, limit int) ([]models.ExamActivity, error) {
	sqlStr, args, err := psql.Select("e.id", "e.name", "e.exam_type", "o.name AS organization_name", "e.created_at").
		From("exams e").
		LeftJoin("organizations o ON o.id = e.organization_id").
		OrderBy("e.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent exams query: %w", err)
	}
	activity := []models.ExamActivity{}
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &activity, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("failed to list recent exams: %w", err)
	}
	return activity, nil
}
