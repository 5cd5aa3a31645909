package repository

import (
	"context"
	"fmt"

	"exam-admin/internal/domain"
	"exam-admin/internal/repository/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var questionColumns = []string{
	"id", "organization_id", "exam_id", "question_code", "subject", "question_type",
	"difficulty_level", "question_text", "japanese_text", "pronunciation_guide", "audio_url",
	"question_images", "question_attachments", "options", "correct_answers", "sub_questions",
	"reference_answer", "answer_images", "knowledge_points", "grammar_points",
	"vocabulary_level", "kanji_list", "total_score", "scoring_criteria", "question_order",
	"page_number", "section_name", "average_score", "correct_rate", "discrimination", "tags",
	"source", "copyright_info", "similar_questions", "status", "created_at", "updated_at",
}

var questionFacetColumns = []string{
	"subject", "question_type", "difficulty_level", "vocabulary_level", "audio_url",
	"japanese_text", "knowledge_points", "grammar_points", "kanji_list",
}

// QuestionRepositoryImpl implements domain.QuestionRepository using sqlx.DB
type QuestionRepositoryImpl struct {
	db *sqlx.DB
}

func NewQuestionRepository(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionRepositoryImpl{db: db}
}

// questionSelect joins the organization and exam names. Both joins are outer
// so questions survive dangling references.
func questionSelect(columns ...string) sq.SelectBuilder {
	return psql.Select(columns...).
		From("questions q").
		LeftJoin("organizations o ON o.id = q.organization_id").
		LeftJoin("exams e ON e.id = q.exam_id")
}

func questionSelectColumns() []string {
	return append(prefixed("q", questionColumns),
		"o.name AS organization_name", "e.name AS exam_name", "e.exam_code AS exam_code")
}

func questionWhere(f domain.QuestionFilter) sq.And {
	where := sq.And{}
	where = eqIfSet(where, "q.exam_id", f.ExamID)
	where = eqIfSet(where, "q.organization_id", f.OrganizationID)
	where = eqIfSet(where, "q.subject", f.Subject)
	where = eqIfSet(where, "q.question_type", f.QuestionType)
	where = eqIfSet(where, "q.difficulty_level", f.DifficultyLevel)
	where = eqIfSet(where, "q.vocabulary_level", f.VocabularyLevel)
	where = eqIfSet(where, "q.status", f.Status)
	if f.HasAudio != nil {
		if *f.HasAudio {
			where = append(where, sq.NotEq{"q.audio_url": nil})
		} else {
			where = append(where, sq.Eq{"q.audio_url": nil})
		}
	}
	if f.Search != "" {
		where = append(where, ilikeAny(f.Search, "q.question_text", "q.japanese_text", "q.reference_answer"))
	}
	if len(f.KnowledgePoints) > 0 {
		where = append(where, containsAll("q.knowledge_points", f.KnowledgePoints))
	}
	if len(f.Tags) > 0 {
		where = append(where, containsAll("q.tags", f.Tags))
	}
	return where
}

func (r *QuestionRepositoryImpl) List(ctx context.Context, f domain.QuestionFilter, p domain.PageRequest) ([]models.Question, *int64, error) {
	where := questionWhere(f)
	query := questionSelect(questionSelectColumns()...).Where(where).OrderBy(orderBy("q", f.Sort))
	count := psql.Select("COUNT(*)").From("questions q").Where(where)

	questions := []models.Question{}
	total, err := fetchPage(ctx, GetExecutor(ctx, r.db), &questions, query, count, p)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, total, nil
}

func (r *QuestionRepositoryImpl) GetByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	query := questionSelect(questionSelectColumns()...).Where(sq.Eq{"q.id": id})
	found, err := getOne(ctx, GetExecutor(ctx, r.db), &question, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get question by ID %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	return &question, nil
}

func (r *QuestionRepositoryImpl) Create(ctx context.Context, columns domain.Columns) error {
	if err := insert(ctx, GetExecutor(ctx, r.db), "questions", columns); err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

func (r *QuestionRepositoryImpl) Update(ctx context.Context, id string, columns domain.Columns) (bool, error) {
	found, err := update(ctx, GetExecutor(ctx, r.db), "questions", id, columns)
	if err != nil {
		return false, fmt.Errorf("failed to update question %s: %w", id, err)
	}
	return found, nil
}

// Delete removes the question. Nothing references questions, so it never conflicts.
func (r *QuestionRepositoryImpl) Delete(ctx context.Context, id string) error {
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, "DELETE FROM questions WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete question %s: %w", id, err)
	}
	return nil
}

func (r *QuestionRepositoryImpl) Search(ctx context.Context, s domain.QuestionSearch, p domain.PageRequest) ([]models.Question, *int64, error) {
	where := sq.And{
		sq.Eq{"q.status": domain.StatusPublished},
		ilikeAny(s.Query, "q.question_text", "q.japanese_text", "q.reference_answer"),
	}
	where = eqIfSet(where, "q.subject", s.Subject)
	where = eqIfSet(where, "q.exam_id", s.ExamID)
	where = eqIfSet(where, "q.difficulty_level", s.DifficultyLevel)

	query := questionSelect(questionSelectColumns()...).Where(where).OrderBy("q.created_at DESC")
	count := psql.Select("COUNT(*)").From("questions q").Where(where)

	questions := []models.Question{}
	total, err := fetchPage(ctx, GetExecutor(ctx, r.db), &questions, query, count, p)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return questions, total, nil
}

func (r *QuestionRepositoryImpl) Facets(ctx context.Context, f domain.QuestionFacetFilter) ([]models.QuestionFacet, error) {
	where := sq.And{sq.Eq{"status": domain.StatusPublished}}
	where = eqIfSet(where, "subject", f.Subject)
	where = eqIfSet(where, "exam_id", f.ExamID)
	where = eqIfSet(where, "organization_id", f.OrganizationID)
	where = eqIfSet(where, "vocabulary_level", f.VocabularyLevel)
	if f.WithKnowledgePoint {
		where = append(where, sq.Expr("jsonb_array_length(knowledge_points) > 0"))
	}

	sqlStr, args, err := psql.Select(questionFacetColumns...).From("questions").Where(where).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build facet query: %w", err)
	}
	facets := []models.QuestionFacet{}
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &facets, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("failed to load question facets: %w", err)
	}
	return facets, nil
}

func (r *QuestionRepositoryImpl) ListByIDs(ctx context.Context, ids []string) ([]models.Question, error) {
	questions := []models.Question{}
	if len(ids) == 0 {
		return questions, nil
	}
	sqlStr, args, err := questionSelect(questionSelectColumns()...).
		Where(sq.Eq{"q.id": ids}).
		OrderBy("q.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build export query: %w", err)
	}
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &questions, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("failed to list questions by ID: %w", err)
	}
	return questions, nil
}

func (r *QuestionRepositoryImpl) DeleteMany(ctx context.Context, ids []string) ([]string, error) {
	deleted := []string{}
	if len(ids) == 0 {
		return deleted, nil
	}
	sqlStr, args, err := psql.Delete("questions").Where(sq.Eq{"id": ids}).Suffix("RETURNING id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build batch delete: %w", err)
	}
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &deleted, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("failed to delete questions: %w", err)
	}
	return deleted, nil
}

func (r *QuestionRepositoryImpl) UpdateMany(ctx context.Context, ids []string, columns domain.Columns) ([]string, error) {
	updated := []string{}
	if len(ids) == 0 {
		return updated, nil
	}
	sqlStr, args, err := psql.Update("questions").
		SetMap(withUpdatedAt(columns)).
		Where(sq.Eq{"id": ids}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build batch update: %w", err)
	}
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &updated, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("failed to update questions: %w", err)
	}
	return updated, nil
}
