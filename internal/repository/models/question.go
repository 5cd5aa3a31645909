package models

import (
	"database/sql"
	"time"
)

// Question is a row of the questions table joined with organization and exam names.
type Question struct {
	ID                  string          `db:"id"`
	OrganizationID      string          `db:"organization_id"`
	ExamID              sql.NullString  `db:"exam_id"`
	QuestionCode        sql.NullString  `db:"question_code"`
	Subject             string          `db:"subject"`
	QuestionType        string          `db:"question_type"`
	DifficultyLevel     sql.NullString  `db:"difficulty_level"`
	QuestionText        string          `db:"question_text"`
	JapaneseText        sql.NullString  `db:"japanese_text"`
	PronunciationGuide  sql.NullString  `db:"pronunciation_guide"`
	AudioURL            sql.NullString  `db:"audio_url"`
	QuestionImages      StringSlice     `db:"question_images"`
	QuestionAttachments StringSlice     `db:"question_attachments"`
	Options             JSONList        `db:"options"` // [{label, content, isCorrect, knowledgePoints}]
	CorrectAnswers      StringSlice     `db:"correct_answers"`
	SubQuestions        JSONList        `db:"sub_questions"` // nested question objects
	ReferenceAnswer     sql.NullString  `db:"reference_answer"`
	AnswerImages        StringSlice     `db:"answer_images"`
	KnowledgePoints     StringSlice     `db:"knowledge_points"`
	GrammarPoints       StringSlice     `db:"grammar_points"`
	VocabularyLevel     sql.NullString  `db:"vocabulary_level"`
	KanjiList           StringSlice     `db:"kanji_list"`
	TotalScore          sql.NullFloat64 `db:"total_score"`
	ScoringCriteria     sql.NullString  `db:"scoring_criteria"`
	QuestionOrder       sql.NullInt64   `db:"question_order"`
	PageNumber          sql.NullInt64   `db:"page_number"`
	SectionName         sql.NullString  `db:"section_name"`
	AverageScore        sql.NullFloat64 `db:"average_score"`
	CorrectRate         sql.NullFloat64 `db:"correct_rate"`
	Discrimination      sql.NullFloat64 `db:"discrimination"`
	Tags                StringSlice     `db:"tags"`
	Source              sql.NullString  `db:"source"`
	CopyrightInfo       sql.NullString  `db:"copyright_info"`
	SimilarQuestions    StringSlice     `db:"similar_questions"`
	Status              string          `db:"status"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`

	OrganizationName sql.NullString `db:"organization_name"`
	ExamName         sql.NullString `db:"exam_name"`
	ExamCode         sql.NullString `db:"exam_code"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionFacet is the narrow projection used by in-memory aggregations.
type QuestionFacet struct {
	Subject         string         `db:"subject"`
	QuestionType    string         `db:"question_type"`
	DifficultyLevel sql.NullString `db:"difficulty_level"`
	VocabularyLevel sql.NullString `db:"vocabulary_level"`
	AudioURL        sql.NullString `db:"audio_url"`
	JapaneseText    sql.NullString `db:"japanese_text"`
	KnowledgePoints StringSlice    `db:"knowledge_points"`
	GrammarPoints   StringSlice    `db:"grammar_points"`
	KanjiList       StringSlice    `db:"kanji_list"`
}
