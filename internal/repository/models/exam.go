package models

import (
	"database/sql"
	"time"
)

// Exam is a row of the exams table joined with its organization name.
type Exam struct {
	ID                 string         `db:"id"`
	OrganizationID     string         `db:"organization_id"`
	OrganizationName   sql.NullString `db:"organization_name"` // joined from organizations
	ExamCode           string         `db:"exam_code"`
	Name               string         `db:"name"`
	Description        sql.NullString `db:"description"`
	ExamType           sql.NullString `db:"exam_type"`
	GradeLevel         sql.NullString `db:"grade_level"`
	StartDate          NullDate       `db:"start_date"`
	EndDate            NullDate       `db:"end_date"`
	StartTime          sql.NullString `db:"start_time"`
	EndTime            sql.NullString `db:"end_time"`
	ChinesePDFURL      sql.NullString `db:"chinese_pdf_url"`
	MathPDFURL         sql.NullString `db:"math_pdf_url"`
	EnglishPDFURL      sql.NullString `db:"english_pdf_url"`
	PhysicsPDFURL      sql.NullString `db:"physics_pdf_url"`
	ChemistryPDFURL    sql.NullString `db:"chemistry_pdf_url"`
	BiologyPDFURL      sql.NullString `db:"biology_pdf_url"`
	PoliticsPDFURL     sql.NullString `db:"politics_pdf_url"`
	HistoryPDFURL      sql.NullString `db:"history_pdf_url"`
	GeographyPDFURL    sql.NullString `db:"geography_pdf_url"`
	TechnologyPDFURL   sql.NullString `db:"technology_pdf_url"`
	JapanesePDFURL     sql.NullString `db:"japanese_pdf_url"`
	AdditionalSubjects JSONObject     `db:"additional_subjects"` // JSONB
	ExamDuration       JSONObject     `db:"exam_duration"`       // JSONB, minutes keyed by subject
	TotalScore         JSONObject     `db:"total_score"`         // JSONB, keyed by subject
	DifficultyLevel    sql.NullString `db:"difficulty_level"`
	Status             string         `db:"status"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

func (Exam) TableName() string {
	return "exams"
}

// SubjectCount is one row of a questions-per-subject aggregation.
type SubjectCount struct {
	ExamID  string `db:"exam_id"`
	Subject string `db:"subject"`
	Count   int64  `db:"count"`
}

// ExamActivity is a recently created exam for the activity feed.
type ExamActivity struct {
	ID               string         `db:"id"`
	Name             string         `db:"name"`
	ExamType         sql.NullString `db:"exam_type"`
	OrganizationName sql.NullString `db:"organization_name"`
	CreatedAt        time.Time      `db:"created_at"`
}
