package mapper

import (
	"database/sql"

	"exam-admin/internal/domain"
	"exam-admin/internal/dto"
	"exam-admin/internal/repository/models"
	"exam-admin/internal/util"
)

// Exams is the exam allow-list.
var Exams = NewTable(
	Field{"organizationId", "organization_id", RequiredText},
	Field{"examCode", "exam_code", RequiredText},
	Field{"name", "name", RequiredText},
	Field{"description", "description", Text},
	Field{"examType", "exam_type", Text},
	Field{"gradeLevel", "grade_level", Text},
	Field{"startDate", "start_date", Date},
	Field{"endDate", "end_date", Date},
	Field{"startTime", "start_time", Time},
	Field{"endTime", "end_time", Time},
	Field{"chinesePdfUrl", "chinese_pdf_url", Text},
	Field{"mathPdfUrl", "math_pdf_url", Text},
	Field{"englishPdfUrl", "english_pdf_url", Text},
	Field{"physicsPdfUrl", "physics_pdf_url", Text},
	Field{"chemistryPdfUrl", "chemistry_pdf_url", Text},
	Field{"biologyPdfUrl", "biology_pdf_url", Text},
	Field{"politicsPdfUrl", "politics_pdf_url", Text},
	Field{"historyPdfUrl", "history_pdf_url", Text},
	Field{"geographyPdfUrl", "geography_pdf_url", Text},
	Field{"technologyPdfUrl", "technology_pdf_url", Text},
	Field{"japanesePdfUrl", "japanese_pdf_url", Text},
	Field{"additionalSubjects", "additional_subjects", Object},
	Field{"examDuration", "exam_duration", Object},
	Field{"totalScore", "total_score", Object},
	Field{"difficultyLevel", "difficulty_level", Text},
	Field{"status", "status", RequiredText},
)

// ExamDefaults are stored when a create body omits the column.
func ExamDefaults() domain.Columns {
	return domain.Columns{
		"exam_type": domain.DefaultExamType,
		"status":    domain.StatusDraft,
	}
}

// subjectPapers pairs each subject with its PDF column in display order.
var subjectPapers = []struct {
	subject domain.Subject
	pdf     func(*models.Exam) *sql.NullString
}{
	{domain.SubjectChinese, func(e *models.Exam) *sql.NullString { return &e.ChinesePDFURL }},
	{domain.SubjectMath, func(e *models.Exam) *sql.NullString { return &e.MathPDFURL }},
	{domain.SubjectEnglish, func(e *models.Exam) *sql.NullString { return &e.EnglishPDFURL }},
	{domain.SubjectPhysics, func(e *models.Exam) *sql.NullString { return &e.PhysicsPDFURL }},
	{domain.SubjectChemistry, func(e *models.Exam) *sql.NullString { return &e.ChemistryPDFURL }},
	{domain.SubjectBiology, func(e *models.Exam) *sql.NullString { return &e.BiologyPDFURL }},
	{domain.SubjectPolitics, func(e *models.Exam) *sql.NullString { return &e.PoliticsPDFURL }},
	{domain.SubjectHistory, func(e *models.Exam) *sql.NullString { return &e.HistoryPDFURL }},
	{domain.SubjectGeography, func(e *models.Exam) *sql.NullString { return &e.GeographyPDFURL }},
	{domain.SubjectTechnology, func(e *models.Exam) *sql.NullString { return &e.TechnologyPDFURL }},
	{domain.SubjectJapanese, func(e *models.Exam) *sql.NullString { return &e.JapanesePDFURL }},
}

// ExamSubjects derives one entry per non-null subject PDF. counts maps subject to question count.
func ExamSubjects(e models.Exam, counts map[string]int64) []dto.ExamSubject {
	subjects := []dto.ExamSubject{}
	for _, paper := range subjectPapers {
		pdf := paper.pdf(&e)
		if !pdf.Valid || pdf.String == "" {
			continue
		}
		name := string(paper.subject)
		subjects = append(subjects, dto.ExamSubject{
			Subject:       name,
			PdfURL:        pdf.String,
			Duration:      numberPtr(e.ExamDuration, name),
			TotalScore:    numberPtr(e.TotalScore, name),
			QuestionCount: counts[name],
		})
	}
	return subjects
}

// ExamToResponse converts a row; counts may be nil.
func ExamToResponse(e models.Exam, counts map[string]int64) dto.ExamResponse {
	var total int64
	for _, n := range counts {
		total += n
	}
	return dto.ExamResponse{
		ID:                 e.ID,
		OrganizationID:     e.OrganizationID,
		OrganizationName:   util.NullStringPtr(e.OrganizationName),
		ExamCode:           e.ExamCode,
		Name:               e.Name,
		Description:        util.NullStringPtr(e.Description),
		ExamType:           util.NullStringPtr(e.ExamType),
		GradeLevel:         util.NullStringPtr(e.GradeLevel),
		StartDate:          datePtr(e.StartDate),
		EndDate:            datePtr(e.EndDate),
		StartTime:          util.NullStringPtr(e.StartTime),
		EndTime:            util.NullStringPtr(e.EndTime),
		ChinesePdfURL:      util.NullStringPtr(e.ChinesePDFURL),
		MathPdfURL:         util.NullStringPtr(e.MathPDFURL),
		EnglishPdfURL:      util.NullStringPtr(e.EnglishPDFURL),
		PhysicsPdfURL:      util.NullStringPtr(e.PhysicsPDFURL),
		ChemistryPdfURL:    util.NullStringPtr(e.ChemistryPDFURL),
		BiologyPdfURL:      util.NullStringPtr(e.BiologyPDFURL),
		PoliticsPdfURL:     util.NullStringPtr(e.PoliticsPDFURL),
		HistoryPdfURL:      util.NullStringPtr(e.HistoryPDFURL),
		GeographyPdfURL:    util.NullStringPtr(e.GeographyPDFURL),
		TechnologyPdfURL:   util.NullStringPtr(e.TechnologyPDFURL),
		JapanesePdfURL:     util.NullStringPtr(e.JapanesePDFURL),
		AdditionalSubjects: objectOrEmpty(e.AdditionalSubjects),
		ExamDuration:       objectOrEmpty(e.ExamDuration),
		TotalScore:         objectOrEmpty(e.TotalScore),
		DifficultyLevel:    util.NullStringPtr(e.DifficultyLevel),
		Status:             e.Status,
		Subjects:           ExamSubjects(e, counts),
		TotalQuestions:     total,
		CreatedAt:          dto.FormatTime(e.CreatedAt),
		UpdatedAt:          dto.FormatTime(e.UpdatedAt),
	}
}

// ExamFromResponse is the inverse of ExamToResponse for stored columns.
func ExamFromResponse(r dto.ExamResponse) (models.Exam, error) {
	createdAt, err := dto.ParseTime(r.CreatedAt)
	if err != nil {
		return models.Exam{}, err
	}
	updatedAt, err := dto.ParseTime(r.UpdatedAt)
	if err != nil {
		return models.Exam{}, err
	}
	return models.Exam{
		ID:                 r.ID,
		OrganizationID:     r.OrganizationID,
		OrganizationName:   util.PtrToNullString(r.OrganizationName),
		ExamCode:           r.ExamCode,
		Name:               r.Name,
		Description:        util.PtrToNullString(r.Description),
		ExamType:           util.PtrToNullString(r.ExamType),
		GradeLevel:         util.PtrToNullString(r.GradeLevel),
		StartDate:          ptrDate(r.StartDate),
		EndDate:            ptrDate(r.EndDate),
		StartTime:          util.PtrToNullString(r.StartTime),
		EndTime:            util.PtrToNullString(r.EndTime),
		ChinesePDFURL:      util.PtrToNullString(r.ChinesePdfURL),
		MathPDFURL:         util.PtrToNullString(r.MathPdfURL),
		EnglishPDFURL:      util.PtrToNullString(r.EnglishPdfURL),
		PhysicsPDFURL:      util.PtrToNullString(r.PhysicsPdfURL),
		ChemistryPDFURL:    util.PtrToNullString(r.ChemistryPdfURL),
		BiologyPDFURL:      util.PtrToNullString(r.BiologyPdfURL),
		PoliticsPDFURL:     util.PtrToNullString(r.PoliticsPdfURL),
		HistoryPDFURL:      util.PtrToNullString(r.HistoryPdfURL),
		GeographyPDFURL:    util.PtrToNullString(r.GeographyPdfURL),
		TechnologyPDFURL:   util.PtrToNullString(r.TechnologyPdfURL),
		JapanesePDFURL:     util.PtrToNullString(r.JapanesePdfURL),
		AdditionalSubjects: models.JSONObject(r.AdditionalSubjects),
		ExamDuration:       models.JSONObject(r.ExamDuration),
		TotalScore:         models.JSONObject(r.TotalScore),
		DifficultyLevel:    util.PtrToNullString(r.DifficultyLevel),
		Status:             r.Status,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}, nil
}

// SubjectCountsByExam groups aggregated rows by exam id.
func SubjectCountsByExam(rows []models.SubjectCount) map[string]map[string]int64 {
	out := make(map[string]map[string]int64)
	for _, row := range rows {
		if out[row.ExamID] == nil {
			out[row.ExamID] = make(map[string]int64)
		}
		out[row.ExamID][row.Subject] += row.Count
	}
	return out
}

func numberPtr(o models.JSONObject, key string) *float64 {
	n, ok := o.Number(key)
	if !ok {
		return nil
	}
	return &n
}

func objectOrEmpty(o models.JSONObject) map[string]interface{} {
	if o == nil {
		return map[string]interface{}{}
	}
	return o
}
