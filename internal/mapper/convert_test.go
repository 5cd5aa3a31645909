package mapper

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"exam-admin/internal/repository/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 3, 1, 8, 30, 15, 123456000, time.UTC)

func TestOrganization_RoundTrip(t *testing.T) {
	row := models.Organization{
		ID:                "01HX",
		OrganizationCode:  "SH001",
		Name:              "上海联考",
		Description:       sql.NullString{String: "desc", Valid: true},
		ContactInfo:       models.ContactInfo{Email: "a@b.cn"},
		EstablishmentDate: models.NullDate{String: "2001-09-01", Valid: true},
		Status:            "active",
		CreatedAt:         fixedTime,
		UpdatedAt:         fixedTime.Add(time.Hour),
	}

	wire := OrganizationToResponse(row)
	assert.Equal(t, "organizationCode", jsonKeys(t, wire)["organizationCode"])
	assert.Nil(t, wire.Region)

	back, err := OrganizationFromResponse(wire)
	require.NoError(t, err)
	assert.Equal(t, row, back)
}

func TestExam_RoundTripAndSubjects(t *testing.T) {
	row := models.Exam{
		ID:                 "ex1",
		OrganizationID:     "org1",
		OrganizationName:   sql.NullString{String: "上海联考", Valid: true},
		ExamCode:           "EX2024",
		Name:               "期中考试",
		ExamType:           sql.NullString{String: "联考", Valid: true},
		StartDate:          models.NullDate{String: "2024-03-01", Valid: true},
		EndDate:            models.NullDate{String: "2024-03-03", Valid: true},
		JapanesePDFURL:     sql.NullString{String: "https://cdn/ry.pdf", Valid: true},
		ChinesePDFURL:      sql.NullString{String: "https://cdn/yw.pdf", Valid: true},
		AdditionalSubjects: models.JSONObject{},
		ExamDuration:       models.JSONObject{"语文": 150.0},
		TotalScore:         models.JSONObject{"语文": 150.0, "日语": 0.0},
		Status:             "draft",
		CreatedAt:          fixedTime,
		UpdatedAt:          fixedTime,
	}

	wire := ExamToResponse(row, map[string]int64{"日语": 4, "语文": 2})
	require.Len(t, wire.Subjects, 2)
	assert.Equal(t, "语文", wire.Subjects[0].Subject, "subjects follow the fixed order")
	assert.Equal(t, 150.0, *wire.Subjects[0].Duration)
	assert.Equal(t, int64(2), wire.Subjects[0].QuestionCount)
	assert.Equal(t, "日语", wire.Subjects[1].Subject)
	assert.Nil(t, wire.Subjects[1].TotalScore, "zero scores read as missing")
	assert.Nil(t, wire.Subjects[1].Duration)
	assert.Equal(t, int64(6), wire.TotalQuestions)

	back, err := ExamFromResponse(wire)
	require.NoError(t, err)
	assert.Equal(t, row, back)
}

func TestQuestion_RoundTrip(t *testing.T) {
	score := sql.NullFloat64{Float64: 5, Valid: true}
	row := models.Question{
		ID:              "q1",
		OrganizationID:  "org1",
		ExamID:          sql.NullString{String: "ex1", Valid: true},
		Subject:         "日语",
		QuestionType:    "单选题",
		QuestionText:    "次の文の意味を選びなさい",
		Options:         models.JSONList{json.RawMessage(`{"label":"A","content":"x","isCorrect":true}`)},
		SubQuestions:    models.JSONList{},
		QuestionImages:  models.StringSlice{},
		KnowledgePoints: models.StringSlice{"助词"},
		GrammarPoints:   models.StringSlice{"は"},
		KanjiList:       models.StringSlice{"日"},
		Tags:            models.StringSlice{"期中"},
		TotalScore:      score,
		QuestionOrder:   sql.NullInt64{Int64: 1, Valid: true},
		Status:          "published",
		CreatedAt:       fixedTime,
		UpdatedAt:       fixedTime,
		ExamName:        sql.NullString{String: "期中考试", Valid: true},
	}
	// Nil slices are normalised to empty ones on the wire.
	expected := row
	expected.QuestionAttachments = models.StringSlice{}
	expected.CorrectAnswers = models.StringSlice{}
	expected.AnswerImages = models.StringSlice{}
	expected.SimilarQuestions = models.StringSlice{}

	wire := QuestionToResponse(row)
	assert.Equal(t, []string{}, wire.CorrectAnswers)

	back, err := QuestionFromResponse(wire)
	require.NoError(t, err)
	assert.Equal(t, expected, back)
}

func TestQuestionToExportRow(t *testing.T) {
	row := models.Question{
		Subject:         "数学",
		KnowledgePoints: models.StringSlice{"二次函数", "函数图像"},
		CreatedAt:       fixedTime,
	}
	export := QuestionToExportRow(row)
	assert.Equal(t, "二次函数, 函数图像", export.KnowledgePoints)
	assert.Equal(t, "", export.GrammarPoints)

	data, err := json.Marshal(export)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"知识点":"二次函数, 函数图像"`)
}

func jsonKeys(t *testing.T, v interface{}) map[string]string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))
	keys := make(map[string]string, len(m))
	for k := range m {
		keys[k] = k
	}
	return keys
}
