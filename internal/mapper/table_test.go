package mapper

import (
	"encoding/json"
	"testing"

	"exam-admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func body(t *testing.T, s string) map[string]json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestApply_OnlyAllowListedPresentFields(t *testing.T) {
	columns, err := Organizations.Apply(body(t, `{
		"organizationCode": "SH001",
		"name": "上海联考",
		"id": "forged",
		"createdAt": "2020-01-01",
		"unknown": 1
	}`))
	require.NoError(t, err)
	assert.Equal(t, domain.Columns{"organization_code": "SH001", "name": "上海联考"}, columns)
}

func TestApply_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		table *Table
		body  string
		want  domain.Columns
	}{
		{
			name:  "required text null and empty are skipped",
			table: Organizations,
			body:  `{"name": null, "status": ""}`,
			want:  domain.Columns{},
		},
		{
			name:  "nullable text null clears",
			table: Organizations,
			body:  `{"description": null, "region": "华东"}`,
			want:  domain.Columns{"description": nil, "region": "华东"},
		},
		{
			name:  "empty date clears",
			table: Organizations,
			body:  `{"establishmentDate": ""}`,
			want:  domain.Columns{"establishment_date": nil},
		},
		{
			name:  "object null becomes empty object",
			table: Organizations,
			body:  `{"contactInfo": null}`,
			want:  domain.Columns{"contact_info": "{}"},
		},
		{
			name:  "object is compacted",
			table: Exams,
			body:  `{"examDuration": { "语文": 150 }}`,
			want:  domain.Columns{"exam_duration": `{"语文":150}`},
		},
		{
			name:  "array null becomes empty array",
			table: Questions,
			body:  `{"tags": null, "options": null}`,
			want:  domain.Columns{"tags": "[]", "options": "[]"},
		},
		{
			name:  "numbers",
			table: Questions,
			body:  `{"totalScore": 12.5, "questionOrder": 3, "pageNumber": null}`,
			want:  domain.Columns{"total_score": 12.5, "question_order": int64(3), "page_number": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			columns, err := tt.table.Apply(body(t, tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, columns)
		})
	}
}

func TestApply_TypeMismatch(t *testing.T) {
	_, err := Questions.Apply(body(t, `{
		"questionText": 42,
		"tags": "a,b",
		"knowledgePoints": [1, 2],
		"questionOrder": 1.5,
		"totalScore": "ten"
	}`))
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeValidation))
	assert.ElementsMatch(t, []string{
		"questionText must be a string",
		"tags must be an array of strings",
		"knowledgePoints must be an array of strings",
		"questionOrder must be an integer",
		"totalScore must be a number",
	}, domain.ValidationMessages(err))
}

func TestApply_ContactInfoMustBeObject(t *testing.T) {
	_, err := Organizations.Apply(body(t, `{"contactInfo": "phone 123"}`))
	require.Error(t, err)
	assert.Equal(t, []string{"contactInfo must be an object"}, domain.ValidationMessages(err))
}

func TestColumnAndSort(t *testing.T) {
	col, ok := Exams.Column("startDate")
	assert.True(t, ok)
	assert.Equal(t, "start_date", col)

	col, ok = Questions.Column("createdAt")
	assert.True(t, ok)
	assert.Equal(t, "created_at", col)

	_, ok = Organizations.Column("password")
	assert.False(t, ok)

	assert.Equal(t, domain.Sort{Column: "name", Order: domain.SortAsc}, Organizations.Sort("name", "ASC"))
	assert.Equal(t, domain.Sort{Column: "", Order: domain.SortDesc}, Organizations.Sort("id; drop", ""))
}

func TestWithDefaults(t *testing.T) {
	columns := WithDefaults(domain.Columns{"exam_type": nil, "status": "published"}, ExamDefaults())
	assert.Equal(t, domain.DefaultExamType, columns["exam_type"])
	assert.Equal(t, "published", columns["status"])
}

func TestNewTable_DuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewTable(Field{"a", "a", Text}, Field{"a", "b", Text})
	})
}
