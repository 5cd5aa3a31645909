package validation

import (
	"encoding/json"
	"testing"

	"exam-admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) map[string]json.RawMessage {
	t.Helper()
	body, err := DecodeBody([]byte(s))
	require.NoError(t, err)
	return body
}

func TestDecodeBody(t *testing.T) {
	_, err := DecodeBody([]byte(`{"name":`))
	assert.True(t, domain.IsCode(err, domain.CodeValidation))

	_, err = DecodeBody([]byte(`[1,2]`))
	assert.True(t, domain.IsCode(err, domain.CodeValidation))

	_, err = DecodeBody(nil)
	assert.True(t, domain.IsCode(err, domain.CodeValidation))

	body, err := DecodeBody([]byte(` {"name":"x"} `))
	require.NoError(t, err)
	assert.Contains(t, body, "name")
}

func TestValidateOrganization(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "valid",
			body: `{"organizationCode":"SH001","name":"上海联考","contactInfo":{"email":"a@b.cn"},"status":"active"}`,
		},
		{
			name: "short code and name",
			body: `{"organizationCode":"ab","name":"x"}`,
			want: []string{organizationMessages["organizationCode"], organizationMessages["name"]},
		},
		{
			name: "missing everything",
			body: `{}`,
			want: []string{organizationMessages["organizationCode"], organizationMessages["name"]},
		},
		{
			name: "contact info not an object",
			body: `{"organizationCode":"SH001","name":"上海联考","contactInfo":"021-123"}`,
			want: []string{organizationMessages["contactInfo"]},
		},
		{
			name: "bad email",
			body: `{"organizationCode":"SH001","name":"上海联考","contactInfo":{"email":"nope"}}`,
			want: []string{"联系邮箱格式不正确"},
		},
		{
			name: "bad status",
			body: `{"organizationCode":"SH001","name":"上海联考","status":"deleted"}`,
			want: []string{organizationMessages["status"]},
		},
		{
			name: "relative logo path",
			body: `{"organizationCode":"SH001","name":"上海联考","logoUrl":"/static/logo.png"}`,
		},
		{
			name: "establishment date not YYYY-MM-DD",
			body: `{"organizationCode":"SH001","name":"上海联考","establishmentDate":"2020/01/02"}`,
			want: []string{organizationMessages["establishmentDate"]},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateOrganization(decode(t, tt.body))
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, domain.IsCode(err, domain.CodeValidation))
			assert.ElementsMatch(t, tt.want, domain.ValidationMessages(err))
		})
	}
}

func TestValidateExam(t *testing.T) {
	v := NewValidator()

	err := v.ValidateExam(decode(t, `{"organizationId":"org1","examCode":"EX2024","name":"期中","startDate":"2024-03-01","endDate":"2024-03-03"}`))
	assert.NoError(t, err)

	err = v.ValidateExam(decode(t, `{"organizationId":"org1","examCode":"EX2024","name":"期中","startDate":"2024-03-05","endDate":"2024-03-03"}`))
	require.Error(t, err)
	assert.Equal(t, []string{"开始日期不能晚于结束日期"}, domain.ValidationMessages(err))

	err = v.ValidateExam(decode(t, `{"examCode":"E1","startDate":"03/01/2024"}`))
	require.Error(t, err)
	assert.ElementsMatch(t, []string{
		examMessages["organizationId"],
		examMessages["examCode"],
		examMessages["name"],
		examMessages["startDate"],
		examMessages["endDate"],
	}, domain.ValidationMessages(err))
}

func TestValidateQuestion(t *testing.T) {
	v := NewValidator()
	base := `"organizationId":"org1","examId":"ex1","questionText":"下列函数中哪个是奇函数"`

	err := v.ValidateQuestion(decode(t, `{`+base+`,"subject":"数学","questionType":"解答题","totalScore":12}`))
	assert.NoError(t, err)

	err = v.ValidateQuestion(decode(t, `{`+base+`,"subject":"数学","questionType":"单选题","options":[{"label":"A"}]}`))
	require.Error(t, err)
	assert.Equal(t, []string{questionMessages["options"]}, domain.ValidationMessages(err))

	err = v.ValidateQuestion(decode(t, `{`+base+`,"subject":"日语","questionType":"填空题","vocabularyLevel":"N6"}`))
	require.Error(t, err)
	assert.Equal(t, []string{"日语等级必须是N1-N5或其他"}, domain.ValidationMessages(err))

	err = v.ValidateQuestion(decode(t, `{`+base+`,"subject":"数学","questionType":"解答题","totalScore":1001}`))
	require.Error(t, err)
	assert.Equal(t, []string{questionMessages["totalScore"]}, domain.ValidationMessages(err))

	err = v.ValidateQuestion(decode(t, `{"questionText":"短"}`))
	require.Error(t, err)
	assert.ElementsMatch(t, []string{
		questionMessages["organizationId"],
		questionMessages["examId"],
		questionMessages["subject"],
		questionMessages["questionType"],
		questionMessages["questionText"],
	}, domain.ValidationMessages(err))
}
