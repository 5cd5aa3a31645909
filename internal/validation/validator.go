package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"exam-admin/internal/domain"
	"exam-admin/internal/dto"

	"github.com/go-playground/validator/v10"
)

// Validator checks request bodies and renders failures as message lists.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// DecodeBody parses a JSON object body.
func DecodeBody(data []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, domain.NewInvalidRequestError("请求体必须是JSON对象")
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &body); err != nil {
		return nil, domain.NewInvalidRequestError("请求体不是有效的JSON")
	}
	return body, nil
}

// messages maps a json field name to the message reported for any rule it breaks.
type messages map[string]string

var organizationMessages = messages{
	"organizationCode":  "组织编码不能为空且长度不能少于3位",
	"name":              "组织名称不能为空且长度不能少于2位",
	"contactInfo":       "联系信息格式不正确",
	"establishmentDate": "成立日期格式必须是YYYY-MM-DD",
	"status":            "组织状态必须是active、inactive或suspended",
}

var examMessages = messages{
	"organizationId": "组织ID不能为空",
	"examCode":       "考试编码不能为空且长度不能少于3位",
	"name":           "考试名称不能为空且长度不能少于2位",
	"startDate":      "开始日期不能为空且格式必须是YYYY-MM-DD",
	"endDate":        "结束日期不能为空且格式必须是YYYY-MM-DD",
	"examDuration":   "考试时长格式不正确",
	"totalScore":     "考试总分格式不正确",
	"status":         "考试状态必须是draft、published、archived或cancelled",
}

var questionMessages = messages{
	"organizationId": "组织ID不能为空",
	"examId":         "考试ID不能为空",
	"subject":        "学科不能为空",
	"questionType":   "题目类型不能为空",
	"questionText":   "题目内容不能为空且长度不能少于5个字符",
	"totalScore":     "题目分数必须在0-1000之间",
	"options":        "选择题必须至少有2个选项",
	"status":         "题目状态必须是draft、published、archived或reviewed",
}

// ValidateOrganization validates a create or full update body.
func (v *Validator) ValidateOrganization(body map[string]json.RawMessage) error {
	var req dto.OrganizationRequest
	c := v.check(body, &req, organizationMessages)
	if email, ok := req.ContactInfo["email"]; ok && email != nil {
		s, isString := email.(string)
		if !isString || (s != "" && v.validate.Var(s, "email") != nil) {
			c.add("联系邮箱格式不正确")
		}
	}
	return c.err()
}

// ValidateExam validates a create or full update body.
func (v *Validator) ValidateExam(body map[string]json.RawMessage) error {
	var req dto.ExamRequest
	c := v.check(body, &req, examMessages)
	start, startErr := time.Parse("2006-01-02", req.StartDate)
	end, endErr := time.Parse("2006-01-02", req.EndDate)
	if startErr == nil && endErr == nil && start.After(end) {
		c.add("开始日期不能晚于结束日期")
	}
	return c.err()
}

// ValidateQuestion validates a create or full update body.
func (v *Validator) ValidateQuestion(body map[string]json.RawMessage) error {
	var req dto.QuestionRequest
	c := v.check(body, &req, questionMessages)
	if domain.IsChoiceType(req.QuestionType) && len(req.Options) < 2 {
		c.add(questionMessages["options"])
	}
	if req.Subject == string(domain.SubjectJapanese) && req.VocabularyLevel != nil &&
		*req.VocabularyLevel != "" && !domain.IsVocabularyLevel(*req.VocabularyLevel) {
		c.add("日语等级必须是N1-N5或其他")
	}
	return c.err()
}

// collector keeps messages unique and in first-seen order.
type collector struct {
	seen map[string]bool
	list []string
}

func (c *collector) add(message string) {
	if c.seen == nil {
		c.seen = map[string]bool{}
	}
	if !c.seen[message] {
		c.seen[message] = true
		c.list = append(c.list, message)
	}
}

func (c *collector) err() error {
	if len(c.list) == 0 {
		return nil
	}
	return domain.NewValidationError(c.list...)
}

// check decodes body into req and runs the struct tags. Fields holding the
// wrong JSON type are reported through msgs as well.
func (v *Validator) check(body map[string]json.RawMessage, req interface{}, msgs messages) *collector {
	c := &collector{}
	data, _ := json.Marshal(body)
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			c.add(messageFor(msgs, typeErr.Field))
		}
	}

	err := v.validate.Struct(req)
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			c.add(messageFor(msgs, fe.Field()))
		}
	}
	return c
}

func messageFor(msgs messages, field string) string {
	if i := strings.LastIndex(field, "."); i >= 0 {
		field = field[i+1:]
	}
	if m, ok := msgs[field]; ok {
		return m
	}
	return field + "格式不正确"
}
