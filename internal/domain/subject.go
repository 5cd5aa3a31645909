package domain

// Subject is the stored subject literal of a question or exam section.
type Subject string

const (
	SubjectChinese    Subject = "语文"
	SubjectMath       Subject = "数学"
	SubjectEnglish    Subject = "英语"
	SubjectPhysics    Subject = "物理"
	SubjectChemistry  Subject = "化学"
	SubjectBiology    Subject = "生物"
	SubjectPolitics   Subject = "政治"
	SubjectHistory    Subject = "历史"
	SubjectGeography  Subject = "地理"
	SubjectTechnology Subject = "技术"
	SubjectJapanese   Subject = "日语"

	// SubjectOther is the statistics bucket for unrecognised subjects.
	SubjectOther Subject = "其他"
)

// Subjects lists the known subjects in display order.
var Subjects = []Subject{
	SubjectChinese,
	SubjectMath,
	SubjectEnglish,
	SubjectPhysics,
	SubjectChemistry,
	SubjectBiology,
	SubjectPolitics,
	SubjectHistory,
	SubjectGeography,
	SubjectTechnology,
	SubjectJapanese,
}

// IsKnownSubject reports whether s is one of Subjects.
func IsKnownSubject(s string) bool {
	for _, subject := range Subjects {
		if string(subject) == s {
			return true
		}
	}
	return false
}

// Vocabulary levels for Japanese questions.
const (
	LevelN1    = "N1"
	LevelN2    = "N2"
	LevelN3    = "N3"
	LevelN4    = "N4"
	LevelN5    = "N5"
	LevelOther = "其他"
)

var VocabularyLevels = []string{LevelN1, LevelN2, LevelN3, LevelN4, LevelN5, LevelOther}

// IsVocabularyLevel reports whether s is an accepted vocabulary level.
func IsVocabularyLevel(s string) bool {
	for _, level := range VocabularyLevels {
		if level == s {
			return true
		}
	}
	return false
}

// Difficulty levels used by exam overviews.
var DifficultyLevels = []string{"容易", "中等", "困难", "极难"}

// Question types that require options.
const (
	QuestionTypeSingleChoice   = "单选题"
	QuestionTypeMultipleChoice = "多选题"
)

// IsChoiceType reports whether questions of this type must carry options.
func IsChoiceType(questionType string) bool {
	return questionType == QuestionTypeSingleChoice || questionType == QuestionTypeMultipleChoice
}

// DefaultExamType is stored when an exam is created without a type.
const DefaultExamType = "联考"

// Entity statuses.
var (
	OrganizationStatuses = []string{"active", "inactive", "suspended"}
	ExamStatuses         = []string{"draft", "published", "archived", "cancelled"}
	QuestionStatuses     = []string{"draft", "published", "archived", "reviewed"}
)

const (
	StatusActive    = "active"
	StatusDraft     = "draft"
	StatusPublished = "published"
)
