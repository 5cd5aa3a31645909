package dto

import "encoding/json"

// QuestionResponse represents a question in the API response
// @Description Question information
type QuestionResponse struct {
	ID                  string            `json:"id"`
	OrganizationID      string            `json:"organizationId"`
	ExamID              *string           `json:"examId"`
	QuestionCode        *string           `json:"questionCode"`
	Subject             string            `json:"subject"`
	QuestionType        string            `json:"questionType"`
	DifficultyLevel     *string           `json:"difficultyLevel"`
	QuestionText        string            `json:"questionText"`
	JapaneseText        *string           `json:"japaneseText"`
	PronunciationGuide  *string           `json:"pronunciationGuide"`
	AudioURL            *string           `json:"audioUrl"`
	QuestionImages      []string          `json:"questionImages"`
	QuestionAttachments []string          `json:"questionAttachments"`
	Options             []json.RawMessage `json:"options" swaggertype:"array,object"`
	CorrectAnswers      []string          `json:"correctAnswers"`
	SubQuestions        []json.RawMessage `json:"subQuestions" swaggertype:"array,object"`
	ReferenceAnswer     *string           `json:"referenceAnswer"`
	AnswerImages        []string          `json:"answerImages"`
	KnowledgePoints     []string          `json:"knowledgePoints"`
	GrammarPoints       []string          `json:"grammarPoints"`
	VocabularyLevel     *string           `json:"vocabularyLevel"`
	KanjiList           []string          `json:"kanjiList"`
	TotalScore          *float64          `json:"totalScore"`
	ScoringCriteria     *string           `json:"scoringCriteria"`
	QuestionOrder       *int64            `json:"questionOrder"`
	PageNumber          *int64            `json:"pageNumber"`
	SectionName         *string           `json:"sectionName"`
	AverageScore        *float64          `json:"averageScore"`
	CorrectRate         *float64          `json:"correctRate"`
	Discrimination      *float64          `json:"discrimination"`
	Tags                []string          `json:"tags"`
	Source              *string           `json:"source"`
	CopyrightInfo       *string           `json:"copyrightInfo"`
	SimilarQuestions    []string          `json:"similarQuestions"`
	Status              string            `json:"status"`
	CreatedAt           string            `json:"createdAt"`
	UpdatedAt           string            `json:"updatedAt"`
	OrganizationName    *string           `json:"organizationName"`
	ExamName            *string           `json:"examName"`
	ExamCode            *string           `json:"examCode"`
}

// Option is one choice of a choice question.
type Option struct {
	Label           string   `json:"label"`
	Content         string   `json:"content"`
	IsCorrect       bool     `json:"isCorrect"`
	KnowledgePoints []string `json:"knowledgePoints,omitempty"`
}

// QuestionRequest is the validated shape of create and full update bodies.
// @Description Request body for creating or replacing a question
type QuestionRequest struct {
	OrganizationID  string            `json:"organizationId" validate:"required"`
	ExamID          string            `json:"examId" validate:"required"`
	Subject         string            `json:"subject" validate:"required"`
	QuestionType    string            `json:"questionType" validate:"required"`
	QuestionText    string            `json:"questionText" validate:"required,min=5"`
	DifficultyLevel *string           `json:"difficultyLevel"`
	VocabularyLevel *string           `json:"vocabularyLevel"`
	TotalScore      *float64          `json:"totalScore" validate:"omitempty,gte=0,lte=1000"`
	Options         []json.RawMessage `json:"options" swaggertype:"array,object"`
	Status          string            `json:"status" validate:"omitempty,oneof=draft published archived reviewed"`
}

// QuestionListResponse is a page of questions.
type QuestionListResponse struct {
	Items      []QuestionResponse `json:"items"`
	Pagination PaginationResponse `json:"pagination"`
}
