package dto

// ExamSubject is one subject paper of an exam.
type ExamSubject struct {
	Subject       string   `json:"subject"`
	PdfURL        string   `json:"pdfUrl"`
	Duration      *float64 `json:"duration"`
	TotalScore    *float64 `json:"totalScore"`
	QuestionCount int64    `json:"questionCount"`
}

// ExamResponse represents an exam in the API response
// @Description Exam information
type ExamResponse struct {
	ID                 string                 `json:"id"`
	OrganizationID     string                 `json:"organizationId"`
	OrganizationName   *string                `json:"organizationName"`
	ExamCode           string                 `json:"examCode"`
	Name               string                 `json:"name"`
	Description        *string                `json:"description"`
	ExamType           *string                `json:"examType"`
	GradeLevel         *string                `json:"gradeLevel"`
	StartDate          *string                `json:"startDate"`
	EndDate            *string                `json:"endDate"`
	StartTime          *string                `json:"startTime"`
	EndTime            *string                `json:"endTime"`
	ChinesePdfURL      *string                `json:"chinesePdfUrl"`
	MathPdfURL         *string                `json:"mathPdfUrl"`
	EnglishPdfURL      *string                `json:"englishPdfUrl"`
	PhysicsPdfURL      *string                `json:"physicsPdfUrl"`
	ChemistryPdfURL    *string                `json:"chemistryPdfUrl"`
	BiologyPdfURL      *string                `json:"biologyPdfUrl"`
	PoliticsPdfURL     *string                `json:"politicsPdfUrl"`
	HistoryPdfURL      *string                `json:"historyPdfUrl"`
	GeographyPdfURL    *string                `json:"geographyPdfUrl"`
	TechnologyPdfURL   *string                `json:"technologyPdfUrl"`
	JapanesePdfURL     *string                `json:"japanesePdfUrl"`
	AdditionalSubjects map[string]interface{} `json:"additionalSubjects"`
	ExamDuration       map[string]interface{} `json:"examDuration"`
	TotalScore         map[string]interface{} `json:"totalScore"`
	DifficultyLevel    *string                `json:"difficultyLevel"`
	Status             string                 `json:"status"`
	Subjects           []ExamSubject          `json:"subjects"`
	TotalQuestions     int64                  `json:"totalQuestions"`
	CreatedAt          string                 `json:"createdAt"`
	UpdatedAt          string                 `json:"updatedAt"`
}

// ExamRequest is the validated shape of create and full update bodies.
// @Description Request body for creating or replacing an exam
type ExamRequest struct {
	OrganizationID  string                 `json:"organizationId" validate:"required"`
	ExamCode        string                 `json:"examCode" validate:"required,min=3"`
	Name            string                 `json:"name" validate:"required,min=2"`
	Description     *string                `json:"description"`
	ExamType        *string                `json:"examType"`
	GradeLevel      *string                `json:"gradeLevel"`
	StartDate       string                 `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate         string                 `json:"endDate" validate:"required,datetime=2006-01-02"`
	StartTime       *string                `json:"startTime"`
	EndTime         *string                `json:"endTime"`
	ExamDuration    map[string]interface{} `json:"examDuration"`
	TotalScore      map[string]interface{} `json:"totalScore"`
	DifficultyLevel *string                `json:"difficultyLevel"`
	Status          string                 `json:"status" validate:"omitempty,oneof=draft published archived cancelled"`
}

// ExamListResponse is a page of exams.
type ExamListResponse struct {
	Items      []ExamResponse     `json:"items"`
	Pagination PaginationResponse `json:"pagination"`
}

// ExamOverviewResponse is an exam header with distributions over its published questions.
// @Description Exam overview
type ExamOverviewResponse struct {
	ID                     string         `json:"id"`
	ExamCode               string         `json:"examCode"`
	ExamName               string         `json:"examName"`
	OrganizationName       *string        `json:"organizationName"`
	StartDate              *string        `json:"startDate"`
	EndDate                *string        `json:"endDate"`
	GradeLevel             *string        `json:"gradeLevel"`
	ExamType               *string        `json:"examType"`
	TotalQuestions         int            `json:"totalQuestions"`
	SubjectStatistics      *OrderedCounts `json:"subjectStatistics"`
	DifficultyDistribution *OrderedCounts `json:"difficultyDistribution"`
	TypeDistribution       *OrderedCounts `json:"typeDistribution"`
}
