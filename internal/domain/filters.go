package domain

import "strings"

// SortOrder is asc or desc.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder defaults to descending.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

// Sort is a storage column plus direction. An empty Column means created_at.
type Sort struct {
	Column string
	Order  SortOrder
}

// OrganizationFilter holds the list filters for organizations. Empty fields are ignored.
type OrganizationFilter struct {
	Search string
	Region string
	Status string
	Sort   Sort
}

type ExamFilter struct {
	OrganizationID  string
	ExamType        string
	GradeLevel      string
	Status          string
	DifficultyLevel string
	Search          string
	StartDate       string // start_date >= StartDate
	EndDate         string // end_date <= EndDate
	Sort            Sort
}

// QuestionFilter holds the list filters for questions. Tags and KnowledgePoints
// must all be contained in the row's arrays.
type QuestionFilter struct {
	ExamID          string
	OrganizationID  string
	Subject         string
	QuestionType    string
	DifficultyLevel string
	VocabularyLevel string
	Status          string
	HasAudio        *bool
	Search          string
	KnowledgePoints []string
	Tags            []string
	Sort            Sort
}

// QuestionFacetFilter narrows the published questions used by aggregations.
type QuestionFacetFilter struct {
	Subject            string
	ExamID             string
	OrganizationID     string
	VocabularyLevel    string
	WithKnowledgePoint bool
}

// SplitList splits a comma separated query value, dropping blanks.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// QuestionSearch is the published-question text search.
type QuestionSearch struct {
	Query           string
	Subject         string
	ExamID          string
	DifficultyLevel string
}
