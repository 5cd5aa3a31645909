package dto

// RecentActivity is one entry of the overview activity feed.
type RecentActivity struct {
	Type             string  `json:"type"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	OrganizationName *string `json:"organizationName"`
	Timestamp        string  `json:"timestamp"`
}

// OverviewResponse is the dashboard summary.
// @Description System overview statistics
type OverviewResponse struct {
	TotalOrganizations  int64            `json:"totalOrganizations"`
	TotalExams          int64            `json:"totalExams"`
	TotalQuestions      int64            `json:"totalQuestions"`
	ActiveExams         int64            `json:"activeExams"`
	SubjectDistribution *OrderedCounts   `json:"subjectDistribution" swaggertype:"object"`
	RecentActivity      []RecentActivity `json:"recentActivity"`
}

// JapaneseStatisticsResponse summarises published Japanese questions.
// @Description Japanese question statistics
type JapaneseStatisticsResponse struct {
	TotalQuestions            int            `json:"totalQuestions"`
	LevelDistribution         *OrderedCounts `json:"levelDistribution" swaggertype:"object"`
	TypeDistribution          *OrderedCounts `json:"typeDistribution" swaggertype:"object"`
	AudioQuestions            int            `json:"audioQuestions"`
	QuestionsWithJapaneseText int            `json:"questionsWithJapaneseText"`
	AverageGrammarPoints      float64        `json:"averageGrammarPoints"`
	AverageKanjiCount         float64        `json:"averageKanjiCount"`
}

// KnowledgePoint is one matching knowledge point with its co-occurrences.
type KnowledgePoint struct {
	Name          string   `json:"name"`
	Count         int      `json:"count"`
	Subjects      []string `json:"subjects"`
	RelatedPoints []string `json:"relatedPoints"`
}

// KnowledgePointsResponse wraps the knowledge point search result.
type KnowledgePointsResponse struct {
	KnowledgePoints []KnowledgePoint `json:"knowledgePoints"`
}

// SearchInfo describes a question search.
type SearchInfo struct {
	Query        string   `json:"query"`
	TotalResults int64    `json:"totalResults"`
	SearchTime   float64  `json:"searchTime"`
	Suggestions  []string `json:"suggestions"`
}

// SearchQuestionsResponse is a page of search hits.
// @Description Question search result
type SearchQuestionsResponse struct {
	Items      []QuestionResponse `json:"items"`
	SearchInfo SearchInfo         `json:"searchInfo"`
	Pagination PaginationResponse `json:"pagination"`
}
