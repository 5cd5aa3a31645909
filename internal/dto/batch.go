package dto

import "encoding/json"

// Batch actions.
const (
	BatchDelete = "delete"
	BatchUpdate = "update"
	BatchExport = "export"
)

// BatchRequest is the body of POST /questions/batch.
// @Description Batch operation over questions
type BatchRequest struct {
	Action      string                     `json:"action"`
	QuestionIDs []string                   `json:"questionIds"`
	UpdateData  map[string]json.RawMessage `json:"updateData" swaggertype:"object"`
}

type BatchDeleteResult struct {
	DeletedCount int      `json:"deletedCount"`
	DeletedIDs   []string `json:"deletedIds"`
}

type BatchUpdateResult struct {
	UpdatedCount int      `json:"updatedCount"`
	UpdatedIDs   []string `json:"updatedIds"`
}

// ExportRow is one exported question with spreadsheet headers as keys.
type ExportRow struct {
	QuestionCode       *string  `json:"题目编号"`
	Subject            string   `json:"学科"`
	QuestionType       string   `json:"题型"`
	DifficultyLevel    *string  `json:"难度"`
	QuestionText       string   `json:"题目内容"`
	JapaneseText       *string  `json:"日语原文"`
	PronunciationGuide *string  `json:"读音标注"`
	ReferenceAnswer    *string  `json:"参考答案"`
	KnowledgePoints    string   `json:"知识点"`
	GrammarPoints      string   `json:"语法点"`
	VocabularyLevel    *string  `json:"日语等级"`
	KanjiList          string   `json:"汉字"`
	TotalScore         *float64 `json:"分值"`
	OrganizationName   *string  `json:"组织名称"`
	ExamName           *string  `json:"考试名称"`
	ExamCode           *string  `json:"考试编号"`
	CreatedAt          string   `json:"创建时间"`
}

type BatchExportResult struct {
	ExportData  []ExportRow `json:"exportData"`
	ExportCount int         `json:"exportCount"`
	ExportTime  string      `json:"exportTime"`
}
