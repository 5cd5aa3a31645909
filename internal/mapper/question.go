package mapper

import (
	"encoding/json"
	"strings"

	"exam-admin/internal/domain"
	"exam-admin/internal/dto"
	"exam-admin/internal/repository/models"
	"exam-admin/internal/util"
)

// Questions is the question allow-list.
var Questions = NewTable(
	Field{"organizationId", "organization_id", RequiredText},
	Field{"examId", "exam_id", Text},
	Field{"questionCode", "question_code", Text},
	Field{"subject", "subject", RequiredText},
	Field{"questionType", "question_type", RequiredText},
	Field{"difficultyLevel", "difficulty_level", Text},
	Field{"questionText", "question_text", RequiredText},
	Field{"japaneseText", "japanese_text", Text},
	Field{"pronunciationGuide", "pronunciation_guide", Text},
	Field{"audioUrl", "audio_url", Text},
	Field{"questionImages", "question_images", StringArray},
	Field{"questionAttachments", "question_attachments", StringArray},
	Field{"options", "options", Array},
	Field{"correctAnswers", "correct_answers", StringArray},
	Field{"subQuestions", "sub_questions", Array},
	Field{"referenceAnswer", "reference_answer", Text},
	Field{"answerImages", "answer_images", StringArray},
	Field{"knowledgePoints", "knowledge_points", StringArray},
	Field{"grammarPoints", "grammar_points", StringArray},
	Field{"vocabularyLevel", "vocabulary_level", Text},
	Field{"kanjiList", "kanji_list", StringArray},
	Field{"totalScore", "total_score", Number},
	Field{"scoringCriteria", "scoring_criteria", Text},
	Field{"questionOrder", "question_order", Integer},
	Field{"pageNumber", "page_number", Integer},
	Field{"sectionName", "section_name", Text},
	Field{"averageScore", "average_score", Number},
	Field{"correctRate", "correct_rate", Number},
	Field{"discrimination", "discrimination", Number},
	Field{"tags", "tags", StringArray},
	Field{"source", "source", Text},
	Field{"copyrightInfo", "copyright_info", Text},
	Field{"similarQuestions", "similar_questions", StringArray},
	Field{"status", "status", RequiredText},
)

// BatchQuestionUpdates is the subset of question fields a batch update may change.
var BatchQuestionUpdates = NewTable(
	Field{"status", "status", RequiredText},
	Field{"difficultyLevel", "difficulty_level", Text},
	Field{"subject", "subject", RequiredText},
	Field{"tags", "tags", StringArray},
	Field{"knowledgePoints", "knowledge_points", StringArray},
)

// QuestionDefaults are stored when a create body omits the column.
func QuestionDefaults() domain.Columns {
	return domain.Columns{"status": domain.StatusDraft}
}

func QuestionToResponse(q models.Question) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:                  q.ID,
		OrganizationID:      q.OrganizationID,
		ExamID:              util.NullStringPtr(q.ExamID),
		QuestionCode:        util.NullStringPtr(q.QuestionCode),
		Subject:             q.Subject,
		QuestionType:        q.QuestionType,
		DifficultyLevel:     util.NullStringPtr(q.DifficultyLevel),
		QuestionText:        q.QuestionText,
		JapaneseText:        util.NullStringPtr(q.JapaneseText),
		PronunciationGuide:  util.NullStringPtr(q.PronunciationGuide),
		AudioURL:            util.NullStringPtr(q.AudioURL),
		QuestionImages:      strings0(q.QuestionImages),
		QuestionAttachments: strings0(q.QuestionAttachments),
		Options:             raw0(q.Options),
		CorrectAnswers:      strings0(q.CorrectAnswers),
		SubQuestions:        raw0(q.SubQuestions),
		ReferenceAnswer:     util.NullStringPtr(q.ReferenceAnswer),
		AnswerImages:        strings0(q.AnswerImages),
		KnowledgePoints:     strings0(q.KnowledgePoints),
		GrammarPoints:       strings0(q.GrammarPoints),
		VocabularyLevel:     util.NullStringPtr(q.VocabularyLevel),
		KanjiList:           strings0(q.KanjiList),
		TotalScore:          util.NullFloatPtr(q.TotalScore),
		ScoringCriteria:     util.NullStringPtr(q.ScoringCriteria),
		QuestionOrder:       util.NullIntPtr(q.QuestionOrder),
		PageNumber:          util.NullIntPtr(q.PageNumber),
		SectionName:         util.NullStringPtr(q.SectionName),
		AverageScore:        util.NullFloatPtr(q.AverageScore),
		CorrectRate:         util.NullFloatPtr(q.CorrectRate),
		Discrimination:      util.NullFloatPtr(q.Discrimination),
		Tags:                strings0(q.Tags),
		Source:              util.NullStringPtr(q.Source),
		CopyrightInfo:       util.NullStringPtr(q.CopyrightInfo),
		SimilarQuestions:    strings0(q.SimilarQuestions),
		Status:              q.Status,
		CreatedAt:           dto.FormatTime(q.CreatedAt),
		UpdatedAt:           dto.FormatTime(q.UpdatedAt),
		OrganizationName:    util.NullStringPtr(q.OrganizationName),
		ExamName:            util.NullStringPtr(q.ExamName),
		ExamCode:            util.NullStringPtr(q.ExamCode),
	}
}

func QuestionFromResponse(r dto.QuestionResponse) (models.Question, error) {
	createdAt, err := dto.ParseTime(r.CreatedAt)
	if err != nil {
		return models.Question{}, err
	}
	updatedAt, err := dto.ParseTime(r.UpdatedAt)
	if err != nil {
		return models.Question{}, err
	}
	return models.Question{
		ID:                  r.ID,
		OrganizationID:      r.OrganizationID,
		ExamID:              util.PtrToNullString(r.ExamID),
		QuestionCode:        util.PtrToNullString(r.QuestionCode),
		Subject:             r.Subject,
		QuestionType:        r.QuestionType,
		DifficultyLevel:     util.PtrToNullString(r.DifficultyLevel),
		QuestionText:        r.QuestionText,
		JapaneseText:        util.PtrToNullString(r.JapaneseText),
		PronunciationGuide:  util.PtrToNullString(r.PronunciationGuide),
		AudioURL:            util.PtrToNullString(r.AudioURL),
		QuestionImages:      models.StringSlice(r.QuestionImages),
		QuestionAttachments: models.StringSlice(r.QuestionAttachments),
		Options:             models.JSONList(r.Options),
		CorrectAnswers:      models.StringSlice(r.CorrectAnswers),
		SubQuestions:        models.JSONList(r.SubQuestions),
		ReferenceAnswer:     util.PtrToNullString(r.ReferenceAnswer),
		AnswerImages:        models.StringSlice(r.AnswerImages),
		KnowledgePoints:     models.StringSlice(r.KnowledgePoints),
		GrammarPoints:       models.StringSlice(r.GrammarPoints),
		VocabularyLevel:     util.PtrToNullString(r.VocabularyLevel),
		KanjiList:           models.StringSlice(r.KanjiList),
		TotalScore:          util.PtrToNullFloat(r.TotalScore),
		ScoringCriteria:     util.PtrToNullString(r.ScoringCriteria),
		QuestionOrder:       util.PtrToNullInt(r.QuestionOrder),
		PageNumber:          util.PtrToNullInt(r.PageNumber),
		SectionName:         util.PtrToNullString(r.SectionName),
		AverageScore:        util.PtrToNullFloat(r.AverageScore),
		CorrectRate:         util.PtrToNullFloat(r.CorrectRate),
		Discrimination:      util.PtrToNullFloat(r.Discrimination),
		Tags:                models.StringSlice(r.Tags),
		Source:              util.PtrToNullString(r.Source),
		CopyrightInfo:       util.PtrToNullString(r.CopyrightInfo),
		SimilarQuestions:    models.StringSlice(r.SimilarQuestions),
		Status:              r.Status,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
		OrganizationName:    util.PtrToNullString(r.OrganizationName),
		ExamName:            util.PtrToNullString(r.ExamName),
		ExamCode:            util.PtrToNullString(r.ExamCode),
	}, nil
}

// QuestionToExportRow flattens a question for spreadsheet export.
func QuestionToExportRow(q models.Question) dto.ExportRow {
	return dto.ExportRow{
		QuestionCode:       util.NullStringPtr(q.QuestionCode),
		Subject:            q.Subject,
		QuestionType:       q.QuestionType,
		DifficultyLevel:    util.NullStringPtr(q.DifficultyLevel),
		QuestionText:       q.QuestionText,
		JapaneseText:       util.NullStringPtr(q.JapaneseText),
		PronunciationGuide: util.NullStringPtr(q.PronunciationGuide),
		ReferenceAnswer:    util.NullStringPtr(q.ReferenceAnswer),
		KnowledgePoints:    strings.Join(q.KnowledgePoints, ", "),
		GrammarPoints:      strings.Join(q.GrammarPoints, ", "),
		VocabularyLevel:    util.NullStringPtr(q.VocabularyLevel),
		KanjiList:          strings.Join(q.KanjiList, ", "),
		TotalScore:         util.NullFloatPtr(q.TotalScore),
		OrganizationName:   util.NullStringPtr(q.OrganizationName),
		ExamName:           util.NullStringPtr(q.ExamName),
		ExamCode:           util.NullStringPtr(q.ExamCode),
		CreatedAt:          dto.FormatTime(q.CreatedAt),
	}
}

func strings0(s models.StringSlice) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func raw0(l models.JSONList) []json.RawMessage {
	if l == nil {
		return []json.RawMessage{}
	}
	return l
}
