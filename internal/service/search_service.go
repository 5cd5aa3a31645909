package service

import (
	"context"
	"strings"
	"time"

	"exam-admin/internal/domain"
	"exam-admin/internal/dto"
	"exam-admin/internal/logger"
	"exam-admin/internal/mapper"
	"exam-admin/internal/util"

	"go.uber.org/zap"
)

// suggestionThreshold is the result count below which suggestions are offered.
const suggestionThreshold = 5

// searchSuggestions maps a keyword fragment to the searches offered for it.
var searchSuggestions = []struct {
	keyword     string
	suggestions []string
}{
	{"函数", []string{"二次函数", "三角函数", "指数函数"}},
	{"语法", []string{"日语语法", "英语语法", "语法题"}},
	{"物理", []string{"力学", "电学", "光学"}},
}

// SearchService performs free-text question search.
type SearchService interface {
	SearchQuestions(ctx context.Context, search domain.QuestionSearch, page domain.PageRequest) (*dto.SearchQuestionsResponse, error)
}

type searchService struct {
	questionRepo domain.QuestionRepository
}

func NewSearchService(questionRepo domain.QuestionRepository) SearchService {
	return &searchService{questionRepo: questionRepo}
}

func (s *searchService) SearchQuestions(ctx context.Context, search domain.QuestionSearch, page domain.PageRequest) (*dto.SearchQuestionsResponse, error) {
	search.Query = strings.TrimSpace(search.Query)
	if search.Query == "" {
		return nil, domain.NewInvalidRequestError("搜索关键词不能为空")
	}

	started := time.Now()
	rows, total, err := s.questionRepo.Search(ctx, search, page)
	if err != nil {
		logger.Get().Error("Failed to search questions", zap.String("query", search.Query), zap.Error(err))
		return nil, storageError("搜索题目失败", err)
	}
	elapsed := time.Since(started)

	items := make([]dto.QuestionResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapper.QuestionToResponse(row))
	}
	pagination := domain.NewPagination(page, total, len(rows))

	// Without a count the hit count of this page stands in for the total.
	totalResults := int64(len(rows))
	if pagination.Total != nil {
		totalResults = *pagination.Total
	}

	logger.Get().Debug("Question search finished",
		zap.String("query", search.Query),
		zap.Int64("totalResults", totalResults),
		zap.Duration("elapsed", elapsed))

	return &dto.SearchQuestionsResponse{
		Items: items,
		SearchInfo: dto.SearchInfo{
			Query:        search.Query,
			TotalResults: totalResults,
			SearchTime:   util.Round(elapsed.Seconds(), 3),
			Suggestions:  suggestionsFor(search.Query, totalResults),
		},
		Pagination: pagination,
	}, nil
}

func suggestionsFor(query string, count int64) []string {
	suggestions := []string{}
	if count >= suggestionThreshold {
		return suggestions
	}
	for _, entry := range searchSuggestions {
		if strings.Contains(query, entry.keyword) {
			suggestions = append(suggestions, entry.suggestions...)
		}
	}
	return suggestions
}
