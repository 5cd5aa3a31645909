package service

import (
	"context"
	"sort"
	"strings"

	"exam-admin/internal/cache"
	"exam-admin/internal/domain"
	"exam-admin/internal/dto"
	"exam-admin/internal/logger"
	"exam-admin/internal/repository/models"
	"exam-admin/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	recentActivityLimit     = 5
	knowledgePointLimit     = 20
	relatedPointLimit       = 5
	activityTypeExamCreated = "exam_created"
	activityTitleExam       = "创建了新考试"
)

// StatisticsService computes the aggregate views.
type StatisticsService interface {
	GetOverview(ctx context.Context) (*dto.OverviewResponse, error)
	GetJapaneseStatistics(ctx context.Context, filter domain.QuestionFacetFilter) (*dto.JapaneseStatisticsResponse, error)
	// SearchKnowledgePoints returns the knowledge points containing query, most frequent first.
	SearchKnowledgePoints(ctx context.Context, query, subject string) (*dto.KnowledgePointsResponse, error)
}

type statisticsService struct {
	orgRepo      domain.OrganizationRepository
	examRepo     domain.ExamRepository
	questionRepo domain.QuestionRepository
	cache        *ResponseCache
}

func NewStatisticsService(
	orgRepo domain.OrganizationRepository,
	examRepo domain.ExamRepository,
	questionRepo domain.QuestionRepository,
	cache *ResponseCache,
) StatisticsService {
	return &statisticsService{
		orgRepo:      orgRepo,
		examRepo:     examRepo,
		questionRepo: questionRepo,
		cache:        cache,
	}
}

func (s *statisticsService) GetOverview(ctx context.Context) (*dto.OverviewResponse, error) {
	key := cache.GenerateCacheKey(StatisticsCacheService, "overview", "all")
	return readThrough(ctx, s.cache, key, s.loadOverview)
}

func (s *statisticsService) loadOverview(ctx context.Context) (*dto.OverviewResponse, error) {
	var (
		orgCount, examCount, activeCount int64
		facets                           []models.QuestionFacet
		recent                           []models.ExamActivity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.orgRepo.Count(gctx)
		if err != nil {
			return storageError("查询组织统计失败", err)
		}
		orgCount = n
		return nil
	})
	g.Go(func() error {
		n, err := s.examRepo.Count(gctx, "")
		if err != nil {
			return storageError("查询考试统计失败", err)
		}
		examCount = n
		return nil
	})
	g.Go(func() error {
		n, err := s.examRepo.Count(gctx, domain.StatusPublished)
		if err != nil {
			return storageError("查询活跃考试统计失败", err)
		}
		activeCount = n
		return nil
	})
	g.Go(func() error {
		rows, err := s.questionRepo.Facets(gctx, domain.QuestionFacetFilter{})
		if err != nil {
			return storageError("查询题目统计失败", err)
		}
		facets = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.examRepo.Recent(gctx, recentActivityLimit)
		if err != nil {
			return storageError("查询最近活动失败", err)
		}
		recent = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Get().Error("Failed to compute statistics overview", zap.Error(err))
		return nil, err
	}

	buckets := make([]string, 0, len(domain.Subjects)+1)
	for _, subject := range domain.Subjects {
		buckets = append(buckets, string(subject))
	}
	buckets = append(buckets, string(domain.SubjectOther))
	distribution := dto.NewOrderedCounts(buckets...)
	for _, f := range facets {
		if domain.IsKnownSubject(f.Subject) {
			distribution.Inc(f.Subject)
		} else {
			distribution.Inc(string(domain.SubjectOther))
		}
	}

	activity := make([]dto.RecentActivity, 0, len(recent))
	for _, exam := range recent {
		activity = append(activity, dto.RecentActivity{
			Type:             activityTypeExamCreated,
			Title:            activityTitleExam,
			Description:      exam.Name + " (" + exam.ExamType.String + ")",
			OrganizationName: util.NullStringPtr(exam.OrganizationName),
			Timestamp:        dto.FormatTime(exam.CreatedAt),
		})
	}

	return &dto.OverviewResponse{
		TotalOrganizations:  orgCount,
		TotalExams:          examCount,
		TotalQuestions:      int64(len(facets)),
		ActiveExams:         activeCount,
		SubjectDistribution: distribution,
		RecentActivity:      activity,
	}, nil
}

func (s *statisticsService) GetJapaneseStatistics(ctx context.Context, filter domain.QuestionFacetFilter) (*dto.JapaneseStatisticsResponse, error) {
	filter.Subject = string(domain.SubjectJapanese)
	filter.WithKnowledgePoint = false
	key := cache.GenerateCacheKey(StatisticsCacheService, "japanese", "questions",
		filter.ExamID, filter.OrganizationID, filter.VocabularyLevel)

	return readThrough(ctx, s.cache, key, func(ctx context.Context) (*dto.JapaneseStatisticsResponse, error) {
		facets, err := s.questionRepo.Facets(ctx, filter)
		if err != nil {
			logger.Get().Error("Failed to load Japanese question facets", zap.Error(err))
			return nil, storageError("查询日语题目统计失败", err)
		}

		resp := &dto.JapaneseStatisticsResponse{
			TotalQuestions:    len(facets),
			LevelDistribution: dto.NewOrderedCounts(domain.VocabularyLevels...),
			TypeDistribution:  dto.NewOrderedCounts(),
		}
		var grammarPoints, kanji int
		for _, f := range facets {
			level := f.VocabularyLevel.String
			if !resp.LevelDistribution.Has(level) {
				level = domain.LevelOther
			}
			resp.LevelDistribution.Inc(level)
			if f.QuestionType != "" {
				resp.TypeDistribution.Inc(f.QuestionType)
			}
			if f.AudioURL.String != "" {
				resp.AudioQuestions++
			}
			if f.JapaneseText.String != "" {
				resp.QuestionsWithJapaneseText++
			}
			grammarPoints += len(f.GrammarPoints)
			kanji += len(f.KanjiList)
		}
		resp.AverageGrammarPoints = util.Average(float64(grammarPoints), len(facets), 1)
		resp.AverageKanjiCount = util.Average(float64(kanji), len(facets), 1)
		return resp, nil
	})
}

// knowledgePointStats accumulates one knowledge point across questions.
type knowledgePointStats struct {
	name     string
	count    int
	subjects []string
	related  []string
	seen     map[string]bool
}

func (k *knowledgePointStats) addSubject(subject string) {
	for _, s := range k.subjects {
		if s == subject {
			return
		}
	}
	k.subjects = append(k.subjects, subject)
}

func (k *knowledgePointStats) addRelated(point string) {
	if point == k.name || k.seen[point] {
		return
	}
	k.seen[point] = true
	k.related = append(k.related, point)
}

func (s *statisticsService) SearchKnowledgePoints(ctx context.Context, query, subject string) (*dto.KnowledgePointsResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewInvalidRequestError("搜索关键词不能为空")
	}
	key := cache.GenerateCacheKey(StatisticsCacheService, "knowledge_points", query, subject)

	return readThrough(ctx, s.cache, key, func(ctx context.Context) (*dto.KnowledgePointsResponse, error) {
		facets, err := s.questionRepo.Facets(ctx, domain.QuestionFacetFilter{Subject: subject, WithKnowledgePoint: true})
		if err != nil {
			logger.Get().Error("Failed to load knowledge points", zap.Error(err))
			return nil, storageError("查询知识点失败", err)
		}
		return &dto.KnowledgePointsResponse{KnowledgePoints: rankKnowledgePoints(facets, query)}, nil
	})
}

// rankKnowledgePoints keeps encounter order among points with equal counts.
func rankKnowledgePoints(facets []models.QuestionFacet, query string) []dto.KnowledgePoint {
	var order []*knowledgePointStats
	byName := map[string]*knowledgePointStats{}
	for _, f := range facets {
		for _, point := range f.KnowledgePoints {
			if point == "" || !strings.Contains(point, query) {
				continue
			}
			stats, ok := byName[point]
			if !ok {
				stats = &knowledgePointStats{name: point, subjects: []string{}, related: []string{}, seen: map[string]bool{}}
				byName[point] = stats
				order = append(order, stats)
			}
			stats.count++
			stats.addSubject(f.Subject)
			for _, related := range f.KnowledgePoints {
				stats.addRelated(related)
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool { return order[i].count > order[j].count })
	if len(order) > knowledgePointLimit {
		order = order[:knowledgePointLimit]
	}

	points := make([]dto.KnowledgePoint, 0, len(order))
	for _, stats := range order {
		related := stats.related
		if len(related) > relatedPointLimit {
			related = related[:relatedPointLimit]
		}
		points = append(points, dto.KnowledgePoint{
			Name:          stats.name,
			Count:         stats.count,
			Subjects:      stats.subjects,
			RelatedPoints: related,
		})
	}
	return points
}
