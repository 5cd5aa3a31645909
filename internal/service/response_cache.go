package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"exam-admin/internal/cache"
	"exam-admin/internal/domain"
	"exam-admin/internal/logger"

	"go.uber.org/zap"
)

// StatisticsCacheService is the cache namespace of every aggregate response.
const StatisticsCacheService = "statistics"

const DefaultResponseCacheTTL = 5 * time.Minute

// ResponseCache reads aggregate responses through a domain.Cache.
// A nil cache disables caching. Cache failures are logged and never returned.
type ResponseCache struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewResponseCache accepts a nil cache.
func NewResponseCache(c domain.Cache, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultResponseCacheTTL
	}
	return &ResponseCache{cache: c, ttl: ttl}
}

// Invalidate drops every cached aggregate.
func (rc *ResponseCache) Invalidate(ctx context.Context) {
	if rc == nil || rc.cache == nil {
		return
	}
	prefix := cache.ServicePrefix(StatisticsCacheService)
	if err := rc.cache.DeleteByPrefix(ctx, prefix); err != nil {
		logger.Get().Warn("ResponseCache: failed to invalidate aggregates", zap.String("prefix", prefix), zap.Error(err))
	}
}

// readThrough returns the cached value under key or computes, stores and returns it.
func readThrough[T any](ctx context.Context, rc *ResponseCache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	if rc == nil || rc.cache == nil {
		return load(ctx)
	}

	raw, err := rc.cache.Get(ctx, key)
	switch {
	case err == nil:
		var cached T
		errUnmarshal := json.Unmarshal([]byte(raw), &cached)
		if errUnmarshal == nil {
			logger.Get().Debug("ResponseCache: hit", zap.String("key", key))
			return cached, nil
		}
		logger.Get().Warn("ResponseCache: failed to unmarshal cached value", zap.String("key", key), zap.Error(errUnmarshal))
	case errors.Is(err, domain.ErrCacheMiss):
		logger.Get().Debug("ResponseCache: miss", zap.String("key", key))
	default:
		logger.Get().Warn("ResponseCache: get failed", zap.String("key", key), zap.Error(err))
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	encoded, errMarshal := json.Marshal(value)
	if errMarshal != nil {
		logger.Get().Warn("ResponseCache: failed to marshal value", zap.String("key", key), zap.Error(errMarshal))
		return value, nil
	}
	if errSet := rc.cache.Set(ctx, key, string(encoded), rc.ttl); errSet != nil {
		logger.Get().Warn("ResponseCache: set failed", zap.String("key", key), zap.Error(errSet))
	}
	return value, nil
}
