package suggestions

import (
	"context"
	"encoding/json"
	"time"

	"journey-backend/internal/journey"
	"journey-backend/internal/shared/cache"
	"journey-backend/internal/shared/telemetry"
)

const (
	chapterKeyPrefix = "suggestions:chapter:"
	fallbackKey      = "suggestions:fallback"
	valueKey         = "suggestions:value"
)

// CachedResolver serves results from Cache before asking Next. Cache errors
// are logged and otherwise ignored.
//
// Chapters that Known rejects share one fallback entry, so request paths
// cannot mint cache keys. A nil Known accepts only chapters with authored
// suggestions.
type CachedResolver struct {
	Next  Resolver
	Cache cache.Store
	TTL   time.Duration
	Known func(chapterID string) bool
}

func NewCachedResolver(next Resolver, store cache.Store, ttl time.Duration) *CachedResolver {
	return &CachedResolver{Next: next, Cache: store, TTL: ttl}
}

func (r *CachedResolver) ChapterSuggestions(ctx context.Context, chapter journey.Chapter) ([]Suggestion, error) {
	return r.cached(ctx, r.chapterKey(chapter.ID), func() ([]Suggestion, error) {
		return r.Next.ChapterSuggestions(ctx, chapter)
	})
}

func (r *CachedResolver) ValueOptimizationSuggestions(ctx context.Context) ([]Suggestion, error) {
	return r.cached(ctx, valueKey, func() ([]Suggestion, error) {
		return r.Next.ValueOptimizationSuggestions(ctx)
	})
}

func (r *CachedResolver) chapterKey(id string) string {
	known := r.Known
	if known == nil {
		known = hasAuthoredSuggestions
	}
	if !known(id) {
		return fallbackKey
	}
	return chapterKeyPrefix + id
}

func (r *CachedResolver) cached(ctx context.Context, key string, load func() ([]Suggestion, error)) ([]Suggestion, error) {
	if r.Cache == nil {
		return load()
	}
	raw, ok, err := r.Cache.Get(ctx, key)
	if err != nil {
		telemetry.Warn("suggestions.cache_get_failed", map[string]any{"key": key, "error": err.Error()})
	} else if ok {
		var out []Suggestion
		if err := json.Unmarshal([]byte(raw), &out); err == nil {
			return out, nil
		}
		telemetry.Warn("suggestions.cache_decode_failed", map[string]any{"key": key})
	}

	out, err := load()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(out)
	if err != nil {
		return out, nil
	}
	if err := r.Cache.Set(ctx, key, string(data), r.TTL); err != nil {
		telemetry.Warn("suggestions.cache_set_failed", map[string]any{"key": key, "error": err.Error()})
	}
	return out, nil
}

var _ Resolver = (*CachedResolver)(nil)
