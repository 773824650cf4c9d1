package suggestions

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"journey-backend/internal/journey"
	"journey-backend/internal/shared/cache"
)

type countingResolver struct {
	chapterCalls int
	valueCalls   int
	err          error
}

func (r *countingResolver) ChapterSuggestions(ctx context.Context, chapter journey.Chapter) ([]Suggestion, error) {
	r.chapterCalls++
	if r.err != nil {
		return nil, r.err
	}
	return StaticResolver{}.ChapterSuggestions(ctx, chapter)
}

func (r *countingResolver) ValueOptimizationSuggestions(ctx context.Context) ([]Suggestion, error) {
	r.valueCalls++
	if r.err != nil {
		return nil, r.err
	}
	return StaticResolver{}.ValueOptimizationSuggestions(ctx)
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("cache down")
}

func (brokenCache) Set(context.Context, string, string, time.Duration) error {
	return errors.New("cache down")
}

func TestCachedResolverServesFromCache(t *testing.T) {
	ctx := context.Background()
	next := &countingResolver{}
	r := NewCachedResolver(next, cache.NewMemoryStore(nil), time.Minute)

	first, err := r.ChapterSuggestions(ctx, journey.Chapter{ID: "chapter-3"})
	if err != nil {
		t.Fatalf("ChapterSuggestions: %v", err)
	}
	second, err := r.ChapterSuggestions(ctx, journey.Chapter{ID: "chapter-3"})
	if err != nil {
		t.Fatalf("ChapterSuggestions: %v", err)
	}
	if next.chapterCalls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", next.chapterCalls)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("cached result mismatch (-first +second):\n%s", diff)
	}

	if _, err := r.ChapterSuggestions(ctx, journey.Chapter{ID: "chapter-4"}); err != nil {
		t.Fatalf("ChapterSuggestions: %v", err)
	}
	if next.chapterCalls != 2 {
		t.Fatalf("expected a separate entry per chapter, got %d calls", next.chapterCalls)
	}

	for i := 0; i < 2; i++ {
		if _, err := r.ValueOptimizationSuggestions(ctx); err != nil {
			t.Fatalf("ValueOptimizationSuggestions: %v", err)
		}
	}
	if next.valueCalls != 1 {
		t.Fatalf("expected 1 upstream value call, got %d", next.valueCalls)
	}
}

func TestCachedResolverExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	next := &countingResolver{}
	r := NewCachedResolver(next, cache.NewMemoryStore(func() time.Time { return now }), time.Minute)

	_, _ = r.ValueOptimizationSuggestions(ctx)
	now = now.Add(2 * time.Minute)
	_, _ = r.ValueOptimizationSuggestions(ctx)
	if next.valueCalls != 2 {
		t.Fatalf("expected expired entry to be reloaded, got %d calls", next.valueCalls)
	}
}

func TestCachedResolverIgnoresCacheFailures(t *testing.T) {
	next := &countingResolver{}
	r := NewCachedResolver(next, brokenCache{}, time.Minute)

	got, err := r.ChapterSuggestions(context.Background(), journey.Chapter{ID: "chapter-x"})
	if err != nil {
		t.Fatalf("ChapterSuggestions: %v", err)
	}
	if diff := cmp.Diff([]string{"sug-default-1", "sug-default-2", "sug-default-3"}, ids(got)); diff != "" {
		t.Fatalf("fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestCachedResolverDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	next := &countingResolver{err: boom}
	r := NewCachedResolver(next, cache.NewMemoryStore(nil), time.Minute)

	if _, err := r.ChapterSuggestions(ctx, journey.Chapter{ID: "chapter-1"}); !errors.Is(err, boom) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	next.err = nil
	if _, err := r.ChapterSuggestions(ctx, journey.Chapter{ID: "chapter-1"}); err != nil {
		t.Fatalf("ChapterSuggestions: %v", err)
	}
	if next.chapterCalls != 2 {
		t.Fatalf("expected retry after error, got %d calls", next.chapterCalls)
	}
}

func TestStaticResolverHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (StaticResolver{}).ChapterSuggestions(ctx, journey.Chapter{ID: "chapter-1"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCachedResolverSharesFallbackEntry(t *testing.T) {
	ctx := context.Background()
	next := &countingResolver{}
	store := cache.NewMemoryStore(nil)
	r := NewCachedResolver(next, store, time.Minute)

	for i := 0; i < 100; i++ {
		got, err := r.ChapterSuggestions(ctx, journey.Chapter{ID: fmt.Sprintf("unknown-%d", i)})
		if err != nil {
			t.Fatalf("ChapterSuggestions: %v", err)
		}
		if got[0].ID != "sug-default-1" {
			t.Fatalf("expected fallback suggestions, got %s", got[0].ID)
		}
	}
	if store.Len() != 1 {
		t.Fatalf("expected one shared cache entry, got %d", store.Len())
	}
	if next.chapterCalls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", next.chapterCalls)
	}

	if _, err := r.ChapterSuggestions(ctx, journey.Chapter{ID: "chapter-1"}); err != nil {
		t.Fatalf("ChapterSuggestions: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("expected authored chapter to get its own entry, got %d", store.Len())
	}
}

func TestCachedResolverKnownOverridesAuthoredTable(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore(nil)
	r := NewCachedResolver(&countingResolver{}, store, time.Minute)
	r.Known = func(id string) bool { return id == "chapter-6" }

	_, _ = r.ChapterSuggestions(ctx, journey.Chapter{ID: "chapter-6"})
	_, _ = r.ChapterSuggestions(ctx, journey.Chapter{ID: "chapter-7"})
	_, _ = r.ChapterSuggestions(ctx, journey.Chapter{ID: "chapter-8"})
	if store.Len() != 2 {
		t.Fatalf("expected chapter-6 plus one fallback entry, got %d", store.Len())
	}
}
