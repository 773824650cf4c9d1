package suggestions

import (
	"context"

	"journey-backend/internal/journey"
)

// Resolver produces suggestion lists for display. StaticResolver is the only
// implementation today; it stands in for an AI-backed source.
type Resolver interface {
	ChapterSuggestions(ctx context.Context, chapter journey.Chapter) ([]Suggestion, error)
	ValueOptimizationSuggestions(ctx context.Context) ([]Suggestion, error)
}

// StaticResolver serves the authored suggestion tables.
type StaticResolver struct{}

func (StaticResolver) ChapterSuggestions(ctx context.Context, chapter journey.Chapter) ([]Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return GetChapterSuggestions(chapter), nil
}

func (StaticResolver) ValueOptimizationSuggestions(ctx context.Context) ([]Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return GetValueOptimizationSuggestions(), nil
}

var _ Resolver = StaticResolver{}
