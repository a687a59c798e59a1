package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/shakerlab/shaker/internal/domain"
	"github.com/shakerlab/shaker/internal/telemetry"
)

// CorpusStats summarizes the stored corpus.
type CorpusStats struct {
	TotalCocktails int64
}

// GetCorpusStats defines the interface for corpus statistics.
type GetCorpusStats interface {
	Query(ctx context.Context) (CorpusStats, error)
}

// GetCorpusStatsImpl is the implementation of the GetCorpusStats use case.
type GetCorpusStatsImpl struct {
	cocktailRepo domain.CocktailRepository
}

// NewGetCorpusStatsImpl creates a new instance of GetCorpusStatsImpl.
func NewGetCorpusStatsImpl(cocktailRepo domain.CocktailRepository) GetCorpusStatsImpl {
	return GetCorpusStatsImpl{cocktailRepo: cocktailRepo}
}

// Query returns the size of the stored corpus.
func (gs GetCorpusStatsImpl) Query(ctx context.Context) (CorpusStats, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	total, err := gs.cocktailRepo.Count(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return CorpusStats{}, err
	}
	return CorpusStats{TotalCocktails: total}, nil
}

// InitGetCorpusStats initializes the GetCorpusStats use case and registers it
// in the dependency container.
type InitGetCorpusStats struct {
	CocktailRepo domain.CocktailRepository `resolve:""`
}

// Initialize registers the GetCorpusStats use case in the dependency container.
func (igs InitGetCorpusStats) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetCorpusStats](NewGetCorpusStatsImpl(igs.CocktailRepo))
	return ctx, nil
}
