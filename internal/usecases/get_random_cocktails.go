package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/shakerlab/shaker/internal/domain"
	"github.com/shakerlab/shaker/internal/telemetry"
)

// GetRandomCocktails defines the interface for random discovery.
type GetRandomCocktails interface {
	Query(ctx context.Context, limit int) ([]domain.Cocktail, error)
}

// GetRandomCocktailsImpl is the implementation of the GetRandomCocktails use case.
type GetRandomCocktailsImpl struct {
	cocktailRepo domain.CocktailRepository
}

// NewGetRandomCocktailsImpl creates a new instance of GetRandomCocktailsImpl.
func NewGetRandomCocktailsImpl(cocktailRepo domain.CocktailRepository) GetRandomCocktailsImpl {
	return GetRandomCocktailsImpl{cocktailRepo: cocktailRepo}
}

// Query returns a uniform random sample of cocktails.
func (gr GetRandomCocktailsImpl) Query(ctx context.Context, limit int) ([]domain.Cocktail, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	results, err := gr.cocktailRepo.RandomSample(spanCtx, normalizeLimit(limit))
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return results, nil
}

// InitGetRandomCocktails initializes the GetRandomCocktails use case and
// registers it in the dependency container.
type InitGetRandomCocktails struct {
	CocktailRepo domain.CocktailRepository `resolve:""`
}

// Initialize registers the GetRandomCocktails use case in the dependency container.
func (igr InitGetRandomCocktails) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetRandomCocktails](NewGetRandomCocktailsImpl(igr.CocktailRepo))
	return ctx, nil
}
