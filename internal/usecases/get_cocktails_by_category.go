package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/shakerlab/shaker/internal/domain"
	"github.com/shakerlab/shaker/internal/telemetry"
)

// GetCocktailsByCategory defines the interface for category listings.
type GetCocktailsByCategory interface {
	Query(ctx context.Context, category string, limit int) ([]domain.Cocktail, error)
}

// GetCocktailsByCategoryImpl is the implementation of the GetCocktailsByCategory use case.
type GetCocktailsByCategoryImpl struct {
	cocktailRepo domain.CocktailRepository
}

// NewGetCocktailsByCategoryImpl creates a new instance of GetCocktailsByCategoryImpl.
func NewGetCocktailsByCategoryImpl(cocktailRepo domain.CocktailRepository) GetCocktailsByCategoryImpl {
	return GetCocktailsByCategoryImpl{cocktailRepo: cocktailRepo}
}

// Query lists cocktails in an exact category. An unknown category returns an
// empty slice, not an error.
func (gc GetCocktailsByCategoryImpl) Query(ctx context.Context, category string, limit int) ([]domain.Cocktail, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	category = strings.TrimSpace(category)
	if category == "" {
		err := domain.NewValidationErr("category must not be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	results, err := gc.cocktailRepo.ListByCategory(spanCtx, category, normalizeLimit(limit))
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return results, nil
}

// InitGetCocktailsByCategory initializes the GetCocktailsByCategory use case
// and registers it in the dependency container.
type InitGetCocktailsByCategory struct {
	CocktailRepo domain.CocktailRepository `resolve:""`
}

// Initialize registers the GetCocktailsByCategory use case in the dependency container.
func (igc InitGetCocktailsByCategory) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetCocktailsByCategory](NewGetCocktailsByCategoryImpl(igc.CocktailRepo))
	return ctx, nil
}
