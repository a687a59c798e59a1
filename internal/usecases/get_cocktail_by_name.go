package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/shakerlab/shaker/internal/domain"
	"github.com/shakerlab/shaker/internal/telemetry"
)

// GetCocktailByName defines the interface for name lookups.
type GetCocktailByName interface {
	Query(ctx context.Context, name string) ([]domain.Cocktail, error)
}

// GetCocktailByNameImpl is the implementation of the GetCocktailByName use case.
type GetCocktailByNameImpl struct {
	cocktailRepo domain.CocktailRepository
}

// NewGetCocktailByNameImpl creates a new instance of GetCocktailByNameImpl.
func NewGetCocktailByNameImpl(cocktailRepo domain.CocktailRepository) GetCocktailByNameImpl {
	return GetCocktailByNameImpl{cocktailRepo: cocktailRepo}
}

// Query looks cocktails up by a case-insensitive name fragment. No embedding
// is involved; matches carry no similarity.
func (gn GetCocktailByNameImpl) Query(ctx context.Context, name string) ([]domain.Cocktail, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		err := domain.NewValidationErr("name must not be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	results, err := gn.cocktailRepo.SearchByName(spanCtx, name)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if len(results) == 0 {
		err := domain.NewNotFoundErr("no cocktail matches name " + name)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	return results, nil
}

// InitGetCocktailByName initializes the GetCocktailByName use case and
// registers it in the dependency container.
type InitGetCocktailByName struct {
	CocktailRepo domain.CocktailRepository `resolve:""`
}

// Initialize registers the GetCocktailByName use case in the dependency container.
func (ign InitGetCocktailByName) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetCocktailByName](NewGetCocktailByNameImpl(ign.CocktailRepo))
	return ctx, nil
}
