package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/shakerlab/shaker/internal/domain"
	"github.com/shakerlab/shaker/internal/telemetry"
)

// MixedPreferences carries any combination of preference signals for a
// combined recommendation. Alcoholic and Category are exact store filters;
// ingredients, styles and occasion feed the embedded query text, and an
// alcoholic preference on its own stands in as the query text.
type MixedPreferences struct {
	Ingredients []string
	Styles      []string
	Occasion    *string
	Alcoholic   *string
	Category    *string
}

// RecommendMixed defines the interface for combined-preference recommendations.
type RecommendMixed interface {
	Query(ctx context.Context, prefs MixedPreferences, limit int) ([]domain.RankedCocktail, error)
}

// RecommendMixedImpl is the implementation of the RecommendMixed use case.
type RecommendMixedImpl struct {
	cocktailRepo    domain.CocktailRepository
	semanticEncoder domain.SemanticEncoder
	embeddingModel  string
}

// NewRecommendMixedImpl creates a new instance of RecommendMixedImpl.
func NewRecommendMixedImpl(cocktailRepo domain.CocktailRepository, semanticEncoder domain.SemanticEncoder, embeddingModel string) RecommendMixedImpl {
	return RecommendMixedImpl{
		cocktailRepo:    cocktailRepo,
		semanticEncoder: semanticEncoder,
		embeddingModel:  embeddingModel,
	}
}

// Query combines whichever signals are populated into one query text, embeds
// it and searches with the optional exact filters. A request with no
// populated signal is rejected before any encoder or store call.
func (rm RecommendMixedImpl) Query(ctx context.Context, prefs MixedPreferences, limit int) ([]domain.RankedCocktail, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	build, err := NewCocktailQueryBuilder(rm.semanticEncoder, rm.embeddingModel).
		WithIngredients(prefs.Ingredients).
		WithStyles(prefs.Styles).
		WithOccasion(prefs.Occasion).
		WithCategory(prefs.Category).
		WithAlcoholic(prefs.Alcoholic).
		Build(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	RecordEmbeddingTokens(spanCtx, rm.embeddingModel, "recommend_mixed", build.EmbeddingTotalTokens)

	results, err := rm.cocktailRepo.SearchByVector(spanCtx, build.Embedding, normalizeLimit(limit), build.Options...)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return results, nil
}

// InitRecommendMixed initializes the RecommendMixed use case and registers it
// in the dependency container.
type InitRecommendMixed struct {
	CocktailRepo    domain.CocktailRepository `resolve:""`
	SemanticEncoder domain.SemanticEncoder    `resolve:""`
	EmbeddingModel  string                    `config:"EMBEDDING_MODEL" default:"all-MiniLM-L6-v2"`
}

// Initialize registers the RecommendMixed use case in the dependency container.
func (irm InitRecommendMixed) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RecommendMixed](NewRecommendMixedImpl(irm.CocktailRepo, irm.SemanticEncoder, irm.EmbeddingModel))
	return ctx, nil
}
