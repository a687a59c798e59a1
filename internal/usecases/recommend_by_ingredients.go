package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/shakerlab/shaker/internal/domain"
	"github.com/shakerlab/shaker/internal/telemetry"
)

// RecommendByIngredients defines the interface for ingredient-driven recommendations.
type RecommendByIngredients interface {
	Query(ctx context.Context, ingredients []string, limit int) ([]domain.RankedCocktail, error)
}

// RecommendByIngredientsImpl is the implementation of the RecommendByIngredients use case.
type RecommendByIngredientsImpl struct {
	cocktailRepo    domain.CocktailRepository
	semanticEncoder domain.SemanticEncoder
	embeddingModel  string
}

// NewRecommendByIngredientsImpl creates a new instance of RecommendByIngredientsImpl.
func NewRecommendByIngredientsImpl(cocktailRepo domain.CocktailRepository, semanticEncoder domain.SemanticEncoder, embeddingModel string) RecommendByIngredientsImpl {
	return RecommendByIngredientsImpl{
		cocktailRepo:    cocktailRepo,
		semanticEncoder: semanticEncoder,
		embeddingModel:  embeddingModel,
	}
}

// Query embeds the ingredient list and returns the nearest cocktails.
func (ri RecommendByIngredientsImpl) Query(ctx context.Context, ingredients []string, limit int) ([]domain.RankedCocktail, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if len(ingredients) == 0 {
		err := domain.NewValidationErr("ingredients must not be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	build, err := NewCocktailQueryBuilder(ri.semanticEncoder, ri.embeddingModel).
		WithIngredients(ingredients).
		Build(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	RecordEmbeddingTokens(spanCtx, ri.embeddingModel, "recommend_by_ingredients", build.EmbeddingTotalTokens)

	results, err := ri.cocktailRepo.SearchByVector(spanCtx, build.Embedding, normalizeLimit(limit), build.Options...)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return results, nil
}

// InitRecommendByIngredients initializes the RecommendByIngredients use case
// and registers it in the dependency container.
type InitRecommendByIngredients struct {
	CocktailRepo    domain.CocktailRepository `resolve:""`
	SemanticEncoder domain.SemanticEncoder    `resolve:""`
	EmbeddingModel  string                    `config:"EMBEDDING_MODEL" default:"all-MiniLM-L6-v2"`
}

// Initialize registers the RecommendByIngredients use case in the dependency container.
func (iri InitRecommendByIngredients) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RecommendByIngredients](NewRecommendByIngredientsImpl(iri.CocktailRepo, iri.SemanticEncoder, iri.EmbeddingModel))
	return ctx, nil
}
