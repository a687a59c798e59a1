package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/shakerlab/shaker/internal/domain"
	"github.com/shakerlab/shaker/internal/telemetry"
)

// RecommendByOccasion defines the interface for occasion-driven recommendations.
type RecommendByOccasion interface {
	Query(ctx context.Context, occasion string, limit int) ([]domain.RankedCocktail, error)
}

// RecommendByOccasionImpl is the implementation of the RecommendByOccasion use case.
type RecommendByOccasionImpl struct {
	cocktailRepo    domain.CocktailRepository
	semanticEncoder domain.SemanticEncoder
	embeddingModel  string
}

// NewRecommendByOccasionImpl creates a new instance of RecommendByOccasionImpl.
func NewRecommendByOccasionImpl(cocktailRepo domain.CocktailRepository, semanticEncoder domain.SemanticEncoder, embeddingModel string) RecommendByOccasionImpl {
	return RecommendByOccasionImpl{
		cocktailRepo:    cocktailRepo,
		semanticEncoder: semanticEncoder,
		embeddingModel:  embeddingModel,
	}
}

// Query expands the occasion phrase, embeds it and returns the nearest cocktails.
func (ro RecommendByOccasionImpl) Query(ctx context.Context, occasion string, limit int) ([]domain.RankedCocktail, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(occasion) == "" {
		err := domain.NewValidationErr("occasion must not be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	build, err := NewCocktailQueryBuilder(ro.semanticEncoder, ro.embeddingModel).
		WithOccasion(&occasion).
		Build(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	RecordEmbeddingTokens(spanCtx, ro.embeddingModel, "recommend_by_occasion", build.EmbeddingTotalTokens)

	results, err := ro.cocktailRepo.SearchByVector(spanCtx, build.Embedding, normalizeLimit(limit), build.Options...)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return results, nil
}

// InitRecommendByOccasion initializes the RecommendByOccasion use case and
// registers it in the dependency container.
type InitRecommendByOccasion struct {
	CocktailRepo    domain.CocktailRepository `resolve:""`
	SemanticEncoder domain.SemanticEncoder    `resolve:""`
	EmbeddingModel  string                    `config:"EMBEDDING_MODEL" default:"all-MiniLM-L6-v2"`
}

// Initialize registers the RecommendByOccasion use case in the dependency container.
func (iro InitRecommendByOccasion) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RecommendByOccasion](NewRecommendByOccasionImpl(iro.CocktailRepo, iro.SemanticEncoder, iro.EmbeddingModel))
	return ctx, nil
}
