package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/shakerlab/shaker/internal/domain"
	"github.com/shakerlab/shaker/internal/telemetry"
)

// RecommendByStyle defines the interface for style-tag-driven recommendations.
type RecommendByStyle interface {
	Query(ctx context.Context, styles []string, limit int) ([]domain.RankedCocktail, error)
}

// RecommendByStyleImpl is the implementation of the RecommendByStyle use case.
type RecommendByStyleImpl struct {
	cocktailRepo    domain.CocktailRepository
	semanticEncoder domain.SemanticEncoder
	embeddingModel  string
}

// NewRecommendByStyleImpl creates a new instance of RecommendByStyleImpl.
func NewRecommendByStyleImpl(cocktailRepo domain.CocktailRepository, semanticEncoder domain.SemanticEncoder, embeddingModel string) RecommendByStyleImpl {
	return RecommendByStyleImpl{
		cocktailRepo:    cocktailRepo,
		semanticEncoder: semanticEncoder,
		embeddingModel:  embeddingModel,
	}
}

// Query turns style tags into a descriptive phrase, embeds it and returns
// the nearest cocktails.
func (rs RecommendByStyleImpl) Query(ctx context.Context, styles []string, limit int) ([]domain.RankedCocktail, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if len(styles) == 0 {
		err := domain.NewValidationErr("styles must not be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	build, err := NewCocktailQueryBuilder(rs.semanticEncoder, rs.embeddingModel).
		WithStyles(styles).
		Build(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	RecordEmbeddingTokens(spanCtx, rs.embeddingModel, "recommend_by_style", build.EmbeddingTotalTokens)

	results, err := rs.cocktailRepo.SearchByVector(spanCtx, build.Embedding, normalizeLimit(limit), build.Options...)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return results, nil
}

// InitRecommendByStyle initializes the RecommendByStyle use case and
// registers it in the dependency container.
type InitRecommendByStyle struct {
	CocktailRepo    domain.CocktailRepository `resolve:""`
	SemanticEncoder domain.SemanticEncoder    `resolve:""`
	EmbeddingModel  string                    `config:"EMBEDDING_MODEL" default:"all-MiniLM-L6-v2"`
}

// Initialize registers the RecommendByStyle use case in the dependency container.
func (irs InitRecommendByStyle) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RecommendByStyle](NewRecommendByStyleImpl(irs.CocktailRepo, irs.SemanticEncoder, irs.EmbeddingModel))
	return ctx, nil
}
