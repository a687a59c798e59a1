package usecases

import (
	"context"
	"strings"

	"github.com/shakerlab/shaker/internal/domain"
)

// CocktailQueryBuildResult is the output of CocktailQueryBuilder.Build.
type CocktailQueryBuildResult struct {
	Embedding            []float64
	Options              []domain.SearchOption
	EmbeddingTotalTokens int
}

// CocktailQueryBuilder composes the query text from whichever preference
// signals are populated, applies the phrase expansions and produces the
// query embedding plus store filters. It centralizes the empty-query guard
// so no encoder or store call happens for a signal-free request.
type CocktailQueryBuilder struct {
	semanticEncoder domain.SemanticEncoder
	embeddingModel  string

	ingredients []string
	styles      []string
	occasion    *string
	category    *string
	alcoholic   *string
}

// NewCocktailQueryBuilder creates a new CocktailQueryBuilder.
func NewCocktailQueryBuilder(semanticEncoder domain.SemanticEncoder, embeddingModel string) *CocktailQueryBuilder {
	return &CocktailQueryBuilder{
		semanticEncoder: semanticEncoder,
		embeddingModel:  embeddingModel,
	}
}

// WithIngredients sets the ingredient preference signal.
func (b *CocktailQueryBuilder) WithIngredients(ingredients []string) *CocktailQueryBuilder {
	b.ingredients = ingredients
	return b
}

// WithStyles sets the style-tag preference signal.
func (b *CocktailQueryBuilder) WithStyles(styles []string) *CocktailQueryBuilder {
	b.styles = styles
	return b
}

// WithOccasion sets the occasion preference signal.
func (b *CocktailQueryBuilder) WithOccasion(occasion *string) *CocktailQueryBuilder {
	b.occasion = occasion
	return b
}

// WithCategory sets an optional exact category filter.
func (b *CocktailQueryBuilder) WithCategory(category *string) *CocktailQueryBuilder {
	b.category = category
	return b
}

// WithAlcoholic sets an optional exact alcoholic-type filter.
func (b *CocktailQueryBuilder) WithAlcoholic(alcoholic *string) *CocktailQueryBuilder {
	b.alcoholic = alcoholic
	return b
}

// QueryText returns the composed query text without embedding it.
func (b *CocktailQueryBuilder) QueryText() string {
	var parts []string
	if text := ingredientsQueryText(b.ingredients); text != "" {
		parts = append(parts, text)
	}
	if text := styleQueryText(b.styles); text != "" {
		parts = append(parts, text)
	}
	if b.occasion != nil {
		if text := occasionQueryText(*b.occasion); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, ". ")
}

// Build validates the configured signals, embeds the composed query text and
// returns the embedding plus store filters.
func (b *CocktailQueryBuilder) Build(ctx context.Context) (CocktailQueryBuildResult, error) {
	queryText := b.QueryText()
	if queryText == "" {
		// An alcoholic preference on its own is still a valid query, e.g.
		// "non alcoholic cocktail".
		queryText = alcoholicQueryText(b.alcoholic)
	}
	if queryText == "" {
		return CocktailQueryBuildResult{}, domain.NewEmptyQueryErr("at least one of ingredients, styles, occasion or alcoholic preference must be provided")
	}

	if b.semanticEncoder == nil {
		return CocktailQueryBuildResult{}, domain.NewValidationErr("semantic encoder is required")
	}
	if strings.TrimSpace(b.embeddingModel) == "" {
		return CocktailQueryBuildResult{}, domain.NewValidationErr("embedding model cannot be empty")
	}

	result := CocktailQueryBuildResult{}
	if b.category != nil && strings.TrimSpace(*b.category) != "" {
		result.Options = append(result.Options, domain.WithCategory(strings.TrimSpace(*b.category)))
	}
	if b.alcoholic != nil && strings.TrimSpace(*b.alcoholic) != "" {
		result.Options = append(result.Options, domain.WithAlcoholic(strings.TrimSpace(*b.alcoholic)))
	}

	resp, err := b.semanticEncoder.VectorizeQuery(ctx, b.embeddingModel, queryText)
	if err != nil {
		return CocktailQueryBuildResult{}, err
	}
	result.Embedding = resp.Vector
	result.EmbeddingTotalTokens = resp.TotalTokens
	return result, nil
}

// normalizeLimit applies the default search limit when the caller passes a
// non-positive value.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return domain.DefaultSearchLimit
	}
	return limit
}
