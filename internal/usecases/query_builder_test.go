package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/shakerlab/shaker/internal/common"
	"github.com/shakerlab/shaker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/mock"
)

func TestCocktailQueryBuilder_QueryText(t *testing.T) {
	tests := map[string]struct {
		build    func(b *CocktailQueryBuilder) *CocktailQueryBuilder
		expected string
	}{
		"ingredients-lowercased-and-joined": {
			build: func(b *CocktailQueryBuilder) *CocktailQueryBuilder {
				return b.WithIngredients([]string{"Gin", " Lime Juice "})
			},
			expected: "cocktail with gin, lime juice",
		},
		"styles-expanded-into-phrase": {
			build: func(b *CocktailQueryBuilder) *CocktailQueryBuilder {
				return b.WithStyles([]string{"Sweet", "fruity"})
			},
			expected: "sweet sugary dessert, fruity fruit juice cocktail",
		},
		"occasion-expanded": {
			build: func(b *CocktailQueryBuilder) *CocktailQueryBuilder {
				return b.WithOccasion(common.Ptr("Party"))
			},
			expected: "cocktail for party celebration fun festive",
		},
		"unknown-occasion-passes-through": {
			build: func(b *CocktailQueryBuilder) *CocktailQueryBuilder {
				return b.WithOccasion(common.Ptr("quiet evening"))
			},
			expected: "cocktail for quiet evening",
		},
		"all-signals-combined": {
			build: func(b *CocktailQueryBuilder) *CocktailQueryBuilder {
				return b.
					WithIngredients([]string{"rum"}).
					WithStyles([]string{"refreshing"}).
					WithOccasion(common.Ptr("summer"))
			},
			expected: "cocktail with rum. refreshing light crisp cocktail. cocktail for summer refreshing cold beach",
		},
		"blank-signals-ignored": {
			build: func(b *CocktailQueryBuilder) *CocktailQueryBuilder {
				return b.
					WithIngredients([]string{"", "  "}).
					WithStyles(nil).
					WithOccasion(common.Ptr("   "))
			},
			expected: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := tt.build(NewCocktailQueryBuilder(nil, "all-MiniLM-L6-v2"))
			assert.Equal(t, tt.expected, b.QueryText())
		})
	}
}

func TestCocktailQueryBuilder_Build(t *testing.T) {
	vec := []float64{0.1, 0.2}

	tests := map[string]struct {
		build           func(enc *domain.MockSemanticEncoder) *CocktailQueryBuilder
		expectedErr     string
		expectEmptyErr  bool
		expectedOptions int
		expectedTokens  int
	}{
		"embeds-composed-text": {
			build: func(enc *domain.MockSemanticEncoder) *CocktailQueryBuilder {
				enc.EXPECT().
					VectorizeQuery(mock.Anything, "all-MiniLM-L6-v2", "cocktail with gin").
					Return(domain.EmbeddingVector{Vector: vec, TotalTokens: 7}, nil)
				return NewCocktailQueryBuilder(enc, "all-MiniLM-L6-v2").
					WithIngredients([]string{"gin"})
			},
			expectedTokens: 7,
		},
		"filters-become-options": {
			build: func(enc *domain.MockSemanticEncoder) *CocktailQueryBuilder {
				enc.EXPECT().
					VectorizeQuery(mock.Anything, "all-MiniLM-L6-v2", mock.Anything).
					Return(domain.EmbeddingVector{Vector: vec}, nil)
				return NewCocktailQueryBuilder(enc, "all-MiniLM-L6-v2").
					WithIngredients([]string{"gin"}).
					WithCategory(common.Ptr("Cocktail")).
					WithAlcoholic(common.Ptr("Alcoholic"))
			},
			expectedOptions: 2,
		},
		"alcoholic-only-embeds-preference-text": {
			build: func(enc *domain.MockSemanticEncoder) *CocktailQueryBuilder {
				enc.EXPECT().
					VectorizeQuery(mock.Anything, "all-MiniLM-L6-v2", "non alcoholic cocktail").
					Return(domain.EmbeddingVector{Vector: vec, TotalTokens: 4}, nil)
				return NewCocktailQueryBuilder(enc, "all-MiniLM-L6-v2").
					WithAlcoholic(common.Ptr("Non alcoholic"))
			},
			expectedOptions: 1,
			expectedTokens:  4,
		},
		"no-signal-is-rejected-before-encoding": {
			build: func(enc *domain.MockSemanticEncoder) *CocktailQueryBuilder {
				return NewCocktailQueryBuilder(enc, "all-MiniLM-L6-v2")
			},
			expectedErr:    "at least one of ingredients, styles, occasion or alcoholic preference must be provided",
			expectEmptyErr: true,
		},
		"blank-model-rejected": {
			build: func(enc *domain.MockSemanticEncoder) *CocktailQueryBuilder {
				return NewCocktailQueryBuilder(enc, " ").
					WithIngredients([]string{"gin"})
			},
			expectedErr: "embedding model cannot be empty",
		},
		"encoder-error-propagates": {
			build: func(enc *domain.MockSemanticEncoder) *CocktailQueryBuilder {
				enc.EXPECT().
					VectorizeQuery(mock.Anything, "all-MiniLM-L6-v2", mock.Anything).
					Return(domain.EmbeddingVector{}, errors.New("embedder down"))
				return NewCocktailQueryBuilder(enc, "all-MiniLM-L6-v2").
					WithIngredients([]string{"gin"})
			},
			expectedErr: "embedder down",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			enc := domain.NewMockSemanticEncoder(t)
			b := tt.build(enc)

			result, err := b.Build(context.Background())

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				if tt.expectEmptyErr {
					var emptyErr *domain.EmptyQueryErr
					assert.ErrorAs(t, err, &emptyErr)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, vec, result.Embedding)
			assert.Len(t, result.Options, tt.expectedOptions)
			assert.Equal(t, tt.expectedTokens, result.EmbeddingTotalTokens)
		})
	}
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, domain.DefaultSearchLimit, normalizeLimit(0))
	assert.Equal(t, domain.DefaultSearchLimit, normalizeLimit(-3))
	assert.Equal(t, 5, normalizeLimit(5))
}
