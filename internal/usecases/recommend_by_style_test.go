package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/shakerlab/shaker/internal/common"
	"github.com/shakerlab/shaker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecommendByStyleImpl_Query(t *testing.T) {
	vec := []float64{0.5, 0.6}
	ranked := []domain.RankedCocktail{
		{Cocktail: domain.Cocktail{ID: 3, Name: "Daiquiri"}, Similarity: common.Ptr(0.7)},
	}

	tests := map[string]struct {
		styles          []string
		setExpectations func(repo *domain.MockCocktailRepository, enc *domain.MockSemanticEncoder)
		expectedResults []domain.RankedCocktail
		expectedErr     string
	}{
		"style-tags-expanded": {
			styles: []string{"sweet", "fruity"},
			setExpectations: func(repo *domain.MockCocktailRepository, enc *domain.MockSemanticEncoder) {
				enc.EXPECT().
					VectorizeQuery(mock.Anything, "all-MiniLM-L6-v2", "sweet sugary dessert, fruity fruit juice cocktail").
					Return(domain.EmbeddingVector{Vector: vec, TotalTokens: 9}, nil)
				repo.EXPECT().
					SearchByVector(mock.Anything, vec, domain.DefaultSearchLimit).
					Return(ranked, nil)
			},
			expectedResults: ranked,
		},
		"empty-styles": {
			styles:      nil,
			expectedErr: "styles must not be empty",
		},
		"repository-error": {
			styles: []string{"sour"},
			setExpectations: func(repo *domain.MockCocktailRepository, enc *domain.MockSemanticEncoder) {
				enc.EXPECT().
					VectorizeQuery(mock.Anything, "all-MiniLM-L6-v2", mock.Anything).
					Return(domain.EmbeddingVector{Vector: vec}, nil)
				repo.EXPECT().
					SearchByVector(mock.Anything, vec, domain.DefaultSearchLimit).
					Return(nil, errors.New("database error"))
			},
			expectedErr: "database error",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockCocktailRepository(t)
			enc := domain.NewMockSemanticEncoder(t)
			if tt.setExpectations != nil {
				tt.setExpectations(repo, enc)
			}

			rs := NewRecommendByStyleImpl(repo, enc, "all-MiniLM-L6-v2")

			got, gotErr := rs.Query(context.Background(), tt.styles, 0)

			if tt.expectedErr != "" {
				assert.ErrorContains(t, gotErr, tt.expectedErr)
				return
			}
			assert.NoError(t, gotErr)
			assert.Equal(t, tt.expectedResults, got)
		})
	}
}

func TestRecommendByOccasionImpl_Query(t *testing.T) {
	vec := []float64{0.7, 0.8}
	ranked := []domain.RankedCocktail{
		{Cocktail: domain.Cocktail{ID: 4, Name: "Champagne Cocktail"}, Similarity: common.Ptr(0.85)},
	}

	tests := map[string]struct {
		occasion        string
		setExpectations func(repo *domain.MockCocktailRepository, enc *domain.MockSemanticEncoder)
		expectedResults []domain.RankedCocktail
		expectedErr     string
	}{
		"occasion-expanded": {
			occasion: "christmas",
			setExpectations: func(repo *domain.MockCocktailRepository, enc *domain.MockSemanticEncoder) {
				enc.EXPECT().
					VectorizeQuery(mock.Anything, "all-MiniLM-L6-v2", "cocktail for christmas holiday festive").
					Return(domain.EmbeddingVector{Vector: vec, TotalTokens: 5}, nil)
				repo.EXPECT().
					SearchByVector(mock.Anything, vec, domain.DefaultSearchLimit).
					Return(ranked, nil)
			},
			expectedResults: ranked,
		},
		"blank-occasion": {
			occasion:    "   ",
			expectedErr: "occasion must not be empty",
		},
		"encoder-error": {
			occasion: "party",
			setExpectations: func(repo *domain.MockCocktailRepository, enc *domain.MockSemanticEncoder) {
				enc.EXPECT().
					VectorizeQuery(mock.Anything, "all-MiniLM-L6-v2", mock.Anything).
					Return(domain.EmbeddingVector{}, errors.New("embedder down"))
			},
			expectedErr: "embedder down",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockCocktailRepository(t)
			enc := domain.NewMockSemanticEncoder(t)
			if tt.setExpectations != nil {
				tt.setExpectations(repo, enc)
			}

			ro := NewRecommendByOccasionImpl(repo, enc, "all-MiniLM-L6-v2")

			got, gotErr := ro.Query(context.Background(), tt.occasion, 0)

			if tt.expectedErr != "" {
				assert.ErrorContains(t, gotErr, tt.expectedErr)
				return
			}
			assert.NoError(t, gotErr)
			assert.Equal(t, tt.expectedResults, got)
		})
	}
}
