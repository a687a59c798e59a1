package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shakerlab/shaker/internal/common"
	"github.com/shakerlab/shaker/internal/domain"
	"github.com/shakerlab/shaker/internal/usecases"
	"github.com/shakerlab/shaker/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	domainMargarita = domain.Cocktail{
		ID:          1,
		Name:        "Margarita",
		Ingredients: "Tequila, Lime juice, Triple sec",
		Recipe:      "- 2 oz Tequila\n- 1 oz Lime juice\n- 1 oz Triple sec\n\nShake with ice.",
		Glass:       "Cocktail glass",
		Category:    "Cocktail",
		Alcoholic:   "Alcoholic",
	}
	rankedMargarita = domain.RankedCocktail{
		Cocktail:   domainMargarita,
		Similarity: common.Ptr(0.93),
	}
)

func serializeJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func decodeJSON[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

func TestShakerAPIServer_RecommendByIngredients(t *testing.T) {
	tests := map[string]struct {
		target          string
		setExpectations func(m *mocks.MockRecommendByIngredients)
		expectedStatus  int
		expectedItems   int
		expectedError   *ErrorResp
	}{
		"success": {
			target: "/api/v1/recommendations/ingredients?ingredients=tequila,%20lime&limit=5",
			setExpectations: func(m *mocks.MockRecommendByIngredients) {
				m.EXPECT().
					Query(mock.Anything, []string{"tequila", "lime"}, 5).
					Return([]domain.RankedCocktail{rankedMargarita}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedItems:  1,
		},
		"default-limit-when-absent": {
			target: "/api/v1/recommendations/ingredients?ingredients=gin",
			setExpectations: func(m *mocks.MockRecommendByIngredients) {
				m.EXPECT().
					Query(mock.Anything, []string{"gin"}, 0).
					Return([]domain.RankedCocktail{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedItems:  0,
		},
		"invalid-limit": {
			target:         "/api/v1/recommendations/ingredients?ingredients=gin&limit=abc",
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{
				Error: Error{Code: BADREQUEST, Message: `invalid limit "abc"`},
			},
		},
		"empty-ingredients-rejected": {
			target: "/api/v1/recommendations/ingredients",
			setExpectations: func(m *mocks.MockRecommendByIngredients) {
				m.EXPECT().
					Query(mock.Anything, []string(nil), 0).
					Return(nil, domain.NewValidationErr("ingredients must not be empty"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{
				Error: Error{Code: BADREQUEST, Message: "ingredients must not be empty"},
			},
		},
		"internal-server-error": {
			target: "/api/v1/recommendations/ingredients?ingredients=gin",
			setExpectations: func(m *mocks.MockRecommendByIngredients) {
				m.EXPECT().
					Query(mock.Anything, []string{"gin"}, 0).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError: &ErrorResp{
				Error: Error{Code: INTERNALERROR, Message: "internal server error"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockRecommend := mocks.NewMockRecommendByIngredients(t)
			if tt.setExpectations != nil {
				tt.setExpectations(mockRecommend)
			}

			server := ShakerAPIServer{
				RecommendByIngredientsUseCase: mockRecommend,
				Logger:                        log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			server.handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != nil {
				resp := decodeJSON[ErrorResp](t, w.Body.Bytes())
				assert.Equal(t, tt.expectedError.Error, resp.Error)
				return
			}

			resp := decodeJSON[CocktailsResp](t, w.Body.Bytes())
			assert.Len(t, resp.Items, tt.expectedItems)
			if tt.expectedItems > 0 {
				assert.Equal(t, "Margarita", resp.Items[0].Name)
				assert.Equal(t, []string{"Tequila", "Lime juice", "Triple sec"}, resp.Items[0].Tags)
				require.NotNil(t, resp.Items[0].Similarity)
				assert.InDelta(t, 0.93, *resp.Items[0].Similarity, 1e-9)
			}
		})
	}
}

func TestShakerAPIServer_RecommendByStyle(t *testing.T) {
	tests := map[string]struct {
		target          string
		setExpectations func(m *mocks.MockRecommendByStyle)
		expectedStatus  int
	}{
		"success": {
			target: "/api/v1/recommendations/styles?styles=sweet,fruity&limit=3",
			setExpectations: func(m *mocks.MockRecommendByStyle) {
				m.EXPECT().
					Query(mock.Anything, []string{"sweet", "fruity"}, 3).
					Return([]domain.RankedCocktail{rankedMargarita}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		"usecase-error": {
			target: "/api/v1/recommendations/styles?styles=sweet",
			setExpectations: func(m *mocks.MockRecommendByStyle) {
				m.EXPECT().
					Query(mock.Anything, []string{"sweet"}, 0).
					Return(nil, errors.New("embedder down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockRecommend := mocks.NewMockRecommendByStyle(t)
			if tt.setExpectations != nil {
				tt.setExpectations(mockRecommend)
			}

			server := ShakerAPIServer{
				RecommendByStyleUseCase: mockRecommend,
				Logger:                  log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			server.handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestShakerAPIServer_RecommendByOccasion(t *testing.T) {
	mockRecommend := mocks.NewMockRecommendByOccasion(t)
	mockRecommend.EXPECT().
		Query(mock.Anything, "party", 2).
		Return([]domain.RankedCocktail{rankedMargarita}, nil)

	server := ShakerAPIServer{
		RecommendByOccasionUseCase: mockRecommend,
		Logger:                     log.New(io.Discard, "", 0),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/occasions?occasion=party&limit=2", nil)
	w := httptest.NewRecorder()

	server.handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeJSON[CocktailsResp](t, w.Body.Bytes())
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Margarita", resp.Items[0].Name)
}

func TestShakerAPIServer_RecommendMixed(t *testing.T) {
	tests := map[string]struct {
		requestBody     []byte
		setExpectations func(m *mocks.MockRecommendMixed)
		expectedStatus  int
		expectedError   *ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, MixedRecommendationReq{
				Ingredients: []string{"rum"},
				Styles:      []string{"refreshing"},
				Occasion:    common.Ptr("summer"),
				Category:    common.Ptr("Cocktail"),
				Limit:       4,
			}),
			setExpectations: func(m *mocks.MockRecommendMixed) {
				m.EXPECT().
					Query(mock.Anything, usecases.MixedPreferences{
						Ingredients: []string{"rum"},
						Styles:      []string{"refreshing"},
						Occasion:    common.Ptr("summer"),
						Category:    common.Ptr("Cocktail"),
					}, 4).
					Return([]domain.RankedCocktail{rankedMargarita}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		"invalid-json-body": {
			requestBody:    []byte(`{"ingredients": [`),
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{
				Error: Error{Code: BADREQUEST, Message: "invalid request body: unexpected EOF"},
			},
		},
		"no-signal-rejected": {
			requestBody: serializeJSON(t, MixedRecommendationReq{}),
			setExpectations: func(m *mocks.MockRecommendMixed) {
				m.EXPECT().
					Query(mock.Anything, usecases.MixedPreferences{}, 0).
					Return(nil, domain.NewEmptyQueryErr("at least one of ingredients, styles, occasion or alcoholic preference must be provided"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{
				Error: Error{Code: BADREQUEST, Message: "at least one of ingredients, styles, occasion or alcoholic preference must be provided"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockRecommend := mocks.NewMockRecommendMixed(t)
			if tt.setExpectations != nil {
				tt.setExpectations(mockRecommend)
			}

			server := ShakerAPIServer{
				RecommendMixedUseCase: mockRecommend,
				Logger:                log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/mixed", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			server.handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != nil {
				resp := decodeJSON[ErrorResp](t, w.Body.Bytes())
				assert.Equal(t, tt.expectedError.Error, resp.Error)
			}
		})
	}
}
