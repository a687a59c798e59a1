package http

import (
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shakerlab/shaker/internal/domain"
	"github.com/shakerlab/shaker/internal/usecases"
	"github.com/shakerlab/shaker/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShakerAPIServer_GetCocktailByName(t *testing.T) {
	tests := map[string]struct {
		target          string
		setExpectations func(m *mocks.MockGetCocktailByName)
		expectedStatus  int
		expectedError   *ErrorResp
	}{
		"success": {
			target: "/api/v1/cocktails/margarita",
			setExpectations: func(m *mocks.MockGetCocktailByName) {
				m.EXPECT().
					Query(mock.Anything, "margarita").
					Return([]domain.Cocktail{domainMargarita}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		"not-found": {
			target: "/api/v1/cocktails/unicorn",
			setExpectations: func(m *mocks.MockGetCocktailByName) {
				m.EXPECT().
					Query(mock.Anything, "unicorn").
					Return(nil, domain.NewNotFoundErr("no cocktail matches name unicorn"))
			},
			expectedStatus: http.StatusNotFound,
			expectedError: &ErrorResp{
				Error: Error{Code: NOTFOUND, Message: "no cocktail matches name unicorn"},
			},
		},
		"internal-server-error": {
			target: "/api/v1/cocktails/margarita",
			setExpectations: func(m *mocks.MockGetCocktailByName) {
				m.EXPECT().
					Query(mock.Anything, "margarita").
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
			mockGet := mocks.NewMockGetCocktailByName(t)
			if tt.setExpectations != nil {
				tt.setExpectations(mockGet)
			}

			server := ShakerAPIServer{
				GetCocktailByNameUseCase: mockGet,
				Logger:                   log.New(io.Discard, "", 0),
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
			require.Len(t, resp.Items, 1)
			assert.Equal(t, "Margarita", resp.Items[0].Name)
			assert.Nil(t, resp.Items[0].Similarity)
		})
	}
}

func TestShakerAPIServer_GetCocktailsByCategory(t *testing.T) {
	tests := map[string]struct {
		target          string
		setExpectations func(m *mocks.MockGetCocktailsByCategory)
		expectedStatus  int
		expectedItems   int
	}{
		"success": {
			target: "/api/v1/cocktails?category=Shot&limit=5",
			setExpectations: func(m *mocks.MockGetCocktailsByCategory) {
				m.EXPECT().
					Query(mock.Anything, "Shot", 5).
					Return([]domain.Cocktail{domainMargarita}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedItems:  1,
		},
		"unknown-category-empty": {
			target: "/api/v1/cocktails?category=Nope",
			setExpectations: func(m *mocks.MockGetCocktailsByCategory) {
				m.EXPECT().
					Query(mock.Anything, "Nope", 0).
					Return([]domain.Cocktail{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedItems:  0,
		},
		"blank-category-rejected": {
			target: "/api/v1/cocktails",
			setExpectations: func(m *mocks.MockGetCocktailsByCategory) {
				m.EXPECT().
					Query(mock.Anything, "", 0).
					Return(nil, domain.NewValidationErr("category must not be empty"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockGet := mocks.NewMockGetCocktailsByCategory(t)
			if tt.setExpectations != nil {
				tt.setExpectations(mockGet)
			}

			server := ShakerAPIServer{
				GetCocktailsByCategoryUseCase: mockGet,
				Logger:                        log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			server.handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				resp := decodeJSON[CocktailsResp](t, w.Body.Bytes())
				assert.Len(t, resp.Items, tt.expectedItems)
			}
		})
	}
}

func TestShakerAPIServer_GetRandomCocktails(t *testing.T) {
	mockGet := mocks.NewMockGetRandomCocktails(t)
	mockGet.EXPECT().
		Query(mock.Anything, 2).
		Return([]domain.Cocktail{domainMargarita, {Name: "Mojito"}}, nil)

	server := ShakerAPIServer{
		GetRandomCocktailsUseCase: mockGet,
		Logger:                    log.New(io.Discard, "", 0),
	}

	// The literal segment must win over the name wildcard.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cocktails/random?limit=2", nil)
	w := httptest.NewRecorder()

	server.handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeJSON[CocktailsResp](t, w.Body.Bytes())
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Margarita", resp.Items[0].Name)
	assert.Equal(t, "Mojito", resp.Items[1].Name)
}

func TestShakerAPIServer_GetCorpusStats(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(m *mocks.MockGetCorpusStats)
		expectedStatus  int
		expectedTotal   int64
	}{
		"success": {
			setExpectations: func(m *mocks.MockGetCorpusStats) {
				m.EXPECT().
					Query(mock.Anything).
					Return(usecases.CorpusStats{TotalCocktails: 612}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  612,
		},
		"internal-server-error": {
			setExpectations: func(m *mocks.MockGetCorpusStats) {
				m.EXPECT().
					Query(mock.Anything).
					Return(usecases.CorpusStats{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockStats := mocks.NewMockGetCorpusStats(t)
			tt.setExpectations(mockStats)

			server := ShakerAPIServer{
				GetCorpusStatsUseCase: mockStats,
				Logger:                log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
			w := httptest.NewRecorder()

			server.handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				resp := decodeJSON[StatsResp](t, w.Body.Bytes())
				assert.Equal(t, tt.expectedTotal, resp.TotalCocktails)
			}
		})
	}
}

func TestShakerAPIServer_Healthz(t *testing.T) {
	server := ShakerAPIServer{Logger: log.New(io.Discard, "", 0)}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	server.handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
