package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/shakerlab/shaker/internal/telemetry"
	"github.com/shakerlab/shaker/internal/usecases"
)

// ShakerAPIServer is the REST API server for the cocktail recommender.
type ShakerAPIServer struct {
	Port                          int                             `config:"HTTP_PORT" default:"8080"`
	Logger                        *log.Logger                     `resolve:""`
	RecommendByIngredientsUseCase usecases.RecommendByIngredients `resolve:""`
	RecommendByStyleUseCase       usecases.RecommendByStyle       `resolve:""`
	RecommendByOccasionUseCase    usecases.RecommendByOccasion    `resolve:""`
	RecommendMixedUseCase         usecases.RecommendMixed         `resolve:""`
	GetCocktailByNameUseCase      usecases.GetCocktailByName      `resolve:""`
	GetCocktailsByCategoryUseCase usecases.GetCocktailsByCategory `resolve:""`
	GetRandomCocktailsUseCase     usecases.GetRandomCocktails     `resolve:""`
	GetCorpusStatsUseCase         usecases.GetCorpusStats         `resolve:""`
}

// handler builds the routed handler with telemetry and CORS applied.
func (api ShakerAPIServer) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", api.Healthz)
	mux.HandleFunc("GET /api/v1/recommendations/ingredients", api.RecommendByIngredients)
	mux.HandleFunc("GET /api/v1/recommendations/styles", api.RecommendByStyle)
	mux.HandleFunc("GET /api/v1/recommendations/occasions", api.RecommendByOccasion)
	mux.HandleFunc("POST /api/v1/recommendations/mixed", api.RecommendMixed)
	mux.HandleFunc("GET /api/v1/cocktails", api.GetCocktailsByCategory)
	mux.HandleFunc("GET /api/v1/cocktails/random", api.GetRandomCocktails)
	mux.HandleFunc("GET /api/v1/cocktails/{name}", api.GetCocktailByName)
	mux.HandleFunc("GET /api/v1/stats", api.GetCorpusStats)

	h := telemetry.HttpHandler(mux, "shaker-api")

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the ShakerAPIServer.
func (api ShakerAPIServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler: api.handler(),
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("ShakerAPIServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("ShakerAPIServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("ShakerAPIServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the ShakerAPIServer is ready by performing a health check.
func (api ShakerAPIServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/healthz", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Healthz reports liveness.
func (api ShakerAPIServer) Healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
