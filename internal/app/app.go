package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/shakerlab/shaker/internal/adapters/inbound/http"
	"github.com/shakerlab/shaker/internal/adapters/inbound/workers"
	"github.com/shakerlab/shaker/internal/adapters/outbound/config"
	"github.com/shakerlab/shaker/internal/adapters/outbound/log"
	"github.com/shakerlab/shaker/internal/adapters/outbound/modelrunner"
	"github.com/shakerlab/shaker/internal/adapters/outbound/postgres"
	"github.com/shakerlab/shaker/internal/adapters/outbound/time"
	"github.com/shakerlab/shaker/internal/telemetry"
	"github.com/shakerlab/shaker/internal/usecases"
)

// newBaseApp wires the initializers shared by every binary.
func newBaseApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitCocktailRepository{},
			&time.InitCurrentTimeProvider{},
			&modelrunner.InitEncoderClient{},

			&usecases.InitRecommendByIngredients{},
			&usecases.InitRecommendByStyle{},
			&usecases.InitRecommendByOccasion{},
			&usecases.InitRecommendMixed{},
			&usecases.InitGetCocktailByName{},
			&usecases.InitGetCocktailsByCategory{},
			&usecases.InitGetRandomCocktails{},
			&usecases.InitGetCorpusStats{},
			&usecases.InitIngestCorpus{},
		).
		Introspect(&MermaidGraphIntrospector{})
}

// NewServerApp creates the API server application.
func NewServerApp(initializers ...symbiont.Initializer) *symbiont.App {
	return newBaseApp(initializers...).
		Host(
			&http.ShakerAPIServer{},
			&workers.CorpusRefresher{},
		)
}

// NewIngestApp creates the one-shot ingestion application. Its only host is
// the ingest job, so the process exits when the job finishes.
func NewIngestApp(initializers ...symbiont.Initializer) *symbiont.App {
	return newBaseApp(initializers...).
		Host(
			&workers.IngestJob{},
		)
}
