package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/shakerlab/shaker/internal/corpus"
	"github.com/shakerlab/shaker/internal/domain"
	"github.com/shakerlab/shaker/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// IngestReport summarizes one ingestion run.
type IngestReport struct {
	RunID           uuid.UUID
	StartedAt       time.Time
	FinishedAt      time.Time
	RowsIn          int
	RowsStored      int
	EmbeddingTokens int
}

// IngestCorpus defines the interface for loading a source corpus into the store.
type IngestCorpus interface {
	Execute(ctx context.Context, c corpus.Corpus) (IngestReport, error)
}

// IngestCorpusImpl is the implementation of the IngestCorpus use case.
type IngestCorpusImpl struct {
	unitOfWork      domain.UnitOfWork
	semanticEncoder domain.SemanticEncoder
	timeProvider    domain.CurrentTimeProvider
	embeddingModel  string
}

// NewIngestCorpusImpl creates a new instance of IngestCorpusImpl.
func NewIngestCorpusImpl(unitOfWork domain.UnitOfWork, semanticEncoder domain.SemanticEncoder, timeProvider domain.CurrentTimeProvider, embeddingModel string) IngestCorpusImpl {
	return IngestCorpusImpl{
		unitOfWork:      unitOfWork,
		semanticEncoder: semanticEncoder,
		timeProvider:    timeProvider,
		embeddingModel:  embeddingModel,
	}
}

// Execute normalizes and de-duplicates the corpus, embeds every combined
// text in one batch call, then clears and repopulates the store inside a
// single transaction. A failure in any stage names that stage and leaves the
// previous corpus untouched.
func (ic IngestCorpusImpl) Execute(ctx context.Context, c corpus.Corpus) (IngestReport, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("rows", len(c.Rows)),
		attribute.String("schema", c.Schema.String()),
	))
	defer span.End()

	report := IngestReport{
		RunID:     uuid.New(),
		StartedAt: ic.timeProvider.Now(),
		RowsIn:    len(c.Rows),
	}

	if len(c.Rows) == 0 {
		err := domain.NewValidationErr("corpus has no rows")
		telemetry.RecordErrorAndStatus(span, err)
		return report, err
	}

	deduped := corpus.DedupeRows(c.Rows, c.Schema)
	records := make([]corpus.Record, len(deduped))
	texts := make([]string, len(deduped))
	for i, row := range deduped {
		records[i] = corpus.Normalize(row, c.Schema)
		texts[i] = records[i].CombinedText()
	}

	batch, err := ic.semanticEncoder.VectorizeCorpus(spanCtx, ic.embeddingModel, texts)
	if err != nil {
		err = fmt.Errorf("embed corpus: %w", err)
		telemetry.RecordErrorAndStatus(span, err)
		return report, err
	}
	report.EmbeddingTokens = batch.TotalTokens
	RecordEmbeddingTokens(spanCtx, ic.embeddingModel, "ingest_corpus", batch.TotalTokens)

	err = ic.unitOfWork.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		repo := uow.Cocktails()
		if err := repo.DeleteAll(spanCtx); err != nil {
			return fmt.Errorf("clear corpus: %w", err)
		}
		for i, rec := range records {
			cocktail := domain.Cocktail{
				Name:        rec.Name,
				Ingredients: rec.IngredientsList(),
				Recipe:      rec.RecipeText(),
				Glass:       rec.Glass,
				Category:    rec.Category,
				Alcoholic:   rec.Alcoholic,
				Embedding:   batch.Vectors[i],
			}
			if err := repo.InsertCocktail(spanCtx, cocktail); err != nil {
				return fmt.Errorf("insert cocktail %q: %w", rec.Name, err)
			}
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return report, err
	}

	report.RowsStored = len(records)
	report.FinishedAt = ic.timeProvider.Now()
	return report, nil
}

// InitIngestCorpus initializes the IngestCorpus use case and registers it in
// the dependency container.
type InitIngestCorpus struct {
	UnitOfWork      domain.UnitOfWork          `resolve:""`
	SemanticEncoder domain.SemanticEncoder     `resolve:""`
	TimeProvider    domain.CurrentTimeProvider `resolve:""`
	EmbeddingModel  string                     `config:"EMBEDDING_MODEL" default:"all-MiniLM-L6-v2"`
}

// Initialize registers the IngestCorpus use case in the dependency container.
func (iic InitIngestCorpus) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[IngestCorpus](NewIngestCorpusImpl(iic.UnitOfWork, iic.SemanticEncoder, iic.TimeProvider, iic.EmbeddingModel))
	return ctx, nil
}
