package usecases

import (
	"context"

	"github.com/shakerlab/shaker/internal/telemetry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter               = otel.Meter("usecases")
	EmbeddingTokensUsed metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by the embedding model across ingestion and queries
	EmbeddingTokensUsed, err = meter.Int64Counter(
		"embedding_tokens_used_total",
		metric.WithDescription("Total embedding tokens consumed"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordEmbeddingTokens records the number of tokens one embedding operation
// consumed, attributed to the model and operation that spent them.
func RecordEmbeddingTokens(ctx context.Context, model, operation string, totalTokens int) {
	EmbeddingTokensUsed.Add(ctx, int64(totalTokens), metric.WithAttributes(
		telemetry.WithEmbeddingMetricAttributes(model, operation)...,
	))
}
