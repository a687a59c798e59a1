package modelrunner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/shakerlab/shaker/internal/domain"
	"github.com/shakerlab/shaker/internal/telemetry"
)

// EncoderClient adapts DRMAPIClient to the domain.SemanticEncoder interface.
type EncoderClient struct {
	client DRMAPIClient
}

// NewEncoderClientAdapter creates a new adapter.
func NewEncoderClientAdapter(client DRMAPIClient) EncoderClient {
	return EncoderClient{client: client}
}

// VectorizeCorpus implements domain.SemanticEncoder. The whole batch goes to
// the embeddings endpoint in one request; the response data is reordered by
// index so vectors line up with the input texts.
func (e EncoderClient) VectorizeCorpus(ctx context.Context, model string, texts []string) (domain.EmbeddingBatch, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if len(texts) == 0 {
		return domain.EmbeddingBatch{}, nil
	}

	req := EmbeddingsRequest{Model: model, Input: texts}
	resp, err := e.client.Embeddings(spanCtx, req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingBatch{}, err
	}
	if len(resp.Data) != len(texts) {
		err := fmt.Errorf("embedding count mismatch: sent %d texts, got %d vectors", len(texts), len(resp.Data))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingBatch{}, err
	}

	data := make([]EmbeddingData, len(resp.Data))
	copy(data, resp.Data)
	sort.Slice(data, func(i, j int) bool { return data[i].Index < data[j].Index })

	batch := domain.EmbeddingBatch{
		Vectors:     make([][]float64, len(data)),
		TotalTokens: resp.Usage.TotalTokens,
	}
	for i, d := range data {
		if err := checkDimension(d.Embedding); err != nil {
			telemetry.RecordErrorAndStatus(span, err)
			return domain.EmbeddingBatch{}, err
		}
		batch.Vectors[i] = d.Embedding
	}
	return batch, nil
}

// VectorizeQuery implements domain.SemanticEncoder.
func (e EncoderClient) VectorizeQuery(ctx context.Context, model, query string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	req := EmbeddingsRequest{Model: model, Input: query}
	resp, err := e.client.Embeddings(spanCtx, req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	if len(resp.Data) == 0 {
		err := errors.New("no embedding data in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}
	if err := checkDimension(resp.Data[0].Embedding); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}

	return domain.EmbeddingVector{
		Vector:      resp.Data[0].Embedding,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

func checkDimension(vec []float64) error {
	if len(vec) != domain.EmbeddingDimension {
		return domain.NewDimensionErr(
			fmt.Sprintf("embedding has %d dimensions, store expects %d", len(vec), domain.EmbeddingDimension),
		)
	}
	return nil
}

// InitEncoderClient initializes the semantic encoder dependency.
type InitEncoderClient struct {
	Logger     *log.Logger  `resolve:""`
	HttpClient *http.Client `resolve:""`
	ModelHost  string       `config:"EMBEDDER_HOST" default:"http://localhost:12434"`
	ApiKey     string       `config:"EMBEDDER_API_KEY" default:""`
}

// Initialize registers the encoder. The models endpoint is probed once so a
// misconfigured embedder host shows up in the logs at startup rather than on
// the first query.
func (i InitEncoderClient) Initialize(ctx context.Context) (context.Context, error) {
	client := NewDRMAPIClient(i.ModelHost, i.ApiKey, i.HttpClient)
	if _, err := client.AvailableModels(ctx); err != nil {
		i.Logger.Printf("embedder at %s not reachable yet: %v", i.ModelHost, err)
	}

	depend.Register[domain.SemanticEncoder](NewEncoderClientAdapter(client))
	return ctx, nil
}
