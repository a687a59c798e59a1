package workers

import (
	"context"
	"errors"
	"log"

	"github.com/shakerlab/shaker/internal/corpus"
	"github.com/shakerlab/shaker/internal/usecases"
)

// IngestJob is a runnable that executes one corpus ingestion and exits. It is
// the only host of the ingest binary, so the process ends when it returns.
type IngestJob struct {
	IngestCorpusUseCase usecases.IngestCorpus `resolve:""`
	Logger              *log.Logger           `resolve:""`
	CSVPath             string                `config:"CORPUS_CSV_PATH" default:""`
}

// Run loads the corpus CSV and ingests it.
func (ij IngestJob) Run(ctx context.Context) error {
	if ij.CSVPath == "" {
		return errors.New("CORPUS_CSV_PATH is required")
	}

	c, err := corpus.LoadCSVFile(ij.CSVPath)
	if err != nil {
		return err
	}
	ij.Logger.Printf("IngestJob: loaded %d rows (%s schema) from %s", len(c.Rows), c.Schema, ij.CSVPath)

	report, err := ij.IngestCorpusUseCase.Execute(ctx, c)
	if err != nil {
		return err
	}

	ij.Logger.Printf("IngestJob: run %s stored %d/%d rows (%d embedding tokens)",
		report.RunID, report.RowsStored, report.RowsIn, report.EmbeddingTokens)
	return nil
}
