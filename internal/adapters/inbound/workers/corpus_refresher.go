package workers

import (
	"context"
	"log"
	"time"

	"github.com/shakerlab/shaker/internal/corpus"
	"github.com/shakerlab/shaker/internal/usecases"
)

// CorpusRefresher is a runnable that periodically re-ingests the corpus from
// a CSV file. It is the application's single writer, so refresh runs are
// naturally serialized. With no path or a zero interval it stays idle.
type CorpusRefresher struct {
	IngestCorpusUseCase usecases.IngestCorpus `resolve:""`
	Logger              *log.Logger           `resolve:""`
	CSVPath             string                `config:"CORPUS_CSV_PATH" default:""`
	Interval            time.Duration         `config:"CORPUS_REFRESH_INTERVAL" default:"0s"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic corpus refresh.
func (cr CorpusRefresher) Run(ctx context.Context) error {
	if cr.CSVPath == "" || cr.Interval <= 0 {
		cr.Logger.Println("CorpusRefresher: disabled")
		<-ctx.Done()
		return nil
	}

	cr.Logger.Printf("CorpusRefresher: refreshing from %s every %s", cr.CSVPath, cr.Interval)
	ticker := time.NewTicker(cr.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := cr.refresh(ctx)
			if err != nil {
				cr.Logger.Printf("error refreshing corpus: %v", err)
			}
			if cr.workerExecutionChan != nil {
				cr.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			cr.Logger.Println("CorpusRefresher: stopping...")
			return nil
		}
	}
}

func (cr CorpusRefresher) refresh(ctx context.Context) error {
	c, err := corpus.LoadCSVFile(cr.CSVPath)
	if err != nil {
		return err
	}

	report, err := cr.IngestCorpusUseCase.Execute(ctx, c)
	if err != nil {
		return err
	}

	cr.Logger.Printf("CorpusRefresher: run %s stored %d/%d rows (%d embedding tokens)",
		report.RunID, report.RowsStored, report.RowsIn, report.EmbeddingTokens)
	return nil
}
