package workers

import (
	"context"
	"log"
	"testing"

	"github.com/google/uuid"
	"github.com/shakerlab/shaker/internal/corpus"
	"github.com/shakerlab/shaker/internal/usecases"
	"github.com/shakerlab/shaker/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestIngestJob_Run(t *testing.T) {
	tests := map[string]struct {
		csvPath         func(t *testing.T) string
		setExpectations func(m *mocks.MockIngestCorpus)
		expectedErr     string
	}{
		"success": {
			csvPath: writeCorpusFile,
			setExpectations: func(m *mocks.MockIngestCorpus) {
				m.EXPECT().
					Execute(mock.Anything, mock.MatchedBy(func(c corpus.Corpus) bool {
						return len(c.Rows) == 1 && c.Rows[0]["name"] == "Margarita"
					})).
					Return(usecases.IngestReport{RunID: uuid.New(), RowsIn: 1, RowsStored: 1}, nil)
			},
		},
		"missing-path": {
			csvPath:     func(t *testing.T) string { return "" },
			expectedErr: "CORPUS_CSV_PATH is required",
		},
		"missing-file": {
			csvPath:     func(t *testing.T) string { return "/nonexistent/cocktails.csv" },
			expectedErr: "no such file",
		},
		"ingest-failure": {
			csvPath: writeCorpusFile,
			setExpectations: func(m *mocks.MockIngestCorpus) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return(usecases.IngestReport{}, assert.AnError)
			},
			expectedErr: assert.AnError.Error(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ic := mocks.NewMockIngestCorpus(t)
			if tt.setExpectations != nil {
				tt.setExpectations(ic)
			}

			ij := IngestJob{
				IngestCorpusUseCase: ic,
				Logger:              log.New(log.Writer(), "", 0),
				CSVPath:             tt.csvPath(t),
			}

			err := ij.Run(context.Background())

			if tt.expectedErr != "" {
				assert.ErrorContains(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
