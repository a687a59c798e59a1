package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Corpus is a loaded source dataset: the schema detected once from the
// header, plus every data row.
type Corpus struct {
	Schema Schema
	Rows   []SourceRow
}

// ReadCSV loads a corpus from CSV data. The first record is the header; the
// schema is detected from it once and applies to every row.
func ReadCSV(r io.Reader) (Corpus, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return Corpus{}, fmt.Errorf("read corpus header: %w", err)
	}
	schema := DetectSchema(header)

	var rows []SourceRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Corpus{}, fmt.Errorf("read corpus row %d: %w", len(rows)+1, err)
		}

		row := make(SourceRow, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return Corpus{Schema: schema, Rows: rows}, nil
}

// LoadCSVFile loads a corpus from a CSV file on disk.
func LoadCSVFile(path string) (Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	return ReadCSV(f)
}
