package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	tests := map[string]struct {
		csv            string
		expectedSchema Schema
		expectedRows   int
		expectedErr    string
	}{
		"new-shape": {
			csv: "name,category,ingredients\n" +
				"Margarita,Cocktail,\"['Tequila', 'Lime']\"\n" +
				"Mojito,Cocktail,\"['Rum', 'Mint']\"\n",
			expectedSchema: SchemaNew,
			expectedRows:   2,
		},
		"legacy-shape": {
			csv: "strDrink,strCategory,strIngredient1\n" +
				"Margarita,Cocktail,Tequila\n",
			expectedSchema: SchemaLegacy,
			expectedRows:   1,
		},
		"short-rows-tolerated": {
			csv: "name,category,ingredients\n" +
				"Margarita\n",
			expectedSchema: SchemaNew,
			expectedRows:   1,
		},
		"empty-input": {
			csv:         "",
			expectedErr: "read corpus header",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			corpus, err := ReadCSV(strings.NewReader(tt.csv))
			if tt.expectedErr != "" {
				assert.ErrorContains(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedSchema, corpus.Schema)
			assert.Len(t, corpus.Rows, tt.expectedRows)
		})
	}
}

func TestReadCSV_RowValues(t *testing.T) {
	corpus, err := ReadCSV(strings.NewReader(
		"name,glassType\nMargarita,Cocktail glass\n"))
	require.NoError(t, err)

	require.Len(t, corpus.Rows, 1)
	assert.Equal(t, "Margarita", corpus.Rows[0]["name"])
	assert.Equal(t, "Cocktail glass", corpus.Rows[0]["glassType"])
}

func TestLoadCSVFile_NotFound(t *testing.T) {
	_, err := LoadCSVFile("does-not-exist.csv")
	assert.ErrorContains(t, err, "open corpus file")
}
