package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListLiteral(t *testing.T) {
	tests := map[string]struct {
		input       string
		expected    []string
		expectedErr bool
	}{
		"single-quoted-items": {
			input:    "['Gin', 'Grand Marnier']",
			expected: []string{"Gin", "Grand Marnier"},
		},
		"double-quoted-items": {
			input:    `["Light rum", "Lime juice"]`,
			expected: []string{"Light rum", "Lime juice"},
		},
		"bare-none-item": {
			input:    "['2 oz', None, '1 splash']",
			expected: []string{"2 oz", "None", "1 splash"},
		},
		"escaped-quote": {
			input:    `['O\'Brien mix']`,
			expected: []string{"O'Brien mix"},
		},
		"empty-list": {
			input:    "[]",
			expected: []string{},
		},
		"not-a-list": {
			input:       "Rum",
			expectedErr: true,
		},
		"unterminated-list": {
			input:       "['Gin', 'Vermouth'",
			expectedErr: true,
		},
		"unterminated-string": {
			input:       "['Gin]",
			expectedErr: true,
		},
		"trailing-separator": {
			input:       "['Gin',]",
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseListLiteral(tt.input)
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
