package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombinedText(t *testing.T) {
	tests := map[string]struct {
		record   Record
		expected string
	}{
		"all-fields": {
			record: Record{
				Name:         "Margarita",
				Category:     "Cocktail",
				Alcoholic:    "Alcoholic",
				Glass:        "Cocktail glass",
				Instructions: "Shake with ice.",
				Ingredients:  []string{"Tequila", "Lime juice"},
			},
			expected: "Margarita Cocktail Alcoholic Cocktail glass Tequila, Lime juice Shake with ice.",
		},
		"missing-fields-collapse": {
			record: Record{
				Name:        "Rum Shot",
				Ingredients: []string{"Rum"},
			},
			expected: "Rum Shot Rum",
		},
		"internal-whitespace-collapses": {
			record: Record{
				Name:         "Old   Fashioned",
				Instructions: "Stir\tslowly.\nServe.",
			},
			expected: "Old Fashioned Stir slowly. Serve.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.CombinedText())
		})
	}
}

func TestCombinedText_Stable(t *testing.T) {
	record := Record{
		Name:        "Negroni",
		Category:    "Cocktail",
		Ingredients: []string{"Gin", "Campari", "Sweet Vermouth"},
	}

	first := record.CombinedText()
	second := record.CombinedText()

	assert.Equal(t, first, second)
}

func TestRecipeText(t *testing.T) {
	record := Record{
		Name:         "Martini",
		Category:     "Cocktail",
		Alcoholic:    "Alcoholic",
		Glass:        "Cocktail glass",
		Instructions: "Stir with ice and strain.",
		Ingredients:  []string{"Gin", "Vermouth"},
		Measures:     []string{"2 oz"},
	}

	expected := "Drink: Martini\n" +
		"Category: Cocktail\n" +
		"Type: Alcoholic\n" +
		"Glass: Cocktail glass\n" +
		"Instructions: Stir with ice and strain.\n" +
		"Ingredients:\n" +
		"- 2 oz Gin\n" +
		"- Vermouth\n"

	assert.Equal(t, expected, record.RecipeText())
}

func TestRecipeText_NoInstructions(t *testing.T) {
	record := Record{
		Name:        "Mystery",
		Ingredients: []string{"Something"},
	}

	assert.NotContains(t, record.RecipeText(), "Instructions:")
	assert.Contains(t, record.RecipeText(), "- Something\n")
}
