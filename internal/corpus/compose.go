package corpus

import (
	"fmt"
	"strings"
)

// CombinedText builds the single text whose embedding represents the
// cocktail: name, category, alcoholic type, glass, ingredient list and
// instructions, space-separated with any whitespace runs collapsed. The
// result is stable across runs for identical input records.
func (r Record) CombinedText() string {
	parts := []string{
		r.Name,
		r.Category,
		r.Alcoholic,
		r.Glass,
		r.IngredientsList(),
		r.Instructions,
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// IngredientsList flattens the ingredients into one comma-separated string.
func (r Record) IngredientsList() string {
	return strings.Join(r.Ingredients, ", ")
}

// RecipeText renders the human-readable recipe. Ingredient lines follow
// ingestion order; an ingredient without an aligned measure renders without
// one, never with a blank measure token.
func (r Record) RecipeText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Drink: %s\n", r.Name)
	fmt.Fprintf(&b, "Category: %s\n", r.Category)
	fmt.Fprintf(&b, "Type: %s\n", r.Alcoholic)
	fmt.Fprintf(&b, "Glass: %s\n", r.Glass)
	if r.Instructions != "" {
		fmt.Fprintf(&b, "Instructions: %s\n", r.Instructions)
	}
	b.WriteString("Ingredients:\n")
	for i, ing := range r.Ingredients {
		if measure := r.MeasureFor(i); measure != "" {
			fmt.Fprintf(&b, "- %s %s\n", measure, ing)
		} else {
			fmt.Fprintf(&b, "- %s\n", ing)
		}
	}
	return b.String()
}
