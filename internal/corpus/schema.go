// Package corpus normalizes raw cocktail source rows into one canonical
// record shape and composes the texts derived from it: the combined text
// fed to the embedder and the human-readable recipe.
package corpus

import "slices"

// Schema identifies which of the two supported source layouts a corpus uses.
// It is detected once per corpus from the header and passed down explicitly,
// never re-detected per field.
type Schema int

const (
	// SchemaNew is the flat layout: name, category, alcoholic, glassType,
	// instructions, ingredients and ingredientMeasures as list literals.
	SchemaNew Schema = iota
	// SchemaLegacy is the numbered layout: strDrink, strCategory, strAlcoholic,
	// strGlass, strInstructions and strIngredient1..15 / strMeasure1..15.
	SchemaLegacy
)

// legacySlotCount is the fixed number of ingredient/measure slots in the
// legacy layout.
const legacySlotCount = 15

// String returns the schema name.
func (s Schema) String() string {
	if s == SchemaNew {
		return "new"
	}
	return "legacy"
}

// DetectSchema inspects a corpus header and picks the schema. Presence of the
// new-layout name column wins; anything else is treated as legacy.
func DetectSchema(header []string) Schema {
	if slices.Contains(header, "name") {
		return SchemaNew
	}
	return SchemaLegacy
}
