package corpus

import (
	"fmt"
	"strings"
)

// SourceRow is one raw corpus entry, keyed by source column name. Missing
// cells read as empty strings; no row is dropped for missing optional fields.
type SourceRow map[string]string

// Record is the canonical in-memory cocktail, independent of source schema.
// Ingredients and Measures are aligned positionally; Measures may be shorter,
// and an empty measure means the ingredient renders without one.
type Record struct {
	Name         string
	Category     string
	Alcoholic    string
	Glass        string
	Instructions string
	Ingredients  []string
	Measures     []string
}

// MeasureFor returns the measure aligned with ingredient i, or "" when the
// ingredient has none.
func (r Record) MeasureFor(i int) string {
	if i < 0 || i >= len(r.Measures) {
		return ""
	}
	return r.Measures[i]
}

// isSentinel reports whether a cell value is blank or one of the "missing"
// tokens the source datasets use.
func isSentinel(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "nan", "None":
		return true
	}
	return false
}

// rowName returns the de-duplication key for a row under the given schema.
func rowName(row SourceRow, schema Schema) string {
	if schema == SchemaNew {
		return strings.TrimSpace(row["name"])
	}
	return strings.TrimSpace(row["strDrink"])
}

// DedupeRows removes rows whose name already appeared earlier in the corpus,
// keeping the first occurrence. This runs once per corpus, before per-row
// normalization.
func DedupeRows(rows []SourceRow, schema Schema) []SourceRow {
	seen := make(map[string]bool, len(rows))
	deduped := make([]SourceRow, 0, len(rows))
	for _, row := range rows {
		name := rowName(row, schema)
		if seen[name] {
			continue
		}
		seen[name] = true
		deduped = append(deduped, row)
	}
	return deduped
}

// Normalize maps one source row onto the canonical record shape.
func Normalize(row SourceRow, schema Schema) Record {
	if schema == SchemaNew {
		rec := Record{
			Name:         strings.TrimSpace(row["name"]),
			Category:     strings.TrimSpace(row["category"]),
			Alcoholic:    strings.TrimSpace(row["alcoholic"]),
			Glass:        strings.TrimSpace(row["glassType"]),
			Instructions: strings.TrimSpace(row["instructions"]),
		}
		rec.Ingredients, rec.Measures = newShapeIngredients(row["ingredients"], row["ingredientMeasures"])
		return rec
	}

	rec := Record{
		Name:         strings.TrimSpace(row["strDrink"]),
		Category:     strings.TrimSpace(row["strCategory"]),
		Alcoholic:    strings.TrimSpace(row["strAlcoholic"]),
		Glass:        strings.TrimSpace(row["strGlass"]),
		Instructions: strings.TrimSpace(row["strInstructions"]),
	}
	rec.Ingredients, rec.Measures = legacyShapeIngredients(row)
	return rec
}

// newShapeIngredients extracts aligned ingredients and measures from the
// flat-layout cells. A cell beginning with a list-literal delimiter is parsed
// as a sequence of scalars; a malformed literal falls back to treating the
// whole cell as one scalar.
func newShapeIngredients(ingredientsCell, measuresCell string) ([]string, []string) {
	rawIngredients := parseCell(ingredientsCell)
	rawMeasures := parseCell(measuresCell)

	var ingredients, measures []string
	for i, ing := range rawIngredients {
		if isSentinel(ing) {
			continue
		}
		ingredients = append(ingredients, strings.TrimSpace(ing))
		if i < len(rawMeasures) && !isSentinel(rawMeasures[i]) {
			measures = append(measures, strings.TrimSpace(rawMeasures[i]))
		} else {
			measures = append(measures, "")
		}
	}
	return ingredients, trimTrailingEmpty(measures)
}

// legacyShapeIngredients scans the fixed numbered slots in order, keeping
// only slots whose ingredient is neither blank nor a missing-token.
func legacyShapeIngredients(row SourceRow) ([]string, []string) {
	var ingredients, measures []string
	for i := 1; i <= legacySlotCount; i++ {
		ing := row[fmt.Sprintf("strIngredient%d", i)]
		if isSentinel(ing) {
			continue
		}
		ingredients = append(ingredients, strings.TrimSpace(ing))

		measure := row[fmt.Sprintf("strMeasure%d", i)]
		if isSentinel(measure) {
			measures = append(measures, "")
		} else {
			measures = append(measures, strings.TrimSpace(measure))
		}
	}
	return ingredients, trimTrailingEmpty(measures)
}

// parseCell interprets one flat-layout cell as either a list literal or a
// single scalar. The fallback branch is explicit: a malformed literal is
// recovered locally as one scalar rather than failing the row.
func parseCell(cell string) []string {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		items, err := ParseListLiteral(trimmed)
		if err == nil {
			return items
		}
	}
	return []string{trimmed}
}

// trimTrailingEmpty drops empty measures from the tail so a record with no
// trailing measures keeps the measures sequence no longer than needed.
func trimTrailingEmpty(measures []string) []string {
	for len(measures) > 0 && measures[len(measures)-1] == "" {
		measures = measures[:len(measures)-1]
	}
	if len(measures) == 0 {
		return nil
	}
	return measures
}
