package domain

import "context"

// DefaultSearchLimit is the result count used when a caller does not supply one.
const DefaultSearchLimit = 10

// NameLookupLimit bounds name lookups so a broad substring never scans unbounded.
const NameLookupLimit = 10

// Cocktail is one stored corpus entry. The ID is assigned by the store on insert.
type Cocktail struct {
	ID          int64
	Name        string
	Ingredients string
	Recipe      string
	Glass       string
	Category    string
	Alcoholic   string
	Embedding   []float64
}

// RankedCocktail is a cocktail returned from a similarity search.
// Similarity is nil for lookups that do not rank (name, category, random).
type RankedCocktail struct {
	Cocktail
	Similarity *float64
}

// SearchParams holds the exact-match predicates combinable with a vector search.
type SearchParams struct {
	Category  *string
	Alcoholic *string
}

// SearchOption configures exact-match predicates for a vector search.
type SearchOption func(*SearchParams)

// WithCategory adds an exact category predicate.
func WithCategory(category string) SearchOption {
	return func(params *SearchParams) {
		params.Category = &category
	}
}

// WithAlcoholic adds an exact alcoholic-type predicate.
func WithAlcoholic(alcoholic string) SearchOption {
	return func(params *SearchParams) {
		params.Alcoholic = &alcoholic
	}
}

// CocktailRepository is the vector-capable store for the cocktail corpus.
type CocktailRepository interface {
	// DeleteAll clears the whole corpus. Used only by ingestion.
	DeleteAll(ctx context.Context) error
	// InsertCocktail stores one cocktail with its embedding.
	InsertCocktail(ctx context.Context, cocktail Cocktail) error
	// SearchByVector runs a nearest-neighbor search ordered by ascending cosine
	// distance, with optional exact-match predicates applied in the same query.
	SearchByVector(ctx context.Context, embedding []float64, limit int, opts ...SearchOption) ([]RankedCocktail, error)
	// SearchByName matches stored names case-insensitively by substring,
	// closest name length first, bounded to NameLookupLimit rows.
	SearchByName(ctx context.Context, name string) ([]Cocktail, error)
	// ListByCategory returns cocktails whose category matches exactly.
	ListByCategory(ctx context.Context, category string, limit int) ([]Cocktail, error)
	// RandomSample returns up to limit cocktails in random order.
	RandomSample(ctx context.Context, limit int) ([]Cocktail, error)
	// Count returns the number of stored cocktails.
	Count(ctx context.Context) (int64, error)
}
