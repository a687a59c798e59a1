package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/pgvector/pgvector-go"
	"github.com/shakerlab/shaker/internal/common"
	"github.com/shakerlab/shaker/internal/domain"
	"github.com/shakerlab/shaker/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	cocktailFields = []string{
		"id",
		"name",
		"ingredients",
		"recipe",
		"glass",
		"category",
		"alcoholic",
	}
)

// CocktailRepository implements the domain.CocktailRepository interface using PostgreSQL as the storage backend.
type CocktailRepository struct {
	sb squirrel.StatementBuilderType
}

// NewCocktailRepository creates a new instance of CocktailRepository.
func NewCocktailRepository(br squirrel.BaseRunner) CocktailRepository {
	return CocktailRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// DeleteAll removes every cocktail. Callers run it inside a unit of work so
// a failed re-ingestion never leaves the table empty.
func (cr CocktailRepository) DeleteAll(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := cr.sb.
		Delete("cocktails").
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InsertCocktail inserts one cocktail with its embedding. The id column is
// assigned by the database.
func (cr CocktailRepository) InsertCocktail(ctx context.Context, cocktail domain.Cocktail) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := cr.sb.
		Insert("cocktails").
		Columns(
			"name",
			"ingredients",
			"recipe",
			"glass",
			"category",
			"alcoholic",
			"embedding",
		).
		Values(
			cocktail.Name,
			cocktail.Ingredients,
			cocktail.Recipe,
			cocktail.Glass,
			cocktail.Category,
			cocktail.Alcoholic,
			pgvector.NewVector(toFloat32(cocktail.Embedding)),
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// SearchByVector returns the cocktails nearest to the query vector in cosine
// distance, most similar first.
func (cr CocktailRepository) SearchByVector(ctx context.Context, embedding []float64, limit int, opts ...domain.SearchOption) ([]domain.RankedCocktail, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	if limit <= 0 {
		return nil, domain.NewValidationErr("limit must be greater than 0")
	}

	vec := pgvector.NewVector(toFloat32(embedding))

	qry := cr.sb.
		Select(cocktailFields...).
		Column(squirrel.Alias(squirrel.Expr("embedding <=> ?", vec), "distance")).
		From("cocktails")

	params := &domain.SearchParams{}
	for _, opt := range opts {
		opt(params)
	}

	if params.Category != nil {
		qry = qry.Where(squirrel.Eq{"category": *params.Category})
	}
	if params.Alcoholic != nil {
		qry = qry.Where(squirrel.Eq{"alcoholic": *params.Alcoholic})
	}

	rows, err := qry.
		OrderByClause(squirrel.Expr("embedding <=> ?", vec)).
		OrderBy("length(name)", "id").
		Limit(uint64(limit)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var results []domain.RankedCocktail
	for rows.Next() {
		var (
			rc       domain.RankedCocktail
			distance float64
		)
		err := rows.Scan(
			&rc.ID,
			&rc.Name,
			&rc.Ingredients,
			&rc.Recipe,
			&rc.Glass,
			&rc.Category,
			&rc.Alcoholic,
			&distance,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		rc.Similarity = common.Ptr(common.SimilarityFromDistance(distance))
		results = append(results, rc)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return results, nil
}

// SearchByName returns cocktails whose name contains the given fragment,
// case-insensitively, shortest names first so exact hits surface on top.
func (cr CocktailRepository) SearchByName(ctx context.Context, name string) ([]domain.Cocktail, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := cr.sb.
		Select(cocktailFields...).
		From("cocktails").
		Where(squirrel.Expr("name ILIKE ?", "%"+name+"%")).
		OrderBy("length(name)", "name").
		Limit(uint64(domain.NameLookupLimit)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return scanCocktails(span, rows)
}

// ListByCategory returns cocktails in the given category, alphabetically.
func (cr CocktailRepository) ListByCategory(ctx context.Context, category string, limit int) ([]domain.Cocktail, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("category", category),
	))
	defer span.End()

	if limit <= 0 {
		return nil, domain.NewValidationErr("limit must be greater than 0")
	}

	rows, err := cr.sb.
		Select(cocktailFields...).
		From("cocktails").
		Where(squirrel.Eq{"category": category}).
		OrderBy("name").
		Limit(uint64(limit)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return scanCocktails(span, rows)
}

// RandomSample returns up to n cocktails drawn uniformly from the corpus.
func (cr CocktailRepository) RandomSample(ctx context.Context, n int) ([]domain.Cocktail, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if n <= 0 {
		return nil, domain.NewValidationErr("sample size must be greater than 0")
	}

	rows, err := cr.sb.
		Select(cocktailFields...).
		From("cocktails").
		OrderBy("RANDOM()").
		Limit(uint64(n)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return scanCocktails(span, rows)
}

// Count returns the number of cocktails currently stored.
func (cr CocktailRepository) Count(ctx context.Context) (int64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var count int64
	err := cr.sb.
		Select("count(*)").
		From("cocktails").
		QueryRowContext(spanCtx).
		Scan(&count)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return count, nil
}

func scanCocktails(span trace.Span, rows *sql.Rows) ([]domain.Cocktail, error) {
	var cocktails []domain.Cocktail
	for rows.Next() {
		var c domain.Cocktail
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Ingredients,
			&c.Recipe,
			&c.Glass,
			&c.Category,
			&c.Alcoholic,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		cocktails = append(cocktails, c)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return cocktails, nil
}

// InitCocktailRepository is a Symbiont initializer for CocktailRepository.
type InitCocktailRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the CocktailRepository in the dependency container.
func (cr InitCocktailRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CocktailRepository](NewCocktailRepository(cr.DB))
	return ctx, nil
}

func toFloat32(input []float64) []float32 {
	f32 := make([]float32, len(input))
	for i, v := range input {
		f32[i] = float32(v)
	}
	return f32
}
