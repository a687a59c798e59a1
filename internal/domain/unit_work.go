package domain

import "context"

// UnitOfWork scopes repository access to one transaction. Ingestion runs its
// clear + bulk insert inside a single Execute call so the corpus swap is
// all-or-nothing.
type UnitOfWork interface {
	// Execute runs fn within a transaction, rolling back if fn returns an error.
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
	// Cocktails returns the CocktailRepository bound to this UnitOfWork.
	Cocktails() CocktailRepository
}
