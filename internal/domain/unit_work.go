package domain

import "context"

// UnitOfWork represents a unit of work for managing repositories and transactions.
// Vector recomputation runs inside Execute so that the new vector commits (or
// rolls back) together with the selection-set change that triggered it.
type UnitOfWork interface {
	// Vectors returns the repository for stored interest vectors.
	Vectors() VectorRepository
	// Selections returns the read-only repository for person interest selections.
	Selections() SelectionRepository
	// Catalog returns the interest catalog.
	Catalog() InterestCatalog
	// Outbox returns the repository for managing outbox events.
	Outbox() OutboxRepository
	// Execute runs a function within the context of a unit of work.
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
}
