package domain

import (
	"context"

	"github.com/google/uuid"
)

// Interest is an entry of the interest catalog. CatalogPosition is the dense,
// monotonically assigned index used as the vector dimension for this interest.
// Once assigned it never changes and is never reused, even when the interest
// is retired from new selections.
type Interest struct {
	ID              uuid.UUID
	Category        string
	CatalogPosition int
	Active          bool
}

// PersonInterestSelection is one weighted interest choice of a person.
// Level is a continuous weight in [0,1]; there is at most one selection per
// (person, interest) pair.
type PersonInterestSelection struct {
	PersonID   uuid.UUID
	InterestID uuid.UUID
	Level      float64
}

// Validate checks that the selection level is within the allowed range.
func (s PersonInterestSelection) Validate() error {
	if s.Level < 0 || s.Level > 1 {
		return NewInvalidLevelErr("selection level must be between 0.0 and 1.0")
	}
	return nil
}

// InterestCatalog exposes the stable interest-to-dimension mapping.
type InterestCatalog interface {
	// GetCatalogPosition returns the catalog position assigned to the interest.
	GetCatalogPosition(ctx context.Context, interestID uuid.UUID) (int, bool, error)
	// GetCatalogSize returns the current vector dimension, i.e. the number of
	// positions assigned so far.
	GetCatalogSize(ctx context.Context) (int, error)
}

// SelectionRepository reads the weighted interest selections maintained by the
// interest-editing side of the application. This engine never mutates them.
type SelectionRepository interface {
	// GetPersonSelections returns the latest committed selections of one person.
	GetPersonSelections(ctx context.Context, personID uuid.UUID) ([]PersonInterestSelection, error)
	// ListPersonsWithSelections returns the ids of every person that currently
	// has at least one selection.
	ListPersonsWithSelections(ctx context.Context) ([]uuid.UUID, error)
}
