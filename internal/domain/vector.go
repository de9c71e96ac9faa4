package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// InterestVector is the derived interest profile of one person, indexed by
// catalog position. A person either has exactly one stored vector or none at
// all; "no vector" is a meaningful state distinct from an all-zero vector and
// is represented by absence, never by a zero-filled row.
type InterestVector struct {
	PersonID  uuid.UUID
	Values    []float64
	UpdatedAt time.Time
}

// Dimension returns the catalog size the vector was encoded against.
func (v InterestVector) Dimension() int {
	return len(v.Values)
}

// VectorRepository persists the latest interest vector per person.
type VectorRepository interface {
	// GetVector returns the stored vector for a person; the second return is
	// false when the person has no vector.
	GetVector(ctx context.Context, personID uuid.UUID) (InterestVector, bool, error)

	// GetVectors returns the stored vectors for the given persons. Persons
	// without a vector are simply missing from the result map.
	GetVectors(ctx context.Context, personIDs []uuid.UUID) (map[uuid.UUID]InterestVector, error)

	// GetCandidateVectors returns every stored vector, forming the candidate
	// pool for ranking.
	GetCandidateVectors(ctx context.Context) ([]InterestVector, error)

	// UpsertVector stores the vector, replacing any previous one for the person.
	UpsertVector(ctx context.Context, vector InterestVector) error

	// ClearVector removes the person's vector, if any.
	ClearVector(ctx context.Context, personID uuid.UUID) error

	// AcquirePersonLock serializes vector writes for one person within the
	// current transaction. Writes for different persons never contend.
	AcquirePersonLock(ctx context.Context, personID uuid.UUID) error
}
