package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/cleitonmarx/symbiont-people-match/internal/domain"
	"github.com/cleitonmarx/symbiont-people-match/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

const (
	// DefaultRecommendationLimit applies when the caller passes limit 0.
	DefaultRecommendationLimit = 5
	// MaxRecommendationLimit bounds the cost of a single query.
	MaxRecommendationLimit = 100
)

// RecommendPeople defines the interface for the RecommendPeople use case.
type RecommendPeople interface {
	Execute(ctx context.Context, personID uuid.UUID, limit int, excludeIDs []uuid.UUID) (domain.RecommendationOutcome, error)
}

// RecommendPeopleImpl is the implementation of the RecommendPeople use case.
// It is read-only over the current vector state and never triggers a recompute.
type RecommendPeopleImpl struct {
	selectionRepo domain.SelectionRepository
	vectorRepo    domain.VectorRepository
	encoder       domain.VectorEncoder
}

// NewRecommendPeopleImpl creates a new instance of RecommendPeopleImpl.
func NewRecommendPeopleImpl(selectionRepo domain.SelectionRepository, vectorRepo domain.VectorRepository, catalog domain.InterestCatalog) RecommendPeopleImpl {
	return RecommendPeopleImpl{
		selectionRepo: selectionRepo,
		vectorRepo:    vectorRepo,
		encoder:       domain.NewVectorEncoder(catalog),
	}
}

// Execute ranks every person with a stored vector against the requesting
// person's interest profile. A person with no selections gets the
// NO_INTERESTS status instead of an empty match list.
func (rp RecommendPeopleImpl) Execute(ctx context.Context, personID uuid.UUID, limit int, excludeIDs []uuid.UUID) (domain.RecommendationOutcome, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if limit < 0 || limit > MaxRecommendationLimit {
		err := domain.NewValidationErr(fmt.Sprintf("limit must be between 0 and %d", MaxRecommendationLimit))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.RecommendationOutcome{}, err
	}
	if limit == 0 {
		limit = DefaultRecommendationLimit
	}

	selections, err := rp.selectionRepo.GetPersonSelections(spanCtx, personID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.RecommendationOutcome{}, asDeadline(err, "selection lookup exceeded deadline")
	}

	query, present, err := rp.encoder.Encode(spanCtx, selections)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.RecommendationOutcome{}, err
	}
	if !present {
		RecordRecommendationServed(spanCtx, domain.RecommendationStatus_NO_INTERESTS)
		return domain.RecommendationOutcome{Status: domain.RecommendationStatus_NO_INTERESTS}, nil
	}

	candidates, err := rp.fetchCandidates(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.RecommendationOutcome{}, err
	}

	matches := domain.RankCandidates(personID, query, candidates, excludeIDs, limit)

	RecordRecommendationServed(spanCtx, domain.RecommendationStatus_OK)
	return domain.RecommendationOutcome{
		Status:  domain.RecommendationStatus_OK,
		Matches: matches,
	}, nil
}

// fetchCandidates reads the candidate pool, retrying once when the store
// reports a transient outage. Exhausted retries surface the store error
// unchanged so callers can distinguish "try again" from a deadline hit.
func (rp RecommendPeopleImpl) fetchCandidates(ctx context.Context) ([]domain.InterestVector, error) {
	candidates, err := rp.vectorRepo.GetCandidateVectors(ctx)
	if domain.IsStoreUnavailable(err) && ctx.Err() == nil {
		candidates, err = rp.vectorRepo.GetCandidateVectors(ctx)
	}
	if err != nil {
		return nil, asDeadline(err, "candidate fetch exceeded deadline")
	}
	return candidates, nil
}

// asDeadline converts a context deadline failure into the domain timeout type.
func asDeadline(err error, message string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewTimeoutErr(message)
	}
	return err
}

// InitRecommendPeople initializes the RecommendPeople use case and registers
// it in the dependency container.
type InitRecommendPeople struct {
	SelectionRepo domain.SelectionRepository `resolve:""`
	VectorRepo    domain.VectorRepository    `resolve:""`
	Catalog       domain.InterestCatalog     `resolve:""`
}

// Initialize registers the RecommendPeopleImpl use case in the dependency container.
func (irp InitRecommendPeople) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RecommendPeople](NewRecommendPeopleImpl(irp.SelectionRepo, irp.VectorRepo, irp.Catalog))
	return ctx, nil
}
