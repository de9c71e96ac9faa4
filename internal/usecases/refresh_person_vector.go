package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-people-match/internal/domain"
	"github.com/cleitonmarx/symbiont-people-match/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// RefreshPersonVector defines the interface for recomputing a person's
// interest vector from their committed selections.
type RefreshPersonVector interface {
	Execute(ctx context.Context, personID uuid.UUID) error
}

// RefreshPersonVectorImpl is the implementation of the RefreshPersonVector use
// case. The whole recompute runs in one unit of work so a caller that just
// edited selections reads its own write on the next recommendation query.
type RefreshPersonVectorImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewRefreshPersonVectorImpl creates a new instance of RefreshPersonVectorImpl.
func NewRefreshPersonVectorImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) RefreshPersonVectorImpl {
	return RefreshPersonVectorImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute recomputes the vector for the given person. A selection set with no
// level above zero removes the stored row instead of writing zeros. The
// per-person lock serializes concurrent recomputes for the same person;
// recomputes for different persons never contend.
func (r RefreshPersonVectorImpl) Execute(ctx context.Context, personID uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	cleared := false
	err := r.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.Vectors().AcquirePersonLock(spanCtx, personID); err != nil {
			return err
		}

		selections, err := uow.Selections().GetPersonSelections(spanCtx, personID)
		if err != nil {
			return err
		}

		encoder := domain.NewVectorEncoder(uow.Catalog())
		values, present, err := encoder.Encode(spanCtx, selections)
		if err != nil {
			return err
		}

		now := r.timeProvider.Now()
		if !present {
			if err := uow.Vectors().ClearVector(spanCtx, personID); err != nil {
				return err
			}
			cleared = true
			return uow.Outbox().RecordEvent(spanCtx, domain.PersonVectorEvent{
				Type:      domain.EventType_PERSON_VECTOR_CLEARED,
				PersonID:  personID,
				CreatedAt: now,
			})
		}

		err = uow.Vectors().UpsertVector(spanCtx, domain.InterestVector{
			PersonID:  personID,
			Values:    values,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}

		return uow.Outbox().RecordEvent(spanCtx, domain.PersonVectorEvent{
			Type:      domain.EventType_PERSON_VECTOR_UPDATED,
			PersonID:  personID,
			Dimension: len(values),
			CreatedAt: now,
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	RecordVectorRefreshed(spanCtx, cleared)
	return nil
}

// InitRefreshPersonVector initializes the RefreshPersonVector use case and
// registers it in the dependency container.
type InitRefreshPersonVector struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the RefreshPersonVectorImpl use case in the dependency container.
func (irv InitRefreshPersonVector) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RefreshPersonVector](NewRefreshPersonVectorImpl(irv.Uow, irv.TimeService))
	return ctx, nil
}
