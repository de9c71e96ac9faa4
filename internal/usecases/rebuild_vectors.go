package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-people-match/internal/domain"
	"github.com/cleitonmarx/symbiont-people-match/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"golang.org/x/sync/errgroup"
)

// RebuildVectors defines the interface for recomputing every person's vector,
// used for the initial backfill and for repair after catalog changes.
type RebuildVectors interface {
	Execute(ctx context.Context) (int, error)
}

// RebuildVectorsImpl is the implementation of the RebuildVectors use case.
type RebuildVectorsImpl struct {
	selectionRepo domain.SelectionRepository
	refresher     RefreshPersonVector
	concurrency   int
	logger        *log.Logger
}

// NewRebuildVectorsImpl creates a new instance of RebuildVectorsImpl.
func NewRebuildVectorsImpl(selectionRepo domain.SelectionRepository, refresher RefreshPersonVector, concurrency int, logger *log.Logger) RebuildVectorsImpl {
	if concurrency < 1 {
		concurrency = 1
	}
	return RebuildVectorsImpl{
		selectionRepo: selectionRepo,
		refresher:     refresher,
		concurrency:   concurrency,
		logger:        logger,
	}
}

// Execute recomputes the vector of every person that has interest selections,
// fanning out with bounded concurrency. Each person still goes through the
// serialized refresh path. It returns the number of persons processed; the
// first refresh failure cancels the remaining work.
func (rb RebuildVectorsImpl) Execute(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	personIDs, err := rb.selectionRepo.ListPersonsWithSelections(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	group, groupCtx := errgroup.WithContext(spanCtx)
	group.SetLimit(rb.concurrency)
	for _, personID := range personIDs {
		group.Go(func() error {
			return rb.refresher.Execute(groupCtx, personID)
		})
	}

	err = group.Wait()
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	rb.logger.Printf("rebuilt vectors for %d persons", len(personIDs))
	return len(personIDs), nil
}

// InitRebuildVectors initializes the RebuildVectors use case and registers it
// in the dependency container.
type InitRebuildVectors struct {
	SelectionRepo domain.SelectionRepository `resolve:""`
	Refresher     RefreshPersonVector        `resolve:""`
	Concurrency   int                        `config:"REBUILD_CONCURRENCY" default:"8"`
	Logger        *log.Logger                `resolve:""`
}

// Initialize registers the RebuildVectorsImpl use case in the dependency container.
func (irb InitRebuildVectors) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RebuildVectors](NewRebuildVectorsImpl(irb.SelectionRepo, irb.Refresher, irb.Concurrency, irb.Logger))
	return ctx, nil
}
