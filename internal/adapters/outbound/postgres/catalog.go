package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-people-match/internal/domain"
	"github.com/cleitonmarx/symbiont-people-match/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// InterestCatalog implements the domain.InterestCatalog interface over the
// interests table. Catalog positions are assigned once and never reused, so
// a person's stored vector keeps its meaning as the catalog grows.
type InterestCatalog struct {
	sb squirrel.StatementBuilderType
}

// NewInterestCatalog creates a new instance of InterestCatalog.
func NewInterestCatalog(br squirrel.BaseRunner) InterestCatalog {
	return InterestCatalog{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// GetCatalogPosition retrieves the stable vector position assigned to an
// interest. The second return is false when the interest does not exist.
func (ic InterestCatalog) GetCatalogPosition(ctx context.Context, interestID uuid.UUID) (int, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var position int
	err := ic.sb.
		Select("catalog_position").
		From("interests").
		Where(squirrel.Eq{"id": interestID}).
		QueryRowContext(spanCtx).
		Scan(&position)

	if telemetry.RecordErrorAndStatus(span, err) {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return position, true, nil
}

// GetCatalogSize returns the current vector dimension: one past the highest
// assigned position, not the row count, since retired interests keep their slot.
func (ic InterestCatalog) GetCatalogSize(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var size int
	err := ic.sb.
		Select("COALESCE(MAX(catalog_position) + 1, 0)").
		From("interests").
		QueryRowContext(spanCtx).
		Scan(&size)

	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	return size, nil
}

// InitInterestCatalog is a Symbiont initializer for InterestCatalog.
type InitInterestCatalog struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the InterestCatalog in the dependency container.
func (iic InitInterestCatalog) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.InterestCatalog](NewInterestCatalog(iic.DB))
	return ctx, nil
}
