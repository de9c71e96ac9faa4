package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-people-match/internal/domain"
	"github.com/cleitonmarx/symbiont-people-match/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

var (
	selectionFields = []string{
		"person_id",
		"interest_id",
		"level",
	}
)

// SelectionRepository implements the domain.SelectionRepository interface over
// the person_interest_selections table, the committed source of truth
// maintained by the interest-editing flow.
type SelectionRepository struct {
	sb squirrel.StatementBuilderType
}

// NewSelectionRepository creates a new instance of SelectionRepository.
func NewSelectionRepository(br squirrel.BaseRunner) SelectionRepository {
	return SelectionRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// GetPersonSelections retrieves a person's current interest selections.
func (sr SelectionRepository) GetPersonSelections(ctx context.Context, personID uuid.UUID) ([]domain.PersonInterestSelection, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := sr.sb.
		Select(selectionFields...).
		From("person_interest_selections").
		Where(squirrel.Eq{"person_id": personID}).
		OrderBy("interest_id ASC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var selections []domain.PersonInterestSelection
	for rows.Next() {
		var selection domain.PersonInterestSelection
		err := rows.Scan(
			&selection.PersonID,
			&selection.InterestID,
			&selection.Level,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		selections = append(selections, selection)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return selections, nil
}

// ListPersonsWithSelections returns the distinct ids of every person that has
// at least one selection, used by the bulk rebuild.
func (sr SelectionRepository) ListPersonsWithSelections(ctx context.Context) ([]uuid.UUID, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := sr.sb.
		Select("DISTINCT person_id").
		From("person_interest_selections").
		OrderBy("person_id ASC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var personIDs []uuid.UUID
	for rows.Next() {
		var personID uuid.UUID
		if err := rows.Scan(&personID); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		personIDs = append(personIDs, personID)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return personIDs, nil
}

// InitSelectionRepository is a Symbiont initializer for SelectionRepository.
type InitSelectionRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the SelectionRepository in the dependency container.
func (isr InitSelectionRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.SelectionRepository](NewSelectionRepository(isr.DB))
	return ctx, nil
}
