package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-people-match/internal/domain"
	"github.com/cleitonmarx/symbiont-people-match/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

var (
	personVectorFields = []string{
		"person_id",
		"embedding",
		"updated_at",
	}
)

// VectorRepository implements the domain.VectorRepository interface using
// PostgreSQL with the pgvector extension as the storage backend. A person with
// no vector has no row; absence is never stored as a zero vector.
type VectorRepository struct {
	sb squirrel.StatementBuilderType
}

// NewVectorRepository creates a new instance of VectorRepository.
func NewVectorRepository(br squirrel.BaseRunner) VectorRepository {
	return VectorRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// GetVector retrieves the stored vector for a person. The second return is
// false when the person has no vector row.
func (vr VectorRepository) GetVector(ctx context.Context, personID uuid.UUID) (domain.InterestVector, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var (
		storedID  uuid.UUID
		embedding pgvector.Vector
		updatedAt time.Time
	)
	err := vr.sb.
		Select(personVectorFields...).
		From("person_vectors").
		Where(squirrel.Eq{"person_id": personID}).
		QueryRowContext(spanCtx).
		Scan(&storedID, &embedding, &updatedAt)

	if telemetry.RecordErrorAndStatus(span, err) {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.InterestVector{}, false, nil
		}
		return domain.InterestVector{}, false, domain.NewStoreUnavailableErr("vector lookup failed", err)
	}

	return domain.InterestVector{
		PersonID:  storedID,
		Values:    toFloat64(embedding.Slice()),
		UpdatedAt: updatedAt,
	}, true, nil
}

// GetVectors retrieves the stored vectors for the given persons. Persons with
// no vector row are simply missing from the returned map.
func (vr VectorRepository) GetVectors(ctx context.Context, personIDs []uuid.UUID) (map[uuid.UUID]domain.InterestVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := vr.sb.
		Select(personVectorFields...).
		From("person_vectors").
		Where(squirrel.Eq{"person_id": personIDs}).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, domain.NewStoreUnavailableErr("vector batch lookup failed", err)
	}
	defer rows.Close() //nolint:errcheck

	vectors := make(map[uuid.UUID]domain.InterestVector, len(personIDs))
	for rows.Next() {
		vector, err := scanVector(rows)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, domain.NewStoreUnavailableErr("vector batch lookup failed", err)
		}
		vectors[vector.PersonID] = vector
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, domain.NewStoreUnavailableErr("vector batch lookup failed", err)
	}

	return vectors, nil
}

// GetCandidateVectors retrieves every stored vector, forming the candidate
// pool for a recommendation query.
func (vr VectorRepository) GetCandidateVectors(ctx context.Context) ([]domain.InterestVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := vr.sb.
		Select(personVectorFields...).
		From("person_vectors").
		OrderBy("person_id ASC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, domain.NewStoreUnavailableErr("candidate pool fetch failed", err)
	}
	defer rows.Close() //nolint:errcheck

	var vectors []domain.InterestVector
	for rows.Next() {
		vector, err := scanVector(rows)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, domain.NewStoreUnavailableErr("candidate pool fetch failed", err)
		}
		vectors = append(vectors, vector)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, domain.NewStoreUnavailableErr("candidate pool fetch failed", err)
	}

	return vectors, nil
}

// UpsertVector stores the vector for a person, replacing any previous one
// atomically in a single statement.
func (vr VectorRepository) UpsertVector(ctx context.Context, vector domain.InterestVector) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := vr.sb.
		Insert("person_vectors").
		Columns(personVectorFields...).
		Values(
			vector.PersonID,
			pgvector.NewVector(toFloat32(vector.Values)),
			vector.UpdatedAt,
		).
		Suffix("ON CONFLICT (person_id) DO UPDATE SET embedding = EXCLUDED.embedding, updated_at = EXCLUDED.updated_at").
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.NewStoreUnavailableErr("vector upsert failed", err)
	}
	return nil
}

// ClearVector removes the vector row for a person. Clearing a person with no
// row is a no-op.
func (vr VectorRepository) ClearVector(ctx context.Context, personID uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := vr.sb.
		Delete("person_vectors").
		Where(squirrel.Eq{"person_id": personID}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.NewStoreUnavailableErr("vector clear failed", err)
	}
	return nil
}

// AcquirePersonLock takes a transaction-scoped advisory lock keyed by the
// person id. Recomputes for the same person serialize on it; different
// persons hash to different keys and proceed in parallel. The lock is
// released automatically at commit or rollback.
func (vr VectorRepository) AcquirePersonLock(ctx context.Context, personID uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := vr.sb.
		Select().
		Column(squirrel.Expr("pg_advisory_xact_lock(hashtextextended(?::text, 0))", personID.String())).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.NewStoreUnavailableErr("person lock acquisition failed", err)
	}
	return nil
}

func scanVector(rows *sql.Rows) (domain.InterestVector, error) {
	var (
		personID  uuid.UUID
		embedding pgvector.Vector
		updatedAt time.Time
	)
	if err := rows.Scan(&personID, &embedding, &updatedAt); err != nil {
		return domain.InterestVector{}, err
	}
	return domain.InterestVector{
		PersonID:  personID,
		Values:    toFloat64(embedding.Slice()),
		UpdatedAt: updatedAt,
	}, nil
}

func toFloat32(input []float64) []float32 {
	f32 := make([]float32, len(input))
	for i, v := range input {
		f32[i] = float32(v)
	}
	return f32
}

func toFloat64(input []float32) []float64 {
	f64 := make([]float64, len(input))
	for i, v := range input {
		f64[i] = float64(v)
	}
	return f64
}

// InitVectorRepository is a Symbiont initializer for VectorRepository.
type InitVectorRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the VectorRepository in the dependency container.
func (ivr InitVectorRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.VectorRepository](NewVectorRepository(ivr.DB))
	return ctx, nil
}
