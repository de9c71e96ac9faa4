package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-people-match/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
)

func TestVectorRepository_GetVector(t *testing.T) {
	personID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	updatedAt := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		expect     func(sqlmock.Sqlmock)
		wantVector domain.InterestVector
		wantFound  bool
		wantErr    bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(personVectorFields).
					AddRow(personID, "[0.5,0,0.25]", updatedAt)
				m.ExpectQuery("SELECT person_id, embedding, updated_at FROM person_vectors WHERE person_id = $1").
					WithArgs(personID).
					WillReturnRows(rows)
			},
			wantVector: domain.InterestVector{
				PersonID:  personID,
				Values:    []float64{0.5, 0, 0.25},
				UpdatedAt: updatedAt,
			},
			wantFound: true,
		},
		"absent-is-not-an-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT person_id, embedding, updated_at FROM person_vectors WHERE person_id = $1").
					WithArgs(personID).
					WillReturnError(sql.ErrNoRows)
			},
			wantFound: false,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT person_id, embedding, updated_at FROM person_vectors WHERE person_id = $1").
					WithArgs(personID).
					WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewVectorRepository(db)
			got, found, gotErr := repo.GetVector(context.Background(), personID)
			if tt.wantErr {
				assert.Error(t, gotErr)
				assert.True(t, domain.IsStoreUnavailable(gotErr))
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.wantFound, found)
				assert.Equal(t, tt.wantVector, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVectorRepository_GetVectors(t *testing.T) {
	personA := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	personB := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	updatedAt := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		expect   func(sqlmock.Sqlmock)
		wantKeys []uuid.UUID
		wantErr  bool
	}{
		"absent-persons-missing-from-map": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(personVectorFields).
					AddRow(personA, "[0.5,0]", updatedAt)
				m.ExpectQuery("SELECT person_id, embedding, updated_at FROM person_vectors WHERE person_id IN ($1,$2)").
					WithArgs(personA, personB).
					WillReturnRows(rows)
			},
			wantKeys: []uuid.UUID{personA},
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT person_id, embedding, updated_at FROM person_vectors WHERE person_id IN ($1,$2)").
					WithArgs(personA, personB).
					WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewVectorRepository(db)
			got, gotErr := repo.GetVectors(context.Background(), []uuid.UUID{personA, personB})
			if tt.wantErr {
				assert.Error(t, gotErr)
				assert.True(t, domain.IsStoreUnavailable(gotErr))
			} else {
				assert.NoError(t, gotErr)
				assert.Len(t, got, len(tt.wantKeys))
				for _, key := range tt.wantKeys {
					assert.Contains(t, got, key)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVectorRepository_GetCandidateVectors(t *testing.T) {
	personA := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	personB := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	updatedAt := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		expect  func(sqlmock.Sqlmock)
		wantLen int
		wantErr bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(personVectorFields).
					AddRow(personA, "[0.5,0]", updatedAt).
					AddRow(personB, "[0,0.75]", updatedAt)
				m.ExpectQuery("SELECT person_id, embedding, updated_at FROM person_vectors ORDER BY person_id ASC").
					WillReturnRows(rows)
			},
			wantLen: 2,
		},
		"empty-pool": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT person_id, embedding, updated_at FROM person_vectors ORDER BY person_id ASC").
					WillReturnRows(sqlmock.NewRows(personVectorFields))
			},
			wantLen: 0,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT person_id, embedding, updated_at FROM person_vectors ORDER BY person_id ASC").
					WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
		"scan-error": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(personVectorFields).
					AddRow("not-a-uuid", "[0.5,0]", updatedAt)
				m.ExpectQuery("SELECT person_id, embedding, updated_at FROM person_vectors ORDER BY person_id ASC").
					WillReturnRows(rows)
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewVectorRepository(db)
			got, gotErr := repo.GetCandidateVectors(context.Background())
			if tt.wantErr {
				assert.Error(t, gotErr)
				assert.True(t, domain.IsStoreUnavailable(gotErr))
			} else {
				assert.NoError(t, gotErr)
				assert.Len(t, got, tt.wantLen)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVectorRepository_UpsertVector(t *testing.T) {
	personID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	updatedAt := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)
	vector := domain.InterestVector{
		PersonID:  personID,
		Values:    []float64{0.5, 0, 0.25},
		UpdatedAt: updatedAt,
	}

	tests := map[string]struct {
		expect func(sqlmock.Sqlmock)
		err    bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO person_vectors (person_id,embedding,updated_at) VALUES ($1,$2,$3) ON CONFLICT (person_id) DO UPDATE SET embedding = EXCLUDED.embedding, updated_at = EXCLUDED.updated_at").
					WithArgs(
						personID,
						pgvector.NewVector([]float32{0.5, 0, 0.25}),
						updatedAt,
					).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			err: false,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO person_vectors (person_id,embedding,updated_at) VALUES ($1,$2,$3) ON CONFLICT (person_id) DO UPDATE SET embedding = EXCLUDED.embedding, updated_at = EXCLUDED.updated_at").
					WithArgs(
						personID,
						pgvector.NewVector([]float32{0.5, 0, 0.25}),
						updatedAt,
					).
					WillReturnError(errors.New("db error"))
			},
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewVectorRepository(db)
			gotErr := repo.UpsertVector(context.Background(), vector)
			if tt.err {
				assert.Error(t, gotErr)
				assert.True(t, domain.IsStoreUnavailable(gotErr))
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVectorRepository_ClearVector(t *testing.T) {
	personID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		expect func(sqlmock.Sqlmock)
		err    bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM person_vectors WHERE person_id = $1").
					WithArgs(personID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			err: false,
		},
		"no-row-is-a-no-op": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM person_vectors WHERE person_id = $1").
					WithArgs(personID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			err: false,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM person_vectors WHERE person_id = $1").
					WithArgs(personID).
					WillReturnError(errors.New("db error"))
			},
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewVectorRepository(db)
			gotErr := repo.ClearVector(context.Background(), personID)
			if tt.err {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVectorRepository_AcquirePersonLock(t *testing.T) {
	personID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		expect func(sqlmock.Sqlmock)
		err    bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))").
					WithArgs(personID.String()).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			err: false,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))").
					WithArgs(personID.String()).
					WillReturnError(errors.New("db error"))
			},
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewVectorRepository(db)
			gotErr := repo.AcquirePersonLock(context.Background(), personID)
			if tt.err {
				assert.Error(t, gotErr)
				assert.True(t, domain.IsStoreUnavailable(gotErr))
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInitVectorRepository_Initialize(t *testing.T) {
	ivr := InitVectorRepository{DB: &sql.DB{}}

	_, err := ivr.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.VectorRepository]()
	assert.NoError(t, err)
}
