package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-people-match/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSelectionRepository_GetPersonSelections(t *testing.T) {
	personID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	interestA := uuid.MustParse("aaae4567-e89b-12d3-a456-426614174000")
	interestB := uuid.MustParse("bbbe4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		expect  func(sqlmock.Sqlmock)
		want    []domain.PersonInterestSelection
		wantErr bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(selectionFields).
					AddRow(personID, interestA, 0.5).
					AddRow(personID, interestB, 0.75)
				m.ExpectQuery("SELECT person_id, interest_id, level FROM person_interest_selections WHERE person_id = $1 ORDER BY interest_id ASC").
					WithArgs(personID).
					WillReturnRows(rows)
			},
			want: []domain.PersonInterestSelection{
				{PersonID: personID, InterestID: interestA, Level: 0.5},
				{PersonID: personID, InterestID: interestB, Level: 0.75},
			},
		},
		"no-selections": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT person_id, interest_id, level FROM person_interest_selections WHERE person_id = $1 ORDER BY interest_id ASC").
					WithArgs(personID).
					WillReturnRows(sqlmock.NewRows(selectionFields))
			},
			want: nil,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT person_id, interest_id, level FROM person_interest_selections WHERE person_id = $1 ORDER BY interest_id ASC").
					WithArgs(personID).
					WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
		"scan-error": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(selectionFields).
					AddRow("not-a-uuid", interestA, 0.5)
				m.ExpectQuery("SELECT person_id, interest_id, level FROM person_interest_selections WHERE person_id = $1 ORDER BY interest_id ASC").
					WithArgs(personID).
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

			repo := NewSelectionRepository(db)
			got, gotErr := repo.GetPersonSelections(context.Background(), personID)
			if tt.wantErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSelectionRepository_ListPersonsWithSelections(t *testing.T) {
	personA := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	personB := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		expect  func(sqlmock.Sqlmock)
		want    []uuid.UUID
		wantErr bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"person_id"}).
					AddRow(personA).
					AddRow(personB)
				m.ExpectQuery("SELECT DISTINCT person_id FROM person_interest_selections ORDER BY person_id ASC").
					WillReturnRows(rows)
			},
			want: []uuid.UUID{personA, personB},
		},
		"empty-directory": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT DISTINCT person_id FROM person_interest_selections ORDER BY person_id ASC").
					WillReturnRows(sqlmock.NewRows([]string{"person_id"}))
			},
			want: nil,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT DISTINCT person_id FROM person_interest_selections ORDER BY person_id ASC").
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

			repo := NewSelectionRepository(db)
			got, gotErr := repo.ListPersonsWithSelections(context.Background())
			if tt.wantErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInitSelectionRepository_Initialize(t *testing.T) {
	isr := InitSelectionRepository{DB: &sql.DB{}}

	_, err := isr.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.SelectionRepository]()
	assert.NoError(t, err)
}
