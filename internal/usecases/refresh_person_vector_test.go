package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-people-match/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-people-match/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRefreshPersonVectorImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	personID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	photographyID := uuid.MustParse("aaae4567-e89b-12d3-a456-426614174000")
	readingID := uuid.MustParse("bbbe4567-e89b-12d3-a456-426614174000")

	runTransaction := func(uow *domain_mocks.MockUnitOfWork) {
		uow.EXPECT().
			Execute(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
				return fn(uow)
			})
	}

	tests := map[string]struct {
		setExpectations func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider)
		expectedErr     error
	}{
		"success-upsert-and-record-event": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				vectors := domain_mocks.NewMockVectorRepository(t)
				selections := domain_mocks.NewMockSelectionRepository(t)
				catalog := domain_mocks.NewMockInterestCatalog(t)
				outbox := domain_mocks.NewMockOutboxRepository(t)

				runTransaction(uow)
				uow.EXPECT().Vectors().Return(vectors)
				uow.EXPECT().Selections().Return(selections)
				uow.EXPECT().Catalog().Return(catalog)
				uow.EXPECT().Outbox().Return(outbox)
				timeProvider.EXPECT().Now().Return(fixedTime)

				vectors.EXPECT().AcquirePersonLock(mock.Anything, personID).Return(nil)
				selections.EXPECT().GetPersonSelections(mock.Anything, personID).Return([]domain.PersonInterestSelection{
					{PersonID: personID, InterestID: photographyID, Level: 0.5},
					{PersonID: personID, InterestID: readingID, Level: 0.75},
				}, nil)
				catalog.EXPECT().GetCatalogSize(mock.Anything).Return(3, nil)
				catalog.EXPECT().GetCatalogPosition(mock.Anything, photographyID).Return(0, true, nil)
				catalog.EXPECT().GetCatalogPosition(mock.Anything, readingID).Return(1, true, nil)

				vectors.EXPECT().UpsertVector(mock.Anything, domain.InterestVector{
					PersonID:  personID,
					Values:    []float64{0.5, 0.75, 0},
					UpdatedAt: fixedTime,
				}).Return(nil)
				outbox.EXPECT().RecordEvent(mock.Anything, domain.PersonVectorEvent{
					Type:      domain.EventType_PERSON_VECTOR_UPDATED,
					PersonID:  personID,
					Dimension: 3,
					CreatedAt: fixedTime,
				}).Return(nil)
			},
			expectedErr: nil,
		},
		"emptied-selections-clear-and-record-event": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				vectors := domain_mocks.NewMockVectorRepository(t)
				selections := domain_mocks.NewMockSelectionRepository(t)
				catalog := domain_mocks.NewMockInterestCatalog(t)
				outbox := domain_mocks.NewMockOutboxRepository(t)

				runTransaction(uow)
				uow.EXPECT().Vectors().Return(vectors)
				uow.EXPECT().Selections().Return(selections)
				uow.EXPECT().Catalog().Return(catalog)
				uow.EXPECT().Outbox().Return(outbox)
				timeProvider.EXPECT().Now().Return(fixedTime)

				vectors.EXPECT().AcquirePersonLock(mock.Anything, personID).Return(nil)
				selections.EXPECT().GetPersonSelections(mock.Anything, personID).Return(nil, nil)

				vectors.EXPECT().ClearVector(mock.Anything, personID).Return(nil)
				outbox.EXPECT().RecordEvent(mock.Anything, domain.PersonVectorEvent{
					Type:      domain.EventType_PERSON_VECTOR_CLEARED,
					PersonID:  personID,
					CreatedAt: fixedTime,
				}).Return(nil)
			},
			expectedErr: nil,
		},
		"all-zero-levels-clear": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				vectors := domain_mocks.NewMockVectorRepository(t)
				selections := domain_mocks.NewMockSelectionRepository(t)
				catalog := domain_mocks.NewMockInterestCatalog(t)
				outbox := domain_mocks.NewMockOutboxRepository(t)

				runTransaction(uow)
				uow.EXPECT().Vectors().Return(vectors)
				uow.EXPECT().Selections().Return(selections)
				uow.EXPECT().Catalog().Return(catalog)
				uow.EXPECT().Outbox().Return(outbox)
				timeProvider.EXPECT().Now().Return(fixedTime)

				vectors.EXPECT().AcquirePersonLock(mock.Anything, personID).Return(nil)
				selections.EXPECT().GetPersonSelections(mock.Anything, personID).Return([]domain.PersonInterestSelection{
					{PersonID: personID, InterestID: photographyID, Level: 0},
				}, nil)

				vectors.EXPECT().ClearVector(mock.Anything, personID).Return(nil)
				outbox.EXPECT().RecordEvent(mock.Anything, domain.PersonVectorEvent{
					Type:      domain.EventType_PERSON_VECTOR_CLEARED,
					PersonID:  personID,
					CreatedAt: fixedTime,
				}).Return(nil)
			},
			expectedErr: nil,
		},
		"lock-error": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				vectors := domain_mocks.NewMockVectorRepository(t)

				runTransaction(uow)
				uow.EXPECT().Vectors().Return(vectors)

				vectors.EXPECT().AcquirePersonLock(mock.Anything, personID).Return(errors.New("lock timeout"))
			},
			expectedErr: errors.New("lock timeout"),
		},
		"invalid-level-aborts-transaction": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				vectors := domain_mocks.NewMockVectorRepository(t)
				selections := domain_mocks.NewMockSelectionRepository(t)
				catalog := domain_mocks.NewMockInterestCatalog(t)

				runTransaction(uow)
				uow.EXPECT().Vectors().Return(vectors)
				uow.EXPECT().Selections().Return(selections)
				uow.EXPECT().Catalog().Return(catalog)

				vectors.EXPECT().AcquirePersonLock(mock.Anything, personID).Return(nil)
				selections.EXPECT().GetPersonSelections(mock.Anything, personID).Return([]domain.PersonInterestSelection{
					{PersonID: personID, InterestID: photographyID, Level: -0.1},
				}, nil)
			},
			expectedErr: domain.NewInvalidLevelErr("selection level must be between 0.0 and 1.0"),
		},
		"upsert-error": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				vectors := domain_mocks.NewMockVectorRepository(t)
				selections := domain_mocks.NewMockSelectionRepository(t)
				catalog := domain_mocks.NewMockInterestCatalog(t)

				runTransaction(uow)
				uow.EXPECT().Vectors().Return(vectors)
				uow.EXPECT().Selections().Return(selections)
				uow.EXPECT().Catalog().Return(catalog)
				timeProvider.EXPECT().Now().Return(fixedTime)

				vectors.EXPECT().AcquirePersonLock(mock.Anything, personID).Return(nil)
				selections.EXPECT().GetPersonSelections(mock.Anything, personID).Return([]domain.PersonInterestSelection{
					{PersonID: personID, InterestID: photographyID, Level: 0.5},
				}, nil)
				catalog.EXPECT().GetCatalogSize(mock.Anything).Return(1, nil)
				catalog.EXPECT().GetCatalogPosition(mock.Anything, photographyID).Return(0, true, nil)

				vectors.EXPECT().UpsertVector(mock.Anything, mock.Anything).Return(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			if tt.setExpectations != nil {
				tt.setExpectations(uow, timeProvider)
			}

			rpv := NewRefreshPersonVectorImpl(uow, timeProvider)

			gotErr := rpv.Execute(context.Background(), personID)
			assert.Equal(t, tt.expectedErr, gotErr)
		})
	}
}

func TestInitRefreshPersonVector_Initialize(t *testing.T) {
	irv := InitRefreshPersonVector{}

	ctx, err := irv.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[RefreshPersonVector]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
