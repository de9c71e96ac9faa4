package workers

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-people-match/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestVectorEventAuditor_Run(t *testing.T) {
	ctx := context.Background()

	topicID := "person-vectors"
	subscriptionID := "person-vectors-audit"
	client, topicName := setupPubSubServer(t, ctx, topicID, subscriptionID)

	events := []domain.PersonVectorEvent{
		{
			Type:      domain.EventType_PERSON_VECTOR_UPDATED,
			PersonID:  uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
			Dimension: 3,
			CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			Type:      domain.EventType_PERSON_VECTOR_CLEARED,
			PersonID:  uuid.MustParse("223e4567-e89b-12d3-a456-426614174000"),
			CreatedAt: time.Date(2024, 1, 1, 12, 1, 0, 0, time.UTC),
		},
	}
	payloads := [][]byte{
		vectorEventPayload(t, events[0]),
		vectorEventPayload(t, events[1]),
		[]byte("not-json"), // malformed payloads are dropped without a signal
	}

	signalChan := make(chan struct{}, len(payloads))
	auditor := VectorEventAuditor{
		Logger:              log.Default(),
		Client:              client,
		SubscriptionID:      subscriptionID,
		workerExecutionChan: signalChan,
	}

	cancel, doneChan := run(t, ctx, auditor)

	err := publishMessages(ctx, client, topicName, payloads)
	assert.NoError(t, err)

	processed := waitForSignals(t, signalChan, len(events), 5*time.Second)
	assert.Equal(t, len(events), processed)

	cancel()
	waitRunnableStop(t, doneChan)
}
