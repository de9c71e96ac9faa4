package workers

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-people-match/internal/domain"
)

// VectorEventAuditor consumes vector change events from Pub/Sub and writes an
// audit line per event. It is the in-process reference consumer for the
// PersonVectors topic.
type VectorEventAuditor struct {
	Logger              *log.Logger    `resolve:""`
	Client              *pubsub.Client `resolve:""`
	SubscriptionID      string         `config:"VECTOR_EVENTS_SUBSCRIPTION_ID"`
	workerExecutionChan chan struct{}
}

// Run starts the auditor worker.
func (s VectorEventAuditor) Run(ctx context.Context) error {
	s.Logger.Println("VectorEventAuditor: running...")

	err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		var event domain.PersonVectorEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			// Malformed payloads are acked so they do not loop forever.
			s.Logger.Printf("VectorEventAuditor: dropping malformed event: %v", err)
			msg.Ack()
			return
		}

		s.Logger.Printf("VectorEventAuditor: %s person=%s dimension=%d", event.Type, event.PersonID, event.Dimension)
		msg.Ack()

		if s.workerExecutionChan != nil {
			s.workerExecutionChan <- struct{}{}
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	s.Logger.Println("VectorEventAuditor: stopping...")
	return nil
}
