package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-people-match/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-people-match/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-people-match/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-people-match/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-people-match/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-people-match/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-people-match/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-people-match/internal/telemetry"
	"github.com/cleitonmarx/symbiont-people-match/internal/usecases"
)

// NewPeopleMatchApp creates and returns a new instance of the PeopleMatch application.
func NewPeopleMatchApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitVectorRepository{},
			&postgres.InitSelectionRepository{},
			&postgres.InitInterestCatalog{},
			&postgres.InitOutboxRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},

			&usecases.InitRecommendPeople{},
			&usecases.InitRefreshPersonVector{},
			&usecases.InitRebuildVectors{},
			&usecases.InitRelayOutbox{},
		).
		Host(
			&http.PeopleMatchServer{},
			&workers.MessageRelay{},
			&workers.VectorEventAuditor{},
			&workers.VectorRebuilder{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
