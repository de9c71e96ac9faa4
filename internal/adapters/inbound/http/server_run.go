package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-people-match/internal/telemetry"
	"github.com/cleitonmarx/symbiont-people-match/internal/usecases"
	"github.com/rs/cors"
)

// PeopleMatchServer is the REST API HTTP server for the PeopleMatch application.
type PeopleMatchServer struct {
	Port                       int                          `config:"HTTP_PORT" default:"8080"`
	Logger                     *log.Logger                  `resolve:""`
	RecommendPeopleUseCase     usecases.RecommendPeople     `resolve:""`
	RefreshPersonVectorUseCase usecases.RefreshPersonVector `resolve:""`
}

// Run starts the HTTP server for the PeopleMatchServer.
func (api PeopleMatchServer) Run(ctx context.Context) error {

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", api.Health)
	mux.HandleFunc("GET /v1/people/{personId}/recommendations", api.GetRecommendations)
	mux.HandleFunc("POST /v1/people/{personId}/vector/refresh", api.RefreshVector)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	// Wrap the mux with telemetry middleware so every route gets a span
	var h http.Handler = telemetry.Middleware("peoplematch-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("PeopleMatchServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("PeopleMatchServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("PeopleMatchServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// Health reports server liveness.
func (api PeopleMatchServer) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// IsReady checks if the PeopleMatchServer is ready by performing a health check.
func (api PeopleMatchServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/healthz", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
