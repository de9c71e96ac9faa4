package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-people-match/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                  = otel.Meter("usecases")
	RecommendationsServed  metric.Int64Counter
	PersonVectorsRefreshed metric.Int64Counter
)

func init() {
	var err error
	// Recommendation queries answered, by outcome status
	RecommendationsServed, err = meter.Int64Counter(
		"recommendations_served_total",
		metric.WithDescription("Total recommendation queries served"),
	)
	if err != nil {
		panic(err)
	}
	// Vector recomputes, by whether the row was written or removed
	PersonVectorsRefreshed, err = meter.Int64Counter(
		"person_vectors_refreshed_total",
		metric.WithDescription("Total person vector recomputes"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordRecommendationServed records one answered recommendation query.
func RecordRecommendationServed(ctx context.Context, status domain.RecommendationStatus) {
	RecommendationsServed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", string(status)),
	))
}

// RecordVectorRefreshed records one vector recompute and its outcome.
func RecordVectorRefreshed(ctx context.Context, cleared bool) {
	outcome := "updated"
	if cleared {
		outcome = "cleared"
	}
	PersonVectorsRefreshed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}
