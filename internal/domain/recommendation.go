package domain

import "github.com/google/uuid"

// RecommendationStatus distinguishes the two normal outcomes of a
// recommendation request.
type RecommendationStatus string

const (
	// RecommendationStatus_OK indicates a ranked (possibly empty) match list.
	RecommendationStatus_OK RecommendationStatus = "OK"
	// RecommendationStatus_NO_INTERESTS indicates the requesting person has no
	// interest selections yet. Callers should prompt for interests instead of
	// showing "no matches".
	RecommendationStatus_NO_INTERESTS RecommendationStatus = "NO_INTERESTS"
)

// RecommendationResult is one ranked match. Score is the cosine similarity
// between the two interest profiles, in (0,1] for non-negative components.
type RecommendationResult struct {
	PersonID uuid.UUID
	Score    float64
}

// RecommendationOutcome is the result of a recommendation request. Matches is
// only populated when Status is OK.
type RecommendationOutcome struct {
	Status  RecommendationStatus
	Matches []RecommendationResult
}
