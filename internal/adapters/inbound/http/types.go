package http

// ErrorCode identifies the class of a failed request.
type ErrorCode string

const (
	BADREQUEST       ErrorCode = "BAD_REQUEST"
	NOTFOUND         ErrorCode = "NOT_FOUND"
	STOREUNAVAILABLE ErrorCode = "STORE_UNAVAILABLE"
	REQUESTTIMEOUT   ErrorCode = "REQUEST_TIMEOUT"
	INTERNALERROR    ErrorCode = "INTERNAL_ERROR"
)

// Error carries the machine-readable code and a human-readable message.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp is the envelope for all error responses.
type ErrorResp struct {
	Error Error `json:"error"`
}

// RecommendationMatch is a single ranked candidate in a recommendations response.
type RecommendationMatch struct {
	PersonId string  `json:"person_id"`
	Score    float64 `json:"score"`
}

// RecommendationsResp is the response body for the recommendations endpoint.
type RecommendationsResp struct {
	Status  string                `json:"status"`
	Matches []RecommendationMatch `json:"matches"`
}
