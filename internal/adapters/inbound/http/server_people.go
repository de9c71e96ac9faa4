package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// GetRecommendations handles GET /v1/people/{personId}/recommendations.
// The exclude parameter may be repeated or comma-separated.
func (api PeopleMatchServer) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	personID, err := uuid.Parse(r.PathValue("personId"))
	if err != nil {
		errResp := ErrorResp{}
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = fmt.Sprintf("invalid person id: %v", err)

		respondError(w, errResp)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			errResp := ErrorResp{}
			errResp.Error.Code = BADREQUEST
			errResp.Error.Message = fmt.Sprintf("invalid limit: %v", err)

			respondError(w, errResp)
			return
		}
	}

	excludeIDs, err := parseExcludeIDs(r.URL.Query()["exclude"])
	if err != nil {
		errResp := ErrorResp{}
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = fmt.Sprintf("invalid exclude id: %v", err)

		respondError(w, errResp)
		return
	}

	outcome, err := api.RecommendPeopleUseCase.Execute(r.Context(), personID, limit, excludeIDs)
	if err != nil {
		api.Logger.Printf("Error recommending people: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toRecommendationsResp(outcome))
}

// RefreshVector handles POST /v1/people/{personId}/vector/refresh.
func (api PeopleMatchServer) RefreshVector(w http.ResponseWriter, r *http.Request) {
	personID, err := uuid.Parse(r.PathValue("personId"))
	if err != nil {
		errResp := ErrorResp{}
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = fmt.Sprintf("invalid person id: %v", err)

		respondError(w, errResp)
		return
	}

	if err := api.RefreshPersonVectorUseCase.Execute(r.Context(), personID); err != nil {
		api.Logger.Printf("Error refreshing person vector: %v", err)
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseExcludeIDs(raw []string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, param := range raw {
		for _, value := range strings.Split(param, ",") {
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			id, err := uuid.Parse(value)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
