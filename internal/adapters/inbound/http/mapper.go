package http

import (
	"github.com/cleitonmarx/symbiont-people-match/internal/domain"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}
	switch e := err.(type) {
	case *domain.ValidationErr:
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = e.Error()
	case *domain.NotFoundErr:
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = e.Error()
	case *domain.StoreUnavailableErr:
		errResp.Error.Code = STOREUNAVAILABLE
		errResp.Error.Message = e.Error()
	case *domain.TimeoutErr:
		errResp.Error.Code = REQUESTTIMEOUT
		errResp.Error.Message = e.Error()
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toRecommendationsResp(outcome domain.RecommendationOutcome) RecommendationsResp {
	resp := RecommendationsResp{
		Status:  string(outcome.Status),
		Matches: []RecommendationMatch{},
	}
	for _, m := range outcome.Matches {
		resp.Matches = append(resp.Matches, RecommendationMatch{
			PersonId: m.PersonID.String(),
			Score:    m.Score,
		})
	}
	return resp
}
