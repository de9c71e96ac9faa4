package domain

import (
	"bytes"
	"math"
	"sort"

	"github.com/google/uuid"
)

// CosineSimilarity calculates the cosine similarity between two vectors
// and returns the score along with a boolean indicating if the calculation was
// successful. Vectors encoded against different catalog sizes are comparable:
// positions beyond the shorter vector count as zero.
func CosineSimilarity(a, b []float64) (float64, bool) {
	if len(a) == 0 || len(b) == 0 {
		return 0, false
	}

	shared := len(a)
	if len(b) < shared {
		shared = len(b)
	}

	var dotProduct float64
	for i := 0; i < shared; i++ {
		dotProduct += a[i] * b[i]
	}

	var normA float64
	for _, v := range a {
		normA += v * v
	}
	var normB float64
	for _, v := range b {
		normB += v * v
	}

	if normA == 0 || normB == 0 {
		return 0, false
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

// RankCandidates scores every candidate vector against the query and returns
// the top results ordered by descending score, ties broken by ascending person
// id. The query person and any id in excludeIDs are never scored. Candidates
// with no overlap (score zero) are dropped rather than ranked last, as are
// zero-magnitude vectors, which cannot exist by construction but are guarded
// against instead of dividing by zero.
func RankCandidates(queryPersonID uuid.UUID, query []float64, candidates []InterestVector, excludeIDs []uuid.UUID, limit int) []RecommendationResult {
	excluded := make(map[uuid.UUID]struct{}, len(excludeIDs)+1)
	excluded[queryPersonID] = struct{}{}
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	results := make([]RecommendationResult, 0, len(candidates))
	for _, candidate := range candidates {
		if _, skip := excluded[candidate.PersonID]; skip {
			continue
		}
		score, ok := CosineSimilarity(query, candidate.Values)
		if !ok || score <= 0 {
			continue
		}
		results = append(results, RecommendationResult{
			PersonID: candidate.PersonID,
			Score:    score,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return bytes.Compare(results[i].PersonID[:], results[j].PersonID[:]) < 0
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
