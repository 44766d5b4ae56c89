package matching

import (
	"sort"

	"github.com/google/uuid"

	"ecobridge/internal/models"
)

// Candidate is one ranked consultant for a project.
type Candidate struct {
	ConsultantID uuid.UUID
	Score        float64
}

// Rank scores every consultant in the pool against the keyword set, drops
// those below MinCombinedScore, sorts descending by score and truncates to
// MaxMatches. Ties keep the pool's iteration order (stable sort).
//
// Scores are rounded to two decimals before being returned, so the values
// here are exactly what gets persisted. Deterministic for a fixed input.
func Rank(keywords map[string]bool, pool []models.ConsultantProfile) []Candidate {
	candidates := make([]Candidate, 0, len(pool))

	for _, consultant := range pool {
		expertise := ExpertiseScore(consultant.Expertise, keywords)
		experience := ExperienceScore(consultant.YearsExperience)
		combined := CombinedScore(expertise, experience)

		if combined < MinCombinedScore {
			continue
		}

		candidates = append(candidates, Candidate{
			ConsultantID: consultant.ID,
			Score:        combined,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > MaxMatches {
		candidates = candidates[:MaxMatches]
	}

	// ordering uses full precision; only the persisted value is rounded
	for i := range candidates {
		candidates[i].Score = RoundScore(candidates[i].Score)
	}

	return candidates
}
