package matching

import (
	"math"
	"strings"
)

// Weights and bounds for the combined score. The scorer is a deterministic
// heuristic: explainable, no model behind it.
const (
	ExpertiseWeight  = 0.6
	ExperienceWeight = 0.4

	// MinCombinedScore is a hard cutoff: consultants below it are not listed
	// for a project at all, not merely ranked low.
	MinCombinedScore = 0.30

	// MaxMatches bounds the candidate list persisted per project.
	MaxMatches = 10
)

// ExpertiseScore measures the overlap between a consultant's expertise tags
// and a project's keyword set. A keyword counts as matched if it is a
// substring of any tag or any tag is a substring of it; the first matching
// tag wins, so a keyword is never counted twice.
//
// The substring test is intentionally loose: a short tag like "it" matches
// the keyword "digital". That is accepted scorer behavior, not a bug.
func ExpertiseScore(expertise []string, keywords map[string]bool) float64 {
	if len(keywords) == 0 {
		return 0
	}

	tags := make([]string, len(expertise))
	for i, t := range expertise {
		tags[i] = strings.ToLower(t)
	}

	matched := 0
	for kw := range keywords {
		for _, tag := range tags {
			if strings.Contains(tag, kw) || strings.Contains(kw, tag) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(keywords))
}

// ExperienceScore maps years of experience onto [0.3, 1.0] with a step
// function. Brackets are evaluated top-down, lower bound inclusive.
func ExperienceScore(years int) float64 {
	switch {
	case years >= 15:
		return 1.0
	case years >= 10:
		return 0.9
	case years >= 7:
		return 0.8
	case years >= 5:
		return 0.7
	case years >= 3:
		return 0.6
	case years >= 1:
		return 0.5
	default:
		return 0.3
	}
}

// CombinedScore weighs the two sub-scores into a single value in [0, 1].
func CombinedScore(expertiseScore, experienceScore float64) float64 {
	return ExpertiseWeight*expertiseScore + ExperienceWeight*experienceScore
}

// RoundScore rounds half-up to two decimal places, which is the precision
// persisted on match records.
func RoundScore(score float64) float64 {
	return math.Floor(score*100+0.5) / 100
}
