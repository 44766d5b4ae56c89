package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpertiseScoreEmptyKeywords(t *testing.T) {
	score := ExpertiseScore([]string{"Carbon Accounting"}, map[string]bool{})
	assert.Zero(t, score)
}

func TestExpertiseScoreSubstringBothWays(t *testing.T) {
	keywords := map[string]bool{
		"carbon":        true,
		"footprint":     true,
		"manufacturing": true,
	}

	// "carbon" and "footprint" are substrings of the tag; "manufacturing" is not
	score := ExpertiseScore([]string{"Carbon Footprint Analysis"}, keywords)
	assert.InDelta(t, 2.0/3.0, score, 1e-9)
}

func TestExpertiseScoreTagInsideKeyword(t *testing.T) {
	// the reverse direction: a tag that is a substring of the keyword
	score := ExpertiseScore([]string{"solar"}, map[string]bool{"solarpanels": true})
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestExpertiseScoreShortTagFalsePositive(t *testing.T) {
	// documented heuristic weakness: tag "it" matches "digital"
	score := ExpertiseScore([]string{"IT"}, map[string]bool{"digital": true})
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestExpertiseScoreNoDoubleCounting(t *testing.T) {
	// two tags both contain "energy"; the keyword still counts once
	score := ExpertiseScore(
		[]string{"Energy Audits", "Renewable Energy"},
		map[string]bool{"energy": true, "blockchain": true},
	)
	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestExperienceScoreBrackets(t *testing.T) {
	cases := []struct {
		years int
		want  float64
	}{
		{0, 0.3},
		{1, 0.5},
		{2, 0.5},
		{3, 0.6},
		{4, 0.6},
		{5, 0.7},
		{6, 0.7},
		{7, 0.8},
		{9, 0.8},
		{10, 0.9},
		{14, 0.9},
		{15, 1.0},
		{20, 1.0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ExperienceScore(tc.years), "years=%d", tc.years)
	}
}

func TestExperienceScoreMonotonic(t *testing.T) {
	prev := ExperienceScore(0)
	for years := 1; years <= 30; years++ {
		cur := ExperienceScore(years)
		assert.GreaterOrEqual(t, cur, prev, "years=%d", years)
		prev = cur
	}
}

func TestCombinedScoreSpecScenario(t *testing.T) {
	// expertise 2/3, 12 years experience -> 0.6*0.667 + 0.4*0.9 = 0.76 rounded
	expertise := ExpertiseScore(
		[]string{"Carbon Footprint Analysis"},
		map[string]bool{"carbon": true, "footprint": true, "manufacturing": true},
	)
	combined := CombinedScore(expertise, ExperienceScore(12))

	assert.Greater(t, combined, MinCombinedScore)
	assert.Equal(t, 0.76, RoundScore(combined))
}

func TestCombinedScoreBelowThreshold(t *testing.T) {
	// zero overlap, zero experience -> 0.4*0.3 = 0.12, excluded
	combined := CombinedScore(0, ExperienceScore(0))
	assert.InDelta(t, 0.12, combined, 1e-9)
	assert.Less(t, combined, MinCombinedScore)
}

func TestRoundScoreHalfUp(t *testing.T) {
	assert.Equal(t, 0.76, RoundScore(0.762))
	assert.Equal(t, 0.77, RoundScore(0.765))
	assert.Equal(t, 0.13, RoundScore(0.125))
	assert.Equal(t, 1.0, RoundScore(1.0))
	assert.Equal(t, 0.0, RoundScore(0.0))
}
