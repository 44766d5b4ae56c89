package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	kw := ExtractKeywords("Carbon Footprint assessment for our manufacturing plant")

	assert.True(t, kw["carbon"])
	assert.True(t, kw["footprint"])
	assert.True(t, kw["assessment"])
	assert.True(t, kw["manufacturing"])
	assert.True(t, kw["plant"])

	// short tokens are dropped
	assert.False(t, kw["for"])
	assert.False(t, kw["our"])
}

func TestExtractKeywordsEmpty(t *testing.T) {
	assert.Empty(t, ExtractKeywords(""))
	assert.Empty(t, ExtractKeywords("   \t\n  "))
	assert.Empty(t, ExtractKeywords("a an the to of"))
}

func TestExtractKeywordsStripsPunctuation(t *testing.T) {
	kw := ExtractKeywords("Net-zero roadmap (ESG!) & supply-chain audit.")

	// punctuation is stripped, not treated as a separator
	assert.True(t, kw["netzero"])
	assert.True(t, kw["supplychain"])
	assert.True(t, kw["roadmap"])
	assert.True(t, kw["audit"])
	assert.False(t, kw["esg"]) // 3 runes after stripping
}

func TestExtractKeywordsLowercasesAndDedupes(t *testing.T) {
	kw := ExtractKeywords("Solar SOLAR solar Energy energy")

	assert.Len(t, kw, 2)
	assert.True(t, kw["solar"])
	assert.True(t, kw["energy"])
}

func TestExtractKeywordsMinLength(t *testing.T) {
	kw := ExtractKeywords("esg lca ghg emissions data")

	for w := range kw {
		assert.GreaterOrEqual(t, len([]rune(w)), 4)
	}
	assert.True(t, kw["emissions"])
	assert.True(t, kw["data"])
}
