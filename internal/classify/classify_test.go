package classify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlindqvist/fundscout/internal/types"
)

func TestFilterCandidates_DeduplicatesByURL(t *testing.T) {
	hits := []types.RawHit{
		{URL: "https://www.gofundme.com/f/help-maria", Content: "first variant"},
		{URL: "https://www.gofundme.com/f/help-maria", Content: "second variant"},
	}

	candidates := FilterCandidates(hits)
	require.Len(t, candidates, 1)
	// First occurrence wins.
	assert.Equal(t, "first variant", candidates[0].Content)
}

func TestFilterCandidates_DropsUnknownPlatforms(t *testing.T) {
	hits := []types.RawHit{
		{URL: "https://en.wikipedia.org/wiki/Fundraising"},
		{URL: "https://www.gofundme.com/f/help-maria"},
		{URL: "https://example.com/f/fake-campaign"},
	}

	candidates := FilterCandidates(hits)
	require.Len(t, candidates, 1)
	assert.Equal(t, "gofundme", candidates[0].Platform)
}

func TestFilterCandidates_NeverAcceptsExcludedPatterns(t *testing.T) {
	// Excluded patterns reject the URL even on an allow-listed host with
	// a valid campaign path shape.
	for _, pattern := range excludePatterns {
		url := fmt.Sprintf("https://www.gofundme.com/f/slug%s/trailer", pattern)
		candidates := FilterCandidates([]types.RawHit{{URL: url}})
		assert.Empty(t, candidates, "pattern %q must be rejected", pattern)
	}
}

func TestFilterCandidates_ExcludesCommonNonCampaignPages(t *testing.T) {
	hits := []types.RawHit{
		{URL: "https://www.gofundme.com/discover/medical-fundraiser"},
		{URL: "https://www.gofundme.com/sitemap.xml"},
		{URL: "https://www.gofundme.com/en-gb/f/localized-mirror"},
		{URL: "https://www.justgiving.com/about-us"},
		{URL: "https://www.facebook.com/groups/cancer-support"},
		{URL: "https://www.gofundme.com/sign-in"},
	}
	assert.Empty(t, FilterCandidates(hits))
}

func TestFilterCandidates_KeepsSlugsContainingExcludedWords(t *testing.T) {
	// Campaign slugs frequently start with words like "help" or "support";
	// exclude patterns only apply on path boundaries.
	hits := []types.RawHit{
		{URL: "https://www.gofundme.com/f/help-maria-recover"},
		{URL: "https://www.gofundme.com/f/support-bob-diabetes"},
		{URL: "https://www.gofundme.com/f/start-over-for-the-smiths"},
	}
	assert.Len(t, FilterCandidates(hits), 3)
}

func TestFilterCandidates_PreservesInputOrder(t *testing.T) {
	hits := []types.RawHit{
		{URL: "https://www.gofundme.com/f/first"},
		{URL: "https://www.givesendgo.com/G1111"},
		{URL: "https://www.gofundme.com/f/second"},
	}

	candidates := FilterCandidates(hits)
	require.Len(t, candidates, 3)
	assert.Equal(t, "https://www.gofundme.com/f/first", candidates[0].URL)
	assert.Equal(t, "https://www.givesendgo.com/G1111", candidates[1].URL)
	assert.Equal(t, "https://www.gofundme.com/f/second", candidates[2].URL)
}

func TestFilterCandidates_EmptyInput(t *testing.T) {
	assert.Empty(t, FilterCandidates(nil))
	assert.Empty(t, FilterCandidates([]types.RawHit{}))
}
