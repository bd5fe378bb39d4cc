package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jlindqvist/fundscout/internal/types"
)

func TestNormalize_StripsSentinels(t *testing.T) {
	n := NewNormalizer()
	p := types.Profile{
		Name:          "Unknown",
		OrganizerName: "N/A",
		Location:      "not specified",
		Gender:        "null",
		Conditions:    []string{"diabetes", "none", "NULL"},
		CampaignURL:   "https://www.gofundme.com/f/x",
	}

	cleaned := n.Normalize(p)
	assert.Empty(t, cleaned.Name)
	assert.Empty(t, cleaned.OrganizerName)
	assert.Empty(t, cleaned.Location)
	assert.Equal(t, types.GenderUnknown, cleaned.Gender)
	assert.Equal(t, []string{"diabetes"}, cleaned.Conditions)
	assert.Equal(t, "https://www.gofundme.com/f/x", cleaned.CampaignURL)
}

func TestNormalize_StripsAngleBracketPlaceholders(t *testing.T) {
	n := NewNormalizer()
	p := types.Profile{
		Name:       "<unknown>",
		Location:   "<no location found>",
		Gender:     "<unknown>",
		Conditions: []string{"<unknown>", "heart failure"},
	}

	cleaned := n.Normalize(p)
	assert.Empty(t, cleaned.Name)
	assert.Empty(t, cleaned.Location)
	assert.Equal(t, types.GenderUnknown, cleaned.Gender)
	assert.Equal(t, []string{"heart failure"}, cleaned.Conditions)
}

func TestNormalize_KeepsRealValues(t *testing.T) {
	n := NewNormalizer()
	p := types.Profile{
		Name:          "Maria Lopez",
		OrganizerName: "Ana Lopez",
		Age:           52,
		Gender:        "Female",
		Conditions:    []string{"Type 2 Diabetes"},
		Location:      "Boston, MA",
	}

	cleaned := n.Normalize(p)
	assert.Equal(t, "Maria Lopez", cleaned.Name)
	assert.Equal(t, "Ana Lopez", cleaned.OrganizerName)
	assert.Equal(t, 52, cleaned.Age)
	assert.Equal(t, types.GenderFemale, cleaned.Gender)
	assert.Equal(t, []string{"Type 2 Diabetes"}, cleaned.Conditions)
	assert.Equal(t, "Boston, MA", cleaned.Location)
}

func TestNormalize_Idempotent(t *testing.T) {
	n := NewNormalizer()
	p := types.Profile{
		Name:       "unknown",
		Gender:     "f",
		Age:        -3,
		Conditions: []string{"n/a", "stroke"},
		Location:   "  Austin, TX  ",
	}

	once := n.Normalize(p)
	twice := n.Normalize(once)
	assert.Equal(t, once, twice)
}

func TestNormalize_CustomSentinelList(t *testing.T) {
	n := NewNormalizer("redacted")
	p := types.Profile{Name: "REDACTED", Location: "unknown"}

	cleaned := n.Normalize(p)
	assert.Empty(t, cleaned.Name)
	// "unknown" is not in the custom list, so it survives.
	assert.Equal(t, "unknown", cleaned.Location)
}

func TestNormalize_NegativeAgeCleared(t *testing.T) {
	n := NewNormalizer()
	assert.Zero(t, n.Normalize(types.Profile{Age: -1}).Age)
}
