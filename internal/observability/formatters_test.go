package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jlindqvist/fundscout/internal/types"
)

func TestPrintCriteria(t *testing.T) {
	min := 50
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCriteria(&types.Criteria{
		AgeRange:   &types.AgeRange{Min: &min},
		Genders:    []types.Gender{types.GenderFemale},
		Conditions: []string{"type 2 diabetes"},
		Location:   "Boston",
	})

	out := buf.String()
	assert.Contains(t, out, "Search Criteria")
	assert.Contains(t, out, "50+")
	assert.Contains(t, out, "female")
	assert.Contains(t, out, "type 2 diabetes")
	assert.Contains(t, out, "Boston")
}

func TestPrintCriteria_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCriteria(&types.Criteria{})
	assert.Contains(t, buf.String(), "(no restrictions)")
}

func TestPrintWeights(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintWeights(types.WeightSet{Age: 25, Gender: 20, Conditions: 40, Location: 15})

	out := buf.String()
	assert.Contains(t, out, "Score Weights")
	assert.Contains(t, out, "40")
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatches([]types.ScoredProfile{
		{Profile: types.Profile{Name: "Jane", CampaignURL: "https://www.gofundme.com/f/x"}, MatchScore: 90},
		{Profile: types.Profile{CampaignURL: "https://www.gofundme.com/f/y"}, MatchScore: 0},
	})

	out := buf.String()
	assert.Contains(t, out, "Matches (2)")
	assert.Contains(t, out, "Jane")
	assert.Contains(t, out, "(unknown)")
}
