package parsing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlindqvist/fundscout/internal/types"
)

func TestGenerateQueries_ParsesAndDedupes(t *testing.T) {
	parser := NewLLMParser(&fakeLLM{response: `[
		"diabetes fundraiser Boston",
		"Diabetes Fundraiser Boston",
		"help woman type 2 diabetes gofundme",
		""
	]`})

	queries, err := parser.GenerateQueries(context.Background(), &types.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"diabetes fundraiser Boston",
		"help woman type 2 diabetes gofundme",
	}, queries)
}

func TestGenerateQueries_CapsAtMax(t *testing.T) {
	parser := NewLLMParser(&fakeLLM{response: `["q1","q2","q3","q4","q5","q6","q7"]`})

	queries, err := parser.GenerateQueries(context.Background(), &types.Criteria{})
	require.NoError(t, err)
	assert.Len(t, queries, maxQueries)
}

func TestGenerateQueries_ErrorsPropagate(t *testing.T) {
	parser := NewLLMParser(&fakeLLM{err: errors.New("quota exceeded")})
	_, err := parser.GenerateQueries(context.Background(), &types.Criteria{})
	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)

	parser = NewLLMParser(&fakeLLM{response: `not json`})
	_, err = parser.GenerateQueries(context.Background(), &types.Criteria{})
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)

	parser = NewLLMParser(&fakeLLM{response: `["", "  "]`})
	_, err = parser.GenerateQueries(context.Background(), &types.Criteria{})
	require.Error(t, err)
}

func TestFallbackQueries_UsesCriteriaFields(t *testing.T) {
	criteria := &types.Criteria{
		Conditions: []string{"Type 2 Diabetes"},
		Genders:    []types.Gender{types.GenderFemale},
		Location:   "Boston",
	}

	queries := FallbackQueries(criteria)
	require.NotEmpty(t, queries)
	assert.LessOrEqual(t, len(queries), maxQueries)
	assert.Contains(t, queries, "Type 2 Diabetes fundraiser Boston")
	assert.Contains(t, queries, "woman Type 2 Diabetes fundraiser Boston")
}

func TestFallbackQueries_EmptyCriteriaStillQueries(t *testing.T) {
	queries := FallbackQueries(&types.Criteria{})
	assert.Equal(t, []string{"medical fundraiser help"}, queries)
}

func TestDescribeCriteria(t *testing.T) {
	min := 50
	criteria := &types.Criteria{
		Conditions: []string{"diabetes"},
		Genders:    []types.Gender{types.GenderFemale},
		AgeRange:   &types.AgeRange{Min: &min},
		Location:   "Boston",
	}
	desc := DescribeCriteria(criteria)
	assert.Contains(t, desc, "diabetes")
	assert.Contains(t, desc, "female")
	assert.Contains(t, desc, "age 50+")
	assert.Contains(t, desc, "near Boston")

	assert.Equal(t, "no restrictions", DescribeCriteria(&types.Criteria{}))
}
