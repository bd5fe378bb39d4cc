package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jlindqvist/fundscout/internal/types"
)

func intPtr(v int) *int { return &v }

func TestAllocateWeights_AlwaysSumsTo100(t *testing.T) {
	tests := []struct {
		name     string
		criteria types.Criteria
	}{
		{"nothing specified", types.Criteria{}},
		{"one specified", types.Criteria{Conditions: []string{"cancer"}}},
		{"two specified", types.Criteria{Conditions: []string{"cancer"}, Location: "Ohio"}},
		{"three specified", types.Criteria{
			Conditions: []string{"cancer"},
			Location:   "Ohio",
			AgeRange:   &types.AgeRange{Min: intPtr(18)},
		}},
		{"four specified", types.Criteria{
			Conditions: []string{"cancer"},
			Location:   "Ohio",
			AgeRange:   &types.AgeRange{Min: intPtr(18)},
			Genders:    []types.Gender{types.GenderFemale},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := AllocateWeights(&tt.criteria)
			assert.Equal(t, 100, w.Total())
		})
	}
}

func TestAllocateWeights_NothingSpecifiedUsesDefaults(t *testing.T) {
	w := AllocateWeights(&types.Criteria{})
	assert.Equal(t, types.WeightSet{Age: 25, Gender: 20, Conditions: 40, Location: 15}, w)
}

func TestAllocateWeights_SingleAttributeTakesEverything(t *testing.T) {
	w := AllocateWeights(&types.Criteria{Location: "Boston"})
	assert.Equal(t, 100, w.Location)
	assert.Zero(t, w.Age)
	assert.Zero(t, w.Gender)
	assert.Zero(t, w.Conditions)
}

func TestAllocateWeights_ConditionsHighestWithoutPriority(t *testing.T) {
	criteria := types.Criteria{
		Conditions: []string{"leukemia"},
		Genders:    []types.Gender{types.GenderMale},
		AgeRange:   &types.AgeRange{Max: intPtr(12)},
		Location:   "Texas",
	}
	w := AllocateWeights(&criteria)
	assert.Equal(t, 40, w.Conditions)
	assert.Greater(t, w.Conditions, w.Gender)
	assert.Greater(t, w.Gender, w.Age)
	assert.Greater(t, w.Age, w.Location)
}

func TestAllocateWeights_PriorityOrderReordersRanks(t *testing.T) {
	criteria := types.Criteria{
		Conditions:    []string{"leukemia"},
		Location:      "Texas",
		PriorityOrder: []types.Attribute{types.AttributeLocation, types.AttributeConditions},
	}
	w := AllocateWeights(&criteria)
	assert.Equal(t, 60, w.Location)
	assert.Equal(t, 30, w.Conditions)
	assert.Equal(t, 5, w.Age)
	assert.Equal(t, 5, w.Gender)
}

func TestAllocateWeights_UnspecifiedGetResidual(t *testing.T) {
	criteria := types.Criteria{
		Conditions: []string{"leukemia"},
		Genders:    []types.Gender{types.GenderMale},
		Location:   "Texas",
	}
	w := AllocateWeights(&criteria)
	assert.Equal(t, 50, w.Conditions)
	assert.Equal(t, 30, w.Gender)
	assert.Equal(t, 15, w.Location)
	assert.Equal(t, 5, w.Age)
}
