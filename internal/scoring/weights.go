// Package scoring derives per-attribute weights from search criteria and
// scores extracted profiles against them.
package scoring

import "github.com/jlindqvist/fundscout/internal/types"

// defaultWeights is used when the criteria restrict nothing at all.
var defaultWeights = types.WeightSet{
	Age:        25,
	Gender:     20,
	Conditions: 40,
	Location:   15,
}

// allocations maps the number of specified attributes to the points handed
// to each priority rank. Residual points go to the unspecified attributes so
// incidental matches still count without becoming decisive.
var allocations = map[int][]int{
	1: {100},
	2: {60, 30},
	3: {50, 30, 15},
	4: {40, 30, 20, 10},
}

// residuals maps the number of specified attributes to the weight each
// unspecified attribute receives.
var residuals = map[int]int{
	1: 0,
	2: 5,
	3: 5,
}

// AllocateWeights derives the WeightSet for one run from its criteria.
// The result always sums to exactly 100 and never fails.
func AllocateWeights(criteria *types.Criteria) types.WeightSet {
	specified := criteria.SpecifiedAttributes()
	if len(specified) == 0 {
		return defaultWeights
	}

	points := allocations[len(specified)]
	residual := residuals[len(specified)]

	assigned := make(map[types.Attribute]int, 4)
	for rank, attr := range specified {
		assigned[attr] = points[rank]
	}
	for _, attr := range []types.Attribute{
		types.AttributeAge, types.AttributeGender, types.AttributeConditions, types.AttributeLocation,
	} {
		if _, ok := assigned[attr]; !ok {
			assigned[attr] = residual
		}
	}

	return types.WeightSet{
		Age:        assigned[types.AttributeAge],
		Gender:     assigned[types.AttributeGender],
		Conditions: assigned[types.AttributeConditions],
		Location:   assigned[types.AttributeLocation],
	}
}
