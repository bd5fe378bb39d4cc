package types

// WeightSet is the per-attribute point allocation for one run. The four
// weights always sum to 100. It is derived once per run and shared
// read-only across all scoring calls.
type WeightSet struct {
	Age        int `json:"age"`
	Gender     int `json:"gender"`
	Conditions int `json:"conditions"`
	Location   int `json:"location"`
}

// Total returns the sum of all four weights.
func (w WeightSet) Total() int {
	return w.Age + w.Gender + w.Conditions + w.Location
}

// Weight returns the allocation for a single attribute.
func (w WeightSet) Weight(attr Attribute) int {
	switch attr {
	case AttributeAge:
		return w.Age
	case AttributeGender:
		return w.Gender
	case AttributeConditions:
		return w.Conditions
	case AttributeLocation:
		return w.Location
	default:
		return 0
	}
}

// MatchResult records how one profile scored against one criteria object.
// Breakdown holds a key only for attributes that were evaluable on both
// sides; an inevaluable attribute contributes zero without counting as a
// mismatch. Immutable once produced.
type MatchResult struct {
	Score     int                `json:"score"`
	Breakdown map[Attribute]bool `json:"breakdown"`
	Weights   WeightSet          `json:"weights"`
}

// ScoredProfile pairs a profile with its match result for event emission.
type ScoredProfile struct {
	Profile    Profile            `json:"profile"`
	MatchScore int                `json:"matchScore"`
	Breakdown  map[Attribute]bool `json:"breakdown"`
}

// RunSummary is the final aggregate of one pipeline run: the derived
// criteria and queries plus the ranked matches, sorted by descending score.
type RunSummary struct {
	Criteria     Criteria        `json:"criteria"`
	Queries      []string        `json:"queries"`
	TotalResults int             `json:"totalResults"`
	Weights      WeightSet       `json:"weights"`
	Matches      []ScoredProfile `json:"matches"`
}
