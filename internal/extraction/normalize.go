package extraction

import (
	"strings"

	"github.com/jlindqvist/fundscout/internal/types"
)

// DefaultSentinels are the placeholder tokens the extraction step emits in
// place of a real value. The set is configurable because upstream models
// keep inventing new spellings of "I don't know".
var DefaultSentinels = []string{
	"null", "unknown", "n/a", "na", "not specified", "none", "nil", "",
}

// Normalizer strips sentinel values from raw profiles. It never fails;
// worst case it returns a profile with all optional fields absent.
type Normalizer struct {
	sentinels map[string]bool
}

// NewNormalizer creates a Normalizer. With no arguments it uses
// DefaultSentinels; otherwise the given tokens replace the default set.
func NewNormalizer(sentinels ...string) *Normalizer {
	if len(sentinels) == 0 {
		sentinels = DefaultSentinels
	}
	set := make(map[string]bool, len(sentinels))
	for _, s := range sentinels {
		set[strings.ToLower(strings.TrimSpace(s))] = true
	}
	return &Normalizer{sentinels: set}
}

// Normalize returns a cleaned copy of the profile: sentinel and
// angle-bracket placeholder values become absent, the conditions list is
// filtered by the same rule, and gender defaults to unknown when absent so
// it stays usable in the tri-state gender match. Normalize is idempotent.
func (n *Normalizer) Normalize(p types.Profile) types.Profile {
	cleaned := p
	cleaned.Name = n.cleanField(p.Name)
	cleaned.OrganizerName = n.cleanField(p.OrganizerName)
	cleaned.Location = n.cleanField(p.Location)

	gender := n.cleanField(string(p.Gender))
	if gender == "" {
		cleaned.Gender = types.GenderUnknown
	} else {
		cleaned.Gender = types.ParseGender(gender)
	}

	if len(p.Conditions) > 0 {
		conditions := make([]string, 0, len(p.Conditions))
		for _, c := range p.Conditions {
			if cleanedCond := n.cleanField(c); cleanedCond != "" {
				conditions = append(conditions, cleanedCond)
			}
		}
		if len(conditions) == 0 {
			conditions = nil
		}
		cleaned.Conditions = conditions
	}

	if p.Age < 0 {
		cleaned.Age = 0
	}

	return cleaned
}

// cleanField returns the trimmed value, or "" when it is a sentinel token
// or a literal placeholder wrapped in angle brackets (e.g. "<unknown>").
func (n *Normalizer) cleanField(value string) string {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "<") && strings.HasSuffix(trimmed, ">") {
		return ""
	}
	if n.sentinels[strings.ToLower(trimmed)] {
		return ""
	}
	return trimmed
}
