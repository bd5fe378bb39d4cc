package scoring

import (
	"strings"
	"unicode"

	"github.com/jlindqvist/fundscout/internal/types"
)

// Age bounds substituted when a criteria bound is absent.
const (
	openAgeMin = 0
	openAgeMax = 999
)

// Scorer computes match results for profiles against one run's criteria.
// The vocabulary is injected so the fuzzy tables can be swapped per
// deployment or test.
type Scorer struct {
	vocab Vocabulary
}

// NewScorer creates a Scorer with the given vocabulary.
func NewScorer(vocab Vocabulary) *Scorer {
	return &Scorer{vocab: vocab}
}

// Score evaluates one profile against the criteria and weight set. Each
// attribute is gated on both sides having data: when either side lacks the
// attribute, its breakdown key is omitted and it contributes zero rather
// than counting as a mismatch. A profile with no usable data scores 0 with
// an empty breakdown.
func (s *Scorer) Score(profile types.Profile, criteria *types.Criteria, weights types.WeightSet) types.MatchResult {
	breakdown := make(map[types.Attribute]bool)

	if criteria.HasAttribute(types.AttributeAge) && profile.Age > 0 {
		breakdown[types.AttributeAge] = s.matchAge(profile.Age, criteria.AgeRange)
	}
	if len(criteria.Genders) > 0 && profile.Gender != types.GenderUnknown && profile.Gender != "" {
		breakdown[types.AttributeGender] = s.matchGender(profile.Gender, criteria.Genders)
	}
	if len(criteria.Conditions) > 0 && len(profile.Conditions) > 0 {
		breakdown[types.AttributeConditions] = s.matchConditions(profile.Conditions, criteria.Conditions)
	}
	if criteria.HasAttribute(types.AttributeLocation) && strings.TrimSpace(profile.Location) != "" {
		breakdown[types.AttributeLocation] = s.matchLocation(profile.Location, criteria.Location)
	}

	score := 0
	for attr, matched := range breakdown {
		if matched {
			score += weights.Weight(attr)
		}
	}

	return types.MatchResult{
		Score:     score,
		Breakdown: breakdown,
		Weights:   weights,
	}
}

func (s *Scorer) matchAge(age int, bounds *types.AgeRange) bool {
	min, max := openAgeMin, openAgeMax
	if bounds.Min != nil {
		min = *bounds.Min
	}
	if bounds.Max != nil {
		max = *bounds.Max
	}
	return age >= min && age <= max
}

func (s *Scorer) matchGender(gender types.Gender, wanted []types.Gender) bool {
	for _, w := range wanted {
		if strings.EqualFold(string(w), string(gender)) {
			return true
		}
	}
	return false
}

// matchConditions passes when any (required, observed) pair matches under
// any of three strategies, tried in order of increasing looseness:
// substring containment, shared medical-keyword territory, synonym lookup.
func (s *Scorer) matchConditions(observed, required []string) bool {
	for _, req := range required {
		for _, obs := range observed {
			if s.conditionsMatch(req, obs) {
				return true
			}
		}
	}
	return false
}

func (s *Scorer) conditionsMatch(required, observed string) bool {
	req := strings.ToLower(strings.TrimSpace(required))
	obs := strings.ToLower(strings.TrimSpace(observed))
	if req == "" || obs == "" {
		return false
	}

	// Substring containment in either direction.
	if strings.Contains(req, obs) || strings.Contains(obs, req) {
		return true
	}

	// Shared-keyword overlap: both sides name a term from the medical
	// vocabulary, so they describe the same territory.
	if s.hasMedicalKeyword(req) && s.hasMedicalKeyword(obs) {
		return true
	}

	// Synonym table, either direction.
	for canonical, synonyms := range s.vocab.Synonyms {
		if containsTerm(req, canonical) && containsAnyTerm(obs, synonyms) {
			return true
		}
		if containsTerm(obs, canonical) && containsAnyTerm(req, synonyms) {
			return true
		}
	}

	return false
}

func (s *Scorer) hasMedicalKeyword(text string) bool {
	for _, kw := range s.vocab.MedicalKeywords {
		if containsTerm(text, kw) {
			return true
		}
	}
	return false
}

// matchLocation passes on case-insensitive substring containment, falling
// back to the US state name/abbreviation equivalence table.
func (s *Scorer) matchLocation(observed, required string) bool {
	req := strings.ToLower(strings.TrimSpace(required))
	obs := strings.ToLower(strings.TrimSpace(observed))
	if req == "" || obs == "" {
		return false
	}

	if strings.Contains(req, obs) || strings.Contains(obs, req) {
		return true
	}

	for state, abbrevs := range s.vocab.StateAbbreviations {
		if strings.Contains(req, state) && endsWithAbbreviation(obs, abbrevs) {
			return true
		}
		if strings.Contains(obs, state) && endsWithAbbreviation(req, abbrevs) {
			return true
		}
	}

	return false
}

// endsWithAbbreviation reports whether the location's trailing token is one
// of the given state abbreviations, e.g. "Boston, MA" ends with "MA".
func endsWithAbbreviation(location string, abbrevs []string) bool {
	trimmed := strings.TrimRightFunc(location, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	idx := strings.LastIndexFunc(trimmed, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	last := trimmed[idx+1:]
	for _, ab := range abbrevs {
		if strings.EqualFold(last, ab) {
			return true
		}
	}
	return false
}

// containsTerm checks containment with word boundaries for single-word
// terms; short terms like "mi" must not match inside unrelated words.
// Multi-word terms use plain substring containment.
func containsTerm(text, term string) bool {
	term = strings.ToLower(term)
	if strings.ContainsRune(term, ' ') {
		return strings.Contains(text, term)
	}
	for _, word := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if word == term {
			return true
		}
	}
	return false
}

func containsAnyTerm(text string, terms []string) bool {
	for _, term := range terms {
		if containsTerm(text, term) {
			return true
		}
	}
	return false
}
