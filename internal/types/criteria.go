// Package types defines the shared data model for the candidate discovery pipeline.
package types

import "strings"

// Gender is a normalized gender value on criteria and profiles.
type Gender string

// Gender values recognized by the pipeline
const (
	GenderMale      Gender = "male"
	GenderFemale    Gender = "female"
	GenderNonBinary Gender = "non-binary"
	GenderUnknown   Gender = "unknown"
)

// Attribute identifies one of the four scoreable candidate attributes.
type Attribute string

// Scoreable attributes
const (
	AttributeAge        Attribute = "age"
	AttributeGender     Attribute = "gender"
	AttributeConditions Attribute = "conditions"
	AttributeLocation   Attribute = "location"
)

// AgeRange bounds the acceptable candidate age. A nil bound is unrestricted.
type AgeRange struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// Criteria is the structured eligibility requirements for one search run.
// It is immutable once normalized; a single Criteria value is owned by one
// pipeline run and shared read-only across its scoring calls.
type Criteria struct {
	AgeRange      *AgeRange   `json:"age_range,omitempty"`
	Genders       []Gender    `json:"genders,omitempty"`
	Conditions    []string    `json:"conditions,omitempty"`
	Location      string      `json:"location,omitempty"`
	Exclusions    []string    `json:"exclusions,omitempty"`
	PriorityOrder []Attribute `json:"priority_order,omitempty"`
}

// ParseGender maps free-form gender text to a Gender value.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "man", "boy":
		return GenderMale
	case "female", "f", "woman", "girl":
		return GenderFemale
	case "non-binary", "nonbinary", "nb", "enby":
		return GenderNonBinary
	default:
		return GenderUnknown
	}
}

// Normalize cleans a freshly parsed Criteria in place: it deduplicates and
// normalizes gender values, removes the gender restriction entirely when all
// three values are present (equivalent to unrestricted), and drops priority
// entries that do not name a known attribute.
func (c *Criteria) Normalize() {
	if len(c.Genders) > 0 {
		seen := make(map[Gender]bool)
		genders := make([]Gender, 0, len(c.Genders))
		for _, g := range c.Genders {
			normalized := ParseGender(string(g))
			if normalized == GenderUnknown || seen[normalized] {
				continue
			}
			seen[normalized] = true
			genders = append(genders, normalized)
		}
		// All three values restrict nothing.
		if len(genders) >= 3 {
			genders = nil
		}
		c.Genders = genders
	}

	if len(c.PriorityOrder) > 0 {
		order := make([]Attribute, 0, len(c.PriorityOrder))
		seen := make(map[Attribute]bool)
		for _, attr := range c.PriorityOrder {
			attr = Attribute(strings.ToLower(strings.TrimSpace(string(attr))))
			switch attr {
			case AttributeAge, AttributeGender, AttributeConditions, AttributeLocation:
				if !seen[attr] {
					seen[attr] = true
					order = append(order, attr)
				}
			}
		}
		c.PriorityOrder = order
	}
}

// HasAttribute reports whether the criteria specify the given attribute.
func (c *Criteria) HasAttribute(attr Attribute) bool {
	switch attr {
	case AttributeAge:
		return c.AgeRange != nil && (c.AgeRange.Min != nil || c.AgeRange.Max != nil)
	case AttributeGender:
		return len(c.Genders) > 0
	case AttributeConditions:
		return len(c.Conditions) > 0
	case AttributeLocation:
		return strings.TrimSpace(c.Location) != ""
	default:
		return false
	}
}

// SpecifiedAttributes returns the attributes this criteria restrict, ordered
// by the supplied priority when present, otherwise by the fixed default
// order (conditions, gender, age, location).
func (c *Criteria) SpecifiedAttributes() []Attribute {
	base := []Attribute{AttributeConditions, AttributeGender, AttributeAge, AttributeLocation}
	if len(c.PriorityOrder) > 0 {
		ordered := make([]Attribute, 0, 4)
		seen := make(map[Attribute]bool)
		for _, attr := range c.PriorityOrder {
			if c.HasAttribute(attr) && !seen[attr] {
				seen[attr] = true
				ordered = append(ordered, attr)
			}
		}
		// Specified attributes missing from the priority list trail behind it.
		for _, attr := range base {
			if c.HasAttribute(attr) && !seen[attr] {
				seen[attr] = true
				ordered = append(ordered, attr)
			}
		}
		return ordered
	}

	specified := make([]Attribute, 0, 4)
	for _, attr := range base {
		if c.HasAttribute(attr) {
			specified = append(specified, attr)
		}
	}
	return specified
}
