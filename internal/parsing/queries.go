package parsing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jlindqvist/fundscout/internal/llm"
	"github.com/jlindqvist/fundscout/internal/prompts"
	"github.com/jlindqvist/fundscout/internal/types"
)

// maxQueries caps the number of query variants per run.
const maxQueries = 5

// GenerateQueries asks the model for query variants. On failure the caller
// falls back to FallbackQueries rather than aborting the run.
func (p *LLMParser) GenerateQueries(ctx context.Context, criteria *types.Criteria) ([]string, error) {
	criteriaJSON, err := json.Marshal(criteria)
	if err != nil {
		return nil, &ParseError{Message: "failed to marshal criteria", Cause: err}
	}

	template := prompts.MustGet("parsing.json", "generate-queries")
	prompt := prompts.Format(template, map[string]string{
		"Criteria": string(criteriaJSON),
	})

	jsonResp, err := p.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate queries from LLM",
			Cause:   err,
		}
	}

	var queries []string
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(jsonResp)), &queries); err != nil {
		return nil, &ParseError{
			Message: "failed to parse query list",
			Cause:   err,
		}
	}

	cleaned := dedupeQueries(queries)
	if len(cleaned) == 0 {
		return nil, &ParseError{Message: "LLM returned no usable queries"}
	}
	return cleaned, nil
}

// FallbackQueries builds deterministic query variants from criteria fields.
// Used when the query-generation call fails so the run can still proceed.
func FallbackQueries(criteria *types.Criteria) []string {
	condition := ""
	if len(criteria.Conditions) > 0 {
		condition = criteria.Conditions[0]
	}
	location := strings.TrimSpace(criteria.Location)

	var queries []string
	add := func(parts ...string) {
		query := strings.Join(parts, " ")
		query = strings.Join(strings.Fields(query), " ")
		if query != "" {
			queries = append(queries, query)
		}
	}

	if condition != "" {
		add(condition, "fundraiser", location)
		add("help with", condition, "medical bills", location)
		add(condition, "gofundme")
	}
	if location != "" {
		add("medical fundraiser", location)
	}
	if len(criteria.Genders) == 1 {
		add(genderNoun(criteria.Genders[0]), condition, "fundraiser", location)
	}
	if len(queries) == 0 {
		add("medical fundraiser help")
	}

	queries = dedupeQueries(queries)
	if len(queries) > maxQueries {
		queries = queries[:maxQueries]
	}
	return queries
}

func genderNoun(g types.Gender) string {
	switch g {
	case types.GenderMale:
		return "man"
	case types.GenderFemale:
		return "woman"
	default:
		return "person"
	}
}

func dedupeQueries(queries []string) []string {
	seen := make(map[string]bool, len(queries))
	cleaned := make([]string, 0, len(queries))
	for _, q := range queries {
		q = strings.TrimSpace(q)
		key := strings.ToLower(q)
		if q == "" || seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, q)
		if len(cleaned) == maxQueries {
			break
		}
	}
	return cleaned
}

// DescribeCriteria renders a short human-readable summary for status events
// and logs.
func DescribeCriteria(c *types.Criteria) string {
	var parts []string
	if len(c.Conditions) > 0 {
		parts = append(parts, strings.Join(c.Conditions, ", "))
	}
	if len(c.Genders) > 0 {
		genders := make([]string, len(c.Genders))
		for i, g := range c.Genders {
			genders[i] = string(g)
		}
		parts = append(parts, strings.Join(genders, "/"))
	}
	if c.AgeRange != nil {
		switch {
		case c.AgeRange.Min != nil && c.AgeRange.Max != nil:
			parts = append(parts, fmt.Sprintf("age %d-%d", *c.AgeRange.Min, *c.AgeRange.Max))
		case c.AgeRange.Min != nil:
			parts = append(parts, fmt.Sprintf("age %d+", *c.AgeRange.Min))
		case c.AgeRange.Max != nil:
			parts = append(parts, fmt.Sprintf("age under %d", *c.AgeRange.Max))
		}
	}
	if c.Location != "" {
		parts = append(parts, "near "+c.Location)
	}
	if len(parts) == 0 {
		return "no restrictions"
	}
	return strings.Join(parts, "; ")
}
