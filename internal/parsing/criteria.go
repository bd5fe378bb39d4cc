// Package parsing converts free-text descriptions of who to find into
// structured search criteria and query variants using LLM extraction.
package parsing

import (
	"context"
	"encoding/json"

	"github.com/jlindqvist/fundscout/internal/llm"
	"github.com/jlindqvist/fundscout/internal/prompts"
	"github.com/jlindqvist/fundscout/internal/schemas"
	"github.com/jlindqvist/fundscout/internal/types"
)

// CriteriaParser converts a free-text description into structured criteria.
// The implementation is a black box to the pipeline; tests inject
// deterministic fakes.
type CriteriaParser interface {
	ParseCriteria(ctx context.Context, description string) (*types.Criteria, error)
}

// QueryGenerator derives web-search query variants from criteria.
type QueryGenerator interface {
	GenerateQueries(ctx context.Context, criteria *types.Criteria) ([]string, error)
}

// LLMParser implements CriteriaParser and QueryGenerator on an LLM client.
type LLMParser struct {
	client llm.Client
}

// NewLLMParser creates a parser backed by the given client.
func NewLLMParser(client llm.Client) *LLMParser {
	return &LLMParser{client: client}
}

// ParseCriteria extracts structured criteria from a description. The model
// output is schema-validated before it is accepted; a failure here is
// run-fatal for the pipeline.
func (p *LLMParser) ParseCriteria(ctx context.Context, description string) (*types.Criteria, error) {
	template := prompts.MustGet("parsing.json", "parse-criteria")
	prompt := prompts.Format(template, map[string]string{
		"Description": description,
	})

	// Criteria parsing carries the whole run; use the advanced tier.
	jsonResp, err := p.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate criteria from LLM",
			Cause:   err,
		}
	}

	jsonResp = llm.CleanJSONBlock(jsonResp)

	if err := schemas.ValidateCriteria(jsonResp); err != nil {
		return nil, &ParseError{
			Message: "criteria response failed schema validation",
			Cause:   err,
		}
	}

	var criteria types.Criteria
	if err := json.Unmarshal([]byte(jsonResp), &criteria); err != nil {
		return nil, &ParseError{
			Message: "failed to parse criteria JSON",
			Cause:   err,
		}
	}

	criteria.Normalize()
	return &criteria, nil
}
