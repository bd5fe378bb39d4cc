// Package extraction turns raw campaign-page text into structured candidate
// profiles and cleans the placeholder values the extraction step emits.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/jlindqvist/fundscout/internal/llm"
	"github.com/jlindqvist/fundscout/internal/prompts"
	"github.com/jlindqvist/fundscout/internal/types"
)

// maxRawDescription caps the source text carried on a profile for audit.
const maxRawDescription = 600

// maxPageContent caps the page text sent to the extraction model.
const maxPageContent = 8000

// ProfileExtractor extracts a raw profile from one candidate page's content.
// Implementations may be slow and may fail; the pipeline absorbs individual
// failures by degrading that candidate to a minimal profile.
type ProfileExtractor interface {
	ExtractProfile(ctx context.Context, pageContent, url string) (types.Profile, error)
}

// LLMExtractor implements ProfileExtractor on top of an LLM client.
type LLMExtractor struct {
	client     llm.Client
	normalizer *Normalizer
}

// NewLLMExtractor creates an extractor that normalizes its own output.
func NewLLMExtractor(client llm.Client) *LLMExtractor {
	return &LLMExtractor{
		client:     client,
		normalizer: NewNormalizer(),
	}
}

// rawProfile is the JSON shape the extraction prompt asks for.
type rawProfile struct {
	Name          string   `json:"name"`
	OrganizerName string   `json:"organizer_name"`
	Age           int      `json:"age"`
	Gender        string   `json:"gender"`
	Conditions    []string `json:"conditions"`
	Location      string   `json:"location"`
}

// ExtractProfile asks the model for structured beneficiary facts and returns
// a normalized profile. The page content is truncated before prompting.
func (e *LLMExtractor) ExtractProfile(ctx context.Context, pageContent, url string) (types.Profile, error) {
	content := truncate(pageContent, maxPageContent)

	template := prompts.MustGet("extraction.json", "extract-profile")
	prompt := prompts.Format(template, map[string]string{
		"URL":         url,
		"PageContent": content,
	})

	// Extraction is routine structured output; the standard tier is enough.
	jsonResp, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return types.Profile{}, &ExtractionError{
			URL:     url,
			Message: "LLM generation failed",
			Cause:   err,
		}
	}

	var raw rawProfile
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(jsonResp)), &raw); err != nil {
		return types.Profile{}, &ExtractionError{
			URL:     url,
			Message: "failed to parse extraction response",
			Cause:   err,
		}
	}

	profile := types.Profile{
		Name:           raw.Name,
		OrganizerName:  raw.OrganizerName,
		Age:            raw.Age,
		Gender:         types.Gender(raw.Gender),
		Conditions:     raw.Conditions,
		Location:       raw.Location,
		CampaignURL:    url,
		RawDescription: truncate(pageContent, maxRawDescription),
	}

	return e.normalizer.Normalize(profile), nil
}

// truncate cuts s to at most max bytes without splitting a UTF-8 rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// ExtractionError represents a failure extracting one candidate's profile.
type ExtractionError struct {
	URL     string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed for %s: %s", e.URL, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
