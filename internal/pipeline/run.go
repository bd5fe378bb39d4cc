// Package pipeline drives an end-to-end discovery run: parse criteria,
// generate queries, search concurrently, classify hits, extract and score
// candidates concurrently, and emit incremental events along the way.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jlindqvist/fundscout/internal/classify"
	"github.com/jlindqvist/fundscout/internal/extraction"
	"github.com/jlindqvist/fundscout/internal/fetch"
	"github.com/jlindqvist/fundscout/internal/parsing"
	"github.com/jlindqvist/fundscout/internal/scoring"
	"github.com/jlindqvist/fundscout/internal/search"
	"github.com/jlindqvist/fundscout/internal/types"
)

// Config bounds the pipeline's concurrency and external-call latency.
type Config struct {
	MaxResultsPerQuery int
	Concurrency        int
	SearchTimeout      time.Duration
	FetchTimeout       time.Duration
	ExtractionTimeout  time.Duration
	RunTimeout         time.Duration
}

// DefaultConfig returns the standard limits for one run.
func DefaultConfig() *Config {
	return &Config{
		MaxResultsPerQuery: 10,
		Concurrency:        8,
		SearchTimeout:      15 * time.Second,
		FetchTimeout:       30 * time.Second,
		ExtractionTimeout:  45 * time.Second,
		RunTimeout:         120 * time.Second,
	}
}

// Deps are the collaborators a run composes. All external services hide
// behind interfaces so tests can run the whole pipeline on fakes.
type Deps struct {
	Parser    parsing.CriteriaParser
	Queries   parsing.QueryGenerator
	Provider  search.Provider
	Fetcher   fetch.Fetcher
	Extractor extraction.ProfileExtractor
	Scorer    *scoring.Scorer
}

// Pipeline executes discovery runs. Safe for concurrent use; each run keeps
// its own state.
type Pipeline struct {
	deps   Deps
	config *Config
}

// New creates a pipeline. A nil config uses DefaultConfig.
func New(deps Deps, config *Config) *Pipeline {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Concurrency <= 0 {
		config.Concurrency = 8
	}
	if deps.Scorer == nil {
		deps.Scorer = scoring.NewScorer(scoring.DefaultVocabulary())
	}
	return &Pipeline{deps: deps, config: config}
}

// RunError is the run-fatal failure surfaced to the caller alongside the
// error event.
type RunError struct {
	Step    types.Step
	Message string
	Cause   error
}

func (e *RunError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("run failed during %s: %s: %v", e.Step, e.Message, e.Cause)
	}
	return fmt.Sprintf("run failed during %s: %s", e.Step, e.Message)
}

func (e *RunError) Unwrap() error {
	return e.Cause
}

// Run executes one discovery run for a free-text description. Events are
// sent to the events channel in emission order and the channel is closed
// when the run finishes; pass nil to skip event delivery. The final frame
// on a successful run is always the complete event carrying the sorted
// summary. Cancelling ctx (or hitting the whole-run timeout) aborts the
// run: partial results are discarded and a RunError is returned after an
// error event.
func (p *Pipeline) Run(ctx context.Context, description string, events chan<- types.Event) (*types.RunSummary, error) {
	if events != nil {
		defer close(events)
	}
	emit := func(e types.Event) {
		if events != nil {
			events <- e
		}
	}

	if strings.TrimSpace(description) == "" {
		err := &RunError{Step: types.StepFailed, Message: "description must not be empty"}
		emit(types.Event{Type: types.EventError, Step: types.StepFailed, Message: err.Message})
		return nil, err
	}

	if p.config.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.RunTimeout)
		defer cancel()
	}

	// abort surfaces caller cancellation or the whole-run timeout as the
	// run-fatal error; partial results computed so far are discarded.
	abort := func(step types.Step) *RunError {
		cause := ctx.Err()
		if cause == nil {
			return nil
		}
		msg := "run cancelled"
		if errors.Is(cause, context.DeadlineExceeded) {
			msg = "run timed out"
		}
		runErr := &RunError{Step: step, Message: msg, Cause: cause}
		emit(types.Event{Type: types.EventError, Step: types.StepFailed, Message: runErr.Error()})
		return runErr
	}

	// Stage 1: criteria parsing. The only run-fatal collaborator call.
	emit(types.Event{Type: types.EventStatus, Step: types.StepParsing, Message: "Understanding who you're looking for"})
	criteria, err := p.deps.Parser.ParseCriteria(ctx, description)
	if err != nil {
		runErr := &RunError{Step: types.StepParsing, Message: "could not derive search criteria", Cause: err}
		emit(types.Event{Type: types.EventError, Step: types.StepFailed, Message: runErr.Error()})
		return nil, runErr
	}
	emit(types.Event{Type: types.EventCriteria, Data: criteria})

	weights := scoring.AllocateWeights(criteria)

	// Stage 2: query generation, with deterministic fallback.
	emit(types.Event{Type: types.EventStatus, Step: types.StepQuerying, Message: "Generating search queries for " + parsing.DescribeCriteria(criteria)})
	queries, err := p.deps.Queries.GenerateQueries(ctx, criteria)
	if err != nil {
		queries = parsing.FallbackQueries(criteria)
	}
	emit(types.Event{Type: types.EventQueries, Data: queries})

	// Stage 3: concurrent search fan-out. A failed query contributes an
	// empty hit list.
	emit(types.Event{Type: types.EventStatus, Step: types.StepSearching, Message: fmt.Sprintf("Searching fundraising platforms with %d queries", len(queries))})
	hits := p.searchAll(ctx, queries)
	if runErr := abort(types.StepSearching); runErr != nil {
		return nil, runErr
	}

	// Stage 4: classification and deduplication.
	emit(types.Event{Type: types.EventStatus, Step: types.StepClassifying, Message: "Filtering campaign pages"})
	candidates := classify.FilterCandidates(hits)
	emit(types.Event{Type: types.EventCandidatesFound, Count: len(candidates)})

	// Stage 5: concurrent extraction and scoring.
	emit(types.Event{Type: types.EventStatus, Step: types.StepExtracting, Message: fmt.Sprintf("Reading %d campaign pages", len(candidates))})
	matches := p.extractAndScore(ctx, candidates, criteria, weights, emit)
	if runErr := abort(types.StepExtracting); runErr != nil {
		return nil, runErr
	}

	// Stage 6: final ranking. matches is in classification order, so the
	// stable sort breaks score ties deterministically by discovery order.
	emit(types.Event{Type: types.EventStatus, Step: types.StepScoring, Message: "Ranking matches"})
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	summary := &types.RunSummary{
		Criteria:     *criteria,
		Queries:      queries,
		TotalResults: len(candidates),
		Weights:      weights,
		Matches:      matches,
	}

	doneMsg := fmt.Sprintf("Found %d candidates", len(candidates))
	if len(candidates) == 0 {
		doneMsg = "No matching campaign pages found; try a broader description"
	}
	emit(types.Event{Type: types.EventStatus, Step: types.StepDone, Message: doneMsg})
	emit(types.Event{Type: types.EventComplete, Data: summary})

	return summary, nil
}

// searchAll fans out one provider call per query with bounded concurrency
// and merges the hits in query order.
func (p *Pipeline) searchAll(ctx context.Context, queries []string) []types.RawHit {
	perQuery := make([][]types.RawHit, len(queries))
	domains := classify.SupportedDomains()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.config.Concurrency)
	for i, query := range queries {
		g.Go(func() error {
			callCtx := gctx
			if p.config.SearchTimeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(gctx, p.config.SearchTimeout)
				defer cancel()
			}
			hits, err := p.deps.Provider.Search(callCtx, query, search.Options{
				MaxResults: p.config.MaxResultsPerQuery,
				Domains:    domains,
			})
			if err != nil {
				// Absorbed: a failing query yields no hits.
				return nil
			}
			perQuery[i] = hits
			return nil
		})
	}
	_ = g.Wait()

	var merged []types.RawHit
	for _, hits := range perQuery {
		merged = append(merged, hits...)
	}
	return merged
}

// extractAndScore fetches, extracts, and scores each candidate with bounded
// concurrency, emitting a profileScored event as each finishes. Extraction
// failures degrade that candidate to a minimal profile scored normally.
func (p *Pipeline) extractAndScore(ctx context.Context, candidates []types.Candidate, criteria *types.Criteria, weights types.WeightSet, emit func(types.Event)) []types.ScoredProfile {
	matches := make([]types.ScoredProfile, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.config.Concurrency)
	for i, candidate := range candidates {
		g.Go(func() error {
			profile := p.extractOne(gctx, candidate)
			result := p.deps.Scorer.Score(profile, criteria, weights)

			scored := types.ScoredProfile{
				Profile:    profile,
				MatchScore: result.Score,
				Breakdown:  result.Breakdown,
			}

			// Each task owns slot i, keeping the result slice in
			// classification order regardless of completion order.
			matches[i] = scored

			emit(types.Event{Type: types.EventProfileScored, Data: scored})
			return nil
		})
	}
	_ = g.Wait()

	return matches
}

// extractOne produces a profile for one candidate, degrading to the minimal
// profile on any fetch or extraction failure.
func (p *Pipeline) extractOne(ctx context.Context, candidate types.Candidate) types.Profile {
	content := candidate.RawContent
	if content == "" && p.deps.Fetcher != nil {
		fetchCtx := ctx
		if p.config.FetchTimeout > 0 {
			var cancel context.CancelFunc
			fetchCtx, cancel = context.WithTimeout(ctx, p.config.FetchTimeout)
			defer cancel()
		}
		text, err := p.deps.Fetcher.PageText(fetchCtx, candidate.URL)
		if err == nil {
			content = text
		}
	}
	if content == "" {
		// Fall back to the search snippet; extraction may still find facts.
		content = candidate.Title + "\n" + candidate.Content
	}

	extractCtx := ctx
	if p.config.ExtractionTimeout > 0 {
		var cancel context.CancelFunc
		extractCtx, cancel = context.WithTimeout(ctx, p.config.ExtractionTimeout)
		defer cancel()
	}
	profile, err := p.deps.Extractor.ExtractProfile(extractCtx, content, candidate.URL)
	if err != nil {
		return types.MinimalProfile(candidate)
	}
	return profile
}
