// Package search abstracts the web-search provider used to discover
// candidate fundraising pages.
package search

import (
	"context"

	"github.com/jlindqvist/fundscout/internal/types"
)

// Options tunes a single search call.
type Options struct {
	// MaxResults caps the number of hits returned for one query.
	MaxResults int
	// Domains restricts results to the given domains when the provider
	// supports site filtering. Empty means unrestricted.
	Domains []string
}

// Provider executes one web-search query and returns raw hits. A failed
// query is not run-fatal; the pipeline treats it as zero hits.
type Provider interface {
	Search(ctx context.Context, query string, opts Options) ([]types.RawHit, error)
}
