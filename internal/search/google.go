package search

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/jlindqvist/fundscout/internal/types"
)

// maxPerCall is the Custom Search API's hard cap per request.
const maxPerCall = 10

// GoogleProvider implements Provider on the Google Custom Search API.
type GoogleProvider struct {
	svc *customsearch.Service
	cx  string
}

// NewGoogleProvider creates a provider bound to a programmable search engine.
func NewGoogleProvider(ctx context.Context, apiKey string, cx string) (*GoogleProvider, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &GoogleProvider{svc: svc, cx: cx}, nil
}

// Search runs one query and maps the response items to raw hits. Snippets
// become the hit content; full page text is filled in later by the fetch
// layer.
func (g *GoogleProvider) Search(ctx context.Context, query string, opts Options) ([]types.RawHit, error) {
	n := int64(opts.MaxResults)
	if n <= 0 || n > maxPerCall {
		n = maxPerCall
	}

	resp, err := g.svc.Cse.List().
		Context(ctx).
		Cx(g.cx).
		Q(restrictQuery(query, opts.Domains)).
		Num(n).
		Do()
	if err != nil {
		return nil, fmt.Errorf("search failed for %q: %w", query, err)
	}

	hits := make([]types.RawHit, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Link == "" {
			continue
		}
		hits = append(hits, types.RawHit{
			URL:     item.Link,
			Title:   item.Title,
			Content: item.Snippet,
		})
	}
	return hits, nil
}

// restrictQuery appends a site: clause per allowed domain so the engine only
// returns fundraising-platform pages.
func restrictQuery(query string, domains []string) string {
	if len(domains) == 0 {
		return query
	}
	sites := make([]string, len(domains))
	for i, d := range domains {
		sites[i] = "site:" + d
	}
	return query + " (" + strings.Join(sites, " OR ") + ")"
}
