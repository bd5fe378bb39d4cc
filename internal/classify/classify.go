package classify

import (
	"strings"

	"github.com/jlindqvist/fundscout/internal/types"
)

// FilterCandidates reduces the concatenated hit lists from all query
// variants of one run to an ordered, deduplicated list of campaign-page
// candidates. Deduplication is by exact URL, keeping the first occurrence,
// so the content of the earliest query variant wins for duplicates. Hits
// that fail classification are silently dropped; zero candidates is a
// normal outcome, not an error.
func FilterCandidates(hits []types.RawHit) []types.Candidate {
	seen := make(map[string]bool, len(hits))
	candidates := make([]types.Candidate, 0, len(hits))

	for _, hit := range hits {
		url := strings.TrimSpace(hit.URL)
		if url == "" || seen[url] {
			continue
		}
		seen[url] = true

		platform := DetectPlatform(url)
		if platform == PlatformUnknown {
			continue
		}
		if matchesExcludePattern(url) {
			continue
		}
		if !isCampaignPath(platform, url) {
			continue
		}

		candidates = append(candidates, types.Candidate{
			URL:        url,
			Title:      hit.Title,
			Content:    hit.Content,
			RawContent: hit.RawContent,
			Platform:   string(platform),
		})
	}

	return candidates
}
