package types

// RawHit is one result returned by the search provider for one query.
// Duplicates across query variants are expected and resolved by URL.
type RawHit struct {
	URL        string `json:"url"`
	Title      string `json:"title,omitempty"`
	Content    string `json:"content"`
	RawContent string `json:"raw_content,omitempty"`
}

// Candidate is a RawHit that passed platform classification. It represents
// one fundraising page, and therefore one person to evaluate.
type Candidate struct {
	URL        string `json:"url"`
	Title      string `json:"title,omitempty"`
	Content    string `json:"content"`
	RawContent string `json:"raw_content,omitempty"`
	Platform   string `json:"platform"`
}
