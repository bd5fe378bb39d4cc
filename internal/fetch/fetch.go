// Package fetch retrieves fundraising pages and reduces them to the main
// campaign story text for downstream extraction.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jlindqvist/fundscout/internal/classify"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; FundScout/1.0)"

// Result holds the raw and processed content from a URL fetch.
type Result struct {
	URL         string
	HTML        string
	Text        string
	ContentType string
	StatusCode  int
}

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	Headers    map[string]string
	UseBrowser bool // fall back to headless rendering for thin pages
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Fetcher retrieves the main story text of a campaign page. The pipeline
// depends on this interface so tests can inject canned pages.
type Fetcher interface {
	PageText(ctx context.Context, urlStr string) (string, error)
}

// HTTPFetcher implements Fetcher over plain HTTP with optional headless
// browser fallback for JavaScript-rendered pages.
type HTTPFetcher struct {
	options *Options
}

// NewHTTPFetcher creates a fetcher with the given options.
func NewHTTPFetcher(opts *Options) *HTTPFetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTTPFetcher{options: opts}
}

// PageText fetches a campaign page and extracts its story text using
// platform-specific selectors. When the HTTP result is too thin to be real
// content and browser fallback is enabled, the page is re-rendered headless.
func (f *HTTPFetcher) PageText(ctx context.Context, urlStr string) (string, error) {
	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return "", err
	}

	platform := classify.DetectPlatform(urlStr)
	text, err := ExtractMainText(result.HTML, CampaignContentSelectors(platform), CampaignNoiseSelectors(platform)...)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to extract page text", Cause: err}
	}

	if f.options.UseBrowser && ShouldUseBrowser(text) {
		html, berr := WithBrowser(ctx, urlStr, f.options.Timeout)
		if berr != nil {
			// Keep whatever the plain fetch produced.
			return text, nil
		}
		rendered, rerr := ExtractMainText(html, CampaignContentSelectors(platform), CampaignNoiseSelectors(platform)...)
		if rerr == nil && len(rendered) > len(text) {
			text = rendered
		}
	}

	return text, nil
}

// URL retrieves HTML content from a URL.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	client := &http.Client{
		Timeout: opts.Timeout,
	}

	req, err := http.NewRequestWithContext(ctx, "GET", urlStr, nil)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        string(bodyBytes),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		return result, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	return result, nil
}

// ExtractMainText parses HTML and returns the main body text. It removes
// noise elements using noiseSelectors, then finds content using
// contentSelectors. If no content selectors match, it falls back to the
// body element.
func ExtractMainText(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	// Remove common unwanted elements (nav, footer, scripts, ads, etc.)
	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup").Remove()

	if len(noiseSelectors) > 0 {
		noiseSelector := strings.Join(noiseSelectors, ", ")
		if noiseSelector != "" {
			doc.Find(noiseSelector).Remove()
		}
	}

	var mainContent *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}

	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	text := mainContent.Text()
	text = cleanWhitespace(text)

	return text, nil
}

// cleanWhitespace normalizes whitespace in text.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
