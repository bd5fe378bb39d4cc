package classify

import "strings"

// excludePatterns lists URL substrings that mark non-campaign pages:
// search/discovery surfaces, info and help pages, legal boilerplate, auth
// flows, localized mirror paths, sitemap/XML resources, and social-network
// paths that are not donation pages.
var excludePatterns = []string{
	// Search and discovery
	"/s?", "/search", "/discover", "/browse", "/category", "/c/",
	"/cause/", "/causes/", "/top-", "/trending",

	// Info, help, legal
	"/how-it-works", "/help", "/support", "/faq", "/about", "/contact",
	"/pricing", "/terms", "/privacy", "/legal", "/security", "/guarantee",
	"/blog", "/press", "/newsroom", "/careers", "/jobs", "/partners",

	// Auth flows
	"/sign-in", "/signin", "/sign-up", "/signup", "/login", "/register",
	"/account", "/password",

	// Creation flows
	"/create", "/start", "/fundraise-for",

	// Localized mirrors
	"/en-gb/", "/en-ca/", "/en-au/", "/en-ie/", "/fr-fr/", "/de-de/",
	"/es-es/", "/it-it/", "/nl-nl/", "/pt-pt/",

	// Sitemap/XML resources
	"/sitemap", ".xml", ".rss",

	// Social-network non-donation paths
	"/groups/", "/events/", "/photos/", "/videos/", "/marketplace/",
	"/sharer", "/share.php", "/hashtag/",
}

// matchesExcludePattern reports whether the URL contains any generic
// exclude-pattern. Patterns ending in a separator match as plain
// substrings; word patterns must end on a path boundary so that campaign
// slugs like /f/help-maria are not swallowed by "/help".
func matchesExcludePattern(urlStr string) bool {
	lower := strings.ToLower(urlStr)
	for _, pattern := range excludePatterns {
		if patternMatches(lower, pattern) {
			return true
		}
	}
	return false
}

func patternMatches(url, pattern string) bool {
	switch pattern[len(pattern)-1] {
	case '/', '-', '?':
		return strings.Contains(url, pattern)
	}

	for idx := strings.Index(url, pattern); idx >= 0; {
		end := idx + len(pattern)
		if end == len(url) || isBoundary(url[end]) {
			return true
		}
		next := strings.Index(url[end:], pattern)
		if next < 0 {
			break
		}
		idx = end + next
	}
	return false
}

func isBoundary(c byte) bool {
	return c == '/' || c == '?' || c == '#' || c == '.'
}
