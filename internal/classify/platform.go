// Package classify filters raw search hits down to genuine individual
// fundraising-page URLs and deduplicates them across query variants.
package classify

import (
	"net/url"
	"sort"
	"strings"
)

// Platform represents a known fundraising platform.
type Platform string

// Supported fundraising platforms
const (
	// PlatformGoFundMe is gofundme.com
	PlatformGoFundMe Platform = "gofundme"
	// PlatformGiveSendGo is givesendgo.com
	PlatformGiveSendGo Platform = "givesendgo"
	// PlatformJustGiving is justgiving.com
	PlatformJustGiving Platform = "justgiving"
	// PlatformGoGetFunding is gogetfunding.com
	PlatformGoGetFunding Platform = "gogetfunding"
	// PlatformFundRazr is fundrazr.com
	PlatformFundRazr Platform = "fundrazr"
	// PlatformFacebook is facebook.com donation pages
	PlatformFacebook Platform = "facebook"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// platformHosts maps domain suffixes to platforms. Subdomains (www, m,
// country mirrors) resolve to the same platform.
var platformHosts = map[string]Platform{
	"gofundme.com":     PlatformGoFundMe,
	"givesendgo.com":   PlatformGiveSendGo,
	"justgiving.com":   PlatformJustGiving,
	"gogetfunding.com": PlatformGoGetFunding,
	"fundrazr.com":     PlatformFundRazr,
	"facebook.com":     PlatformFacebook,
}

// SupportedDomains returns the platform domain allow-list, sorted, for use
// as a search-provider hint.
func SupportedDomains() []string {
	domains := make([]string, 0, len(platformHosts))
	for domain := range platformHosts {
		domains = append(domains, domain)
	}
	sort.Strings(domains)
	return domains
}

// DetectPlatform identifies the fundraising platform from a URL. URLs from
// hosts outside the allow-list return PlatformUnknown.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	for suffix, platform := range platformHosts {
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return platform
		}
	}
	return PlatformUnknown
}

// isCampaignPath applies the platform's positive URL-shape rule. Platforms
// without a dedicated rule accept any path; the generic exclude patterns
// still apply to them afterwards.
func isCampaignPath(platform Platform, urlStr string) bool {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	path := strings.ToLower(parsed.EscapedPath())

	switch platform {
	case PlatformGoFundMe:
		// Campaign pages live under /f/<slug>.
		return strings.Contains(path, "/f/")
	case PlatformJustGiving:
		return strings.Contains(path, "/page/") ||
			strings.Contains(path, "/fundraising/") ||
			strings.Contains(path, "/crowdfunding/")
	case PlatformFacebook:
		// Only donation pages count; the rest of the social graph is noise.
		return strings.Contains(path, "/donate/")
	case PlatformGiveSendGo, PlatformGoGetFunding, PlatformFundRazr:
		// Campaigns sit at the path root; require some slug beyond "/".
		return strings.Trim(path, "/") != ""
	default:
		return false
	}
}
