package fetch

import "github.com/jlindqvist/fundscout/internal/classify"

// CampaignContentSelectors returns content selectors for a fundraising
// platform's campaign story.
func CampaignContentSelectors(platform classify.Platform) []string {
	switch platform {
	case classify.PlatformGoFundMe:
		return []string{
			".campaign-description",
			"[class*='campaign-description']",
			"[data-testid='campaign-description']",
			".o-campaign-story",
			"main",
		}
	case classify.PlatformGiveSendGo:
		return []string{
			".campaign-story",
			"#campaign-story",
			".description",
			"main",
		}
	case classify.PlatformJustGiving:
		return []string{
			"[data-testid='page-story']",
			".page-story",
			".fundraiser-story",
			"main",
		}
	case classify.PlatformGoGetFunding:
		return []string{
			".campaign_description",
			"#campaign-description",
			".description",
			"main",
		}
	case classify.PlatformFundRazr:
		return []string{
			".campaign-story",
			".story-content",
			"main",
		}
	default:
		return []string{
			"main",
			"article",
			".content",
			"#content",
			".main-content",
			"#main-content",
		}
	}
}

// CampaignNoiseSelectors returns elements to strip before text extraction:
// donor lists, share widgets, related-campaign rails.
func CampaignNoiseSelectors(platform classify.Platform) []string {
	common := []string{
		"[class*='donation-list']",
		"[class*='donor-list']",
		"[class*='share']",
		"[class*='related-campaign']",
		"[class*='comments']",
		"[class*='updates-list']",
	}
	switch platform {
	case classify.PlatformGoFundMe:
		return append(common, ".o-campaign-sidebar", "[class*='progress-meter']")
	case classify.PlatformJustGiving:
		return append(common, "[data-testid='supporters']")
	default:
		return common
	}
}
