package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url  string
		want Platform
	}{
		{"https://www.gofundme.com/f/help-maria", PlatformGoFundMe},
		{"https://gofundme.com/f/help-maria", PlatformGoFundMe},
		{"https://m.gofundme.com/f/help-maria", PlatformGoFundMe},
		{"https://www.givesendgo.com/G4582", PlatformGiveSendGo},
		{"https://www.justgiving.com/page/john-smith", PlatformJustGiving},
		{"https://gogetfunding.com/help-for-ana/", PlatformGoGetFunding},
		{"https://fundrazr.com/abc123", PlatformFundRazr},
		{"https://www.facebook.com/donate/123456/", PlatformFacebook},
		{"https://www.example.com/f/help-maria", PlatformUnknown},
		{"https://notgofundme.com/f/help", PlatformUnknown},
		{"://bad url", PlatformUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectPlatform(tt.url), "url %s", tt.url)
	}
}

func TestIsCampaignPath(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"gofundme campaign", "https://www.gofundme.com/f/help-maria", true},
		{"gofundme non-campaign", "https://www.gofundme.com/start/medical", false},
		{"justgiving page", "https://www.justgiving.com/page/john-smith", true},
		{"justgiving fundraising", "https://www.justgiving.com/fundraising/jane", true},
		{"justgiving root", "https://www.justgiving.com/", false},
		{"facebook donate", "https://www.facebook.com/donate/123456/", true},
		{"facebook profile", "https://www.facebook.com/john.smith", false},
		{"givesendgo campaign", "https://www.givesendgo.com/G4582", true},
		{"givesendgo root", "https://www.givesendgo.com/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isCampaignPath(DetectPlatform(tt.url), tt.url))
		})
	}
}
