package types

// Profile holds the structured attributes extracted from one candidate's
// page content. Optional string fields are empty when absent; Age is 0 when
// unknown. Profiles are never merged across URLs.
type Profile struct {
	Name           string   `json:"name,omitempty"`
	OrganizerName  string   `json:"organizer_name,omitempty"`
	Age            int      `json:"age,omitempty"`
	Gender         Gender   `json:"gender"`
	Conditions     []string `json:"conditions,omitempty"`
	Location       string   `json:"location,omitempty"`
	CampaignURL    string   `json:"campaign_url"`
	RawDescription string   `json:"raw_description,omitempty"`
}

// MinimalProfile returns the degraded profile used when extraction for a
// candidate fails: everything absent except the campaign URL and whatever
// snippet text was already in hand.
func MinimalProfile(candidate Candidate) Profile {
	return Profile{
		Gender:         GenderUnknown,
		CampaignURL:    candidate.URL,
		RawDescription: candidate.Content,
	}
}
