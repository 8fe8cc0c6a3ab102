package domain

// PreferenceProfile is the user's submitted preference set. It is treated as
// immutable for the lifetime of a recommendation cycle.
type PreferenceProfile struct {
	Landscapes   []string      `json:"landscapes,omitempty"`
	TravelStyles []string      `json:"travel_styles,omitempty"`
	JobTags      []string      `json:"job_tags,omitempty"`
	Wishes       []string      `json:"wishes,omitempty"`
	Companion    CompanionType `json:"companion,omitempty"`
}

func (p PreferenceProfile) Clone() PreferenceProfile {
	return PreferenceProfile{
		Landscapes:   CloneStrings(p.Landscapes),
		TravelStyles: CloneStrings(p.TravelStyles),
		JobTags:      CloneStrings(p.JobTags),
		Wishes:       CloneStrings(p.Wishes),
		Companion:    p.Companion,
	}
}

func (p PreferenceProfile) IsEmpty() bool {
	return len(p.Landscapes) == 0 && len(p.TravelStyles) == 0 && len(p.JobTags) == 0
}
