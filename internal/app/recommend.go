package app

import "github.com/alexanderramin/farmtrip/internal/domain"

// ScoreRequest ranks an explicit candidate list.
type ScoreRequest struct {
	Candidates   []domain.Attraction
	Styles       []string
	Landscapes   []string
	RequireMatch bool // an empty candidate list is an error instead of an empty result
}

type RankedAttraction struct {
	Attraction domain.Attraction
	Rank       int
	Score      float64
	Reasons    []ScoreReason
}

type ScoreResponse struct {
	Ranked []RankedAttraction
}

// RecommendRequest ranks the catalog of one region for a profile.
type RecommendRequest struct {
	Region    string
	Profile   domain.PreferenceProfile
	FarmLimit int
	TourLimit int
}

func NewRecommendRequest(region string, profile domain.PreferenceProfile) RecommendRequest {
	return RecommendRequest{
		Region:    region,
		Profile:   profile,
		FarmLimit: 5,
		TourLimit: 10,
	}
}

type RankedFarm struct {
	Farm    domain.Farm
	Rank    int
	Score   float64
	Reasons []ScoreReason
}

type RecommendResponse struct {
	Region   string
	Farms    []RankedFarm
	Tours    []RankedAttraction
	Filtered int // candidates dropped as non-attraction facilities
}
