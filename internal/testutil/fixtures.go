package testutil

import (
	"time"

	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/google/uuid"
)

// FixtureStart is the start date fixtures use when none is given.
var FixtureStart = time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)

// Attraction options
type AttractionOption func(*domain.Attraction)

func WithAttractionID(id string) AttractionOption {
	return func(a *domain.Attraction) {
		a.ID = id
	}
}

func WithAddress(addr string) AttractionOption {
	return func(a *domain.Attraction) {
		a.Address = addr
	}
}

func WithRegion(region string) AttractionOption {
	return func(a *domain.Attraction) {
		a.Region = region
	}
}

func WithStyles(styles ...string) AttractionOption {
	return func(a *domain.Attraction) {
		a.StyleKeywords = styles
	}
}

func WithLandscapes(landscapes ...string) AttractionOption {
	return func(a *domain.Attraction) {
		a.LandscapeKeywords = landscapes
	}
}

func WithRawScore(s float64) AttractionOption {
	return func(a *domain.Attraction) {
		a.RawScore = &s
	}
}

func NewTestAttraction(name string, opts ...AttractionOption) *domain.Attraction {
	a := &domain.Attraction{
		ID:      uuid.New().String(),
		Name:    name,
		Address: "전북 김제시 부량면 벽골제로 442",
		Region:  "김제시",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Farm options
type FarmOption func(*domain.Farm)

func WithFarmID(id string) FarmOption {
	return func(f *domain.Farm) {
		f.ID = id
	}
}

func WithFarmAddress(addr string) FarmOption {
	return func(f *domain.Farm) {
		f.Address = addr
	}
}

func WithFarmRegion(region string) FarmOption {
	return func(f *domain.Farm) {
		f.Region = region
	}
}

func WithTags(tags ...string) FarmOption {
	return func(f *domain.Farm) {
		f.Tags = tags
	}
}

func WithWorkHours(start, end string) FarmOption {
	return func(f *domain.Farm) {
		f.WorkStart = start
		f.WorkEnd = end
	}
}

func NewTestFarm(name string, opts ...FarmOption) *domain.Farm {
	f := &domain.Farm{
		ID:        uuid.New().String(),
		Name:      name,
		Address:   "전북 김제시 금산면 청도리 123",
		Region:    "김제시",
		WorkStart: domain.DefaultWorkStart,
		WorkEnd:   domain.DefaultWorkEnd,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Itinerary options
type ItineraryOption func(*domain.Itinerary)

func WithItineraryID(id string) ItineraryOption {
	return func(it *domain.Itinerary) {
		it.ID = id
	}
}

func WithVersion(v int) ItineraryOption {
	return func(it *domain.Itinerary) {
		it.Version = v
	}
}

func WithWarnings(w ...string) ItineraryOption {
	return func(it *domain.Itinerary) {
		it.Warnings = w
	}
}

func WithProfile(p domain.PreferenceProfile) ItineraryOption {
	return func(it *domain.Itinerary) {
		it.Profile = p
	}
}

// NewTestItinerary returns a valid three-day itinerary: an arrival tour, one
// farm day on the given farm, and a closing tour.
func NewTestItinerary(farm *domain.Farm, opts ...ItineraryOption) *domain.Itinerary {
	now := time.Now().UTC().Truncate(time.Second)
	it := &domain.Itinerary{
		ID:             uuid.New().String(),
		Version:        1,
		Region:         farm.Region,
		StartDate:      FixtureStart,
		TotalDays:      3,
		Farm:           *farm,
		DurationSource: domain.ProvenanceResolved,
		StartSource:    domain.ProvenanceResolved,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	it.Items = []domain.ScheduleItem{
		{Day: 1, Date: domain.DayDate(FixtureStart, 1), Type: domain.ScheduleTour, Name: "벽골제", StartTime: "15:00",
			Address: "전북 김제시 부량면 벽골제로 442", SourceID: "tour-1"},
		{Day: 2, Date: domain.DayDate(FixtureStart, 2), Type: domain.ScheduleFarm, Name: farm.Name, StartTime: farm.WorkStart,
			EndTime: farm.WorkEnd, Address: farm.Address, SourceID: farm.ID},
		{Day: 3, Date: domain.DayDate(FixtureStart, 3), Type: domain.ScheduleTour, Name: "아리랑문학마을", StartTime: "10:00",
			Address: "전북 김제시 부량면 용성리", SourceID: "tour-2"},
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}
