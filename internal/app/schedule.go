package app

import (
	"time"

	"github.com/alexanderramin/farmtrip/internal/domain"
)

// GenerateRequest asks for a new itinerary from one farm, zero or more tours
// and a free-text request that carries duration and timing.
type GenerateRequest struct {
	Region  string
	FarmID  string
	TourIDs []string
	Text    string
	Profile domain.PreferenceProfile
	Today   *time.Time
	UseNLU  bool
}

func NewGenerateRequest(region, text string) GenerateRequest {
	return GenerateRequest{
		Region: region,
		Text:   text,
		UseNLU: true,
	}
}

type ReviseRequest struct {
	ItineraryID string
	Feedback    string
	Now         *time.Time
}

func NewReviseRequest(id, feedback string) ReviseRequest {
	return ReviseRequest{ItineraryID: id, Feedback: feedback}
}

// ScheduleResponse carries the produced itinerary together with how each
// input was resolved.
type ScheduleResponse struct {
	Itinerary    *domain.Itinerary
	Duration     domain.Slot[int]
	Start        domain.Slot[time.Time]
	SpecialEvent *domain.SpecialEvent
	NLUState     string
	UsedDefault  bool
	Warnings     []string
	Groups       []domain.GroupEntry
	Events       []domain.CalendarEvent
}

// View returns the transport shape of the response.
func (r *ScheduleResponse) View() ItineraryView {
	v := NewItineraryView(r.Itinerary, r.Groups, r.Events)
	v.UsedDefault = v.UsedDefault || r.UsedDefault
	v.Resolution = ResolutionView{
		Duration:  string(r.Duration.Provenance),
		StartDate: string(r.Start.Provenance),
	}
	if r.SpecialEvent != nil {
		v.Resolution.SpecialEvent = r.SpecialEvent.Name
	}
	v.Warnings = append(v.Warnings, r.Warnings...)
	return v
}

// CalendarResponse is the date-keyed projection of an itinerary:
// year-month -> day of month -> events.
type CalendarResponse struct {
	ItineraryID string
	Version     int
	Months      map[string]map[int][]domain.CalendarEvent
	Cached      bool
}
