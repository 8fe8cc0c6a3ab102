package domain

import (
	"fmt"
	"time"
)

const (
	DefaultWorkStart = "08:00"
	DefaultWorkEnd   = "17:00"
)

// Attraction is a tourist-attraction candidate sourced from the catalog.
type Attraction struct {
	ID                string
	Name              string
	Address           string
	Region            string
	LandscapeKeywords []string
	StyleKeywords     []string
	RawScore          *float64
}

// Farm is a rural-work placement. An itinerary holds exactly one.
type Farm struct {
	ID        string
	Name      string
	Address   string
	Region    string
	Tags      []string
	WorkStart string
	WorkEnd   string
}

// WorkTime returns the daily work window, e.g. "08:00-17:00".
func (f Farm) WorkTime() string {
	return CoalesceStr(f.WorkStart, DefaultWorkStart) + "-" + CoalesceStr(f.WorkEnd, DefaultWorkEnd)
}

// SpecialEvent is a fixed seasonal event configured for a (region, month).
type SpecialEvent struct {
	Name      string
	Address   string
	Region    string
	Month     int
	StartDay  int
	EndDay    int
	AnchorDay int
	StartTime string
}

// AsAttraction converts the event into a candidate so it can be placed like a tour.
func (e SpecialEvent) AsAttraction() Attraction {
	return Attraction{
		ID:      e.SourceID(),
		Name:    e.Name,
		Address: e.Address,
		Region:  e.Region,
	}
}

func (e SpecialEvent) SourceID() string {
	return fmt.Sprintf("event:%s:%02d", e.Name, e.Month)
}

// Overlaps reports whether a trip of days starting on start shares a date
// with the event. Without configured days the event spans its whole month.
func (e SpecialEvent) Overlaps(start time.Time, days int) bool {
	if days < 1 {
		return false
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	end := start.AddDate(0, 0, days-1)
	for _, year := range []int{start.Year(), start.Year() + 1} {
		first, last := e.window(year, start.Location())
		if !first.After(end) && !last.Before(start) {
			return true
		}
	}
	return false
}

func (e SpecialEvent) window(year int, loc *time.Location) (time.Time, time.Time) {
	month := time.Month(e.Month)
	first := time.Date(year, month, max(e.StartDay, 1), 0, 0, 0, 0, loc)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
	if e.EndDay > 0 {
		last = time.Date(year, month, e.EndDay, 0, 0, 0, 0, loc)
	}
	return first, last
}

// Period is the event's date range, such as "10월 8일-12일".
func (e SpecialEvent) Period() string {
	if e.StartDay == 0 || e.EndDay == 0 {
		return fmt.Sprintf("%d월", e.Month)
	}
	return fmt.Sprintf("%d월 %d일-%d일", e.Month, e.StartDay, e.EndDay)
}
