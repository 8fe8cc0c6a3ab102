package scheduler

import (
	"fmt"
	"time"

	"github.com/alexanderramin/farmtrip/internal/app"
	"github.com/alexanderramin/farmtrip/internal/domain"
)

const (
	FreeDayName = "자유 일정"

	arrivalFirstHour = 15
	arrivalGapHours  = 2
	tourFirstHour    = 10
	tourGapHours     = 3
	lastStartHour    = 20
)

// BuildInput carries everything needed to lay out an itinerary.
type BuildInput struct {
	ID             string
	Region         string
	Farm           *domain.Farm
	Tours          []domain.Attraction
	Special        *domain.SpecialEvent
	Duration       int
	Start          time.Time
	Profile        domain.PreferenceProfile
	DurationSource domain.Provenance
	StartSource    domain.Provenance
	Now            time.Time
}

// dayLayout describes which days hold the farm block and which are tour days.
type dayLayout struct {
	farmStart int
	farmEnd   int
	tourDays  []int
	arrival   bool
}

// planLayout reserves the first day for arrival sightseeing and trailing
// days for wrap-up tours when there is anything to tour. The farm keeps at
// least one day.
func planLayout(duration int, hasTours bool) dayLayout {
	if !hasTours || duration == 1 {
		return dayLayout{farmStart: 1, farmEnd: duration}
	}
	lead, trail := 1, 0
	switch {
	case duration >= 7:
		trail = 2
	case duration >= 3:
		trail = 1
	}
	l := dayLayout{farmStart: lead + 1, farmEnd: duration - trail, arrival: true}
	for d := 1; d <= lead; d++ {
		l.tourDays = append(l.tourDays, d)
	}
	for d := l.farmEnd + 1; d <= duration; d++ {
		l.tourDays = append(l.tourDays, d)
	}
	return l
}

// BuildItinerary lays out one farm block and the tour candidates over the
// trip. The special event, when present, always opens day 1.
func BuildItinerary(in BuildInput) (*domain.Itinerary, error) {
	if in.Farm == nil || in.Farm.Name == "" {
		return nil, app.NewScheduleError(app.ErrNoFarmSelected, "a farm must be selected before scheduling")
	}
	if in.Duration < 1 {
		return nil, app.NewScheduleError(app.ErrDurationUnavailable, "trip duration is unknown")
	}

	var warnings []string
	duration := in.Duration
	if duration > domain.MaxTripDays {
		warnings = append(warnings, fmt.Sprintf("duration %d shortened to %d days", duration, domain.MaxTripDays))
		duration = domain.MaxTripDays
	}
	start := dateOnly(in.Start)
	if in.Special != nil && !in.Special.Overlaps(start, duration) {
		warnings = append(warnings, fmt.Sprintf("%s runs %s, outside the trip dates", in.Special.Name, in.Special.Period()))
	}

	tours := tourQueue(in.Tours, in.Special)
	layout := planLayout(duration, len(tours) > 0)

	it := &domain.Itinerary{
		ID:             in.ID,
		Version:        1,
		Region:         in.Region,
		StartDate:      start,
		TotalDays:      duration,
		Farm:           *in.Farm,
		Profile:        in.Profile.Clone(),
		DurationSource: in.DurationSource,
		StartSource:    in.StartSource,
		CreatedAt:      in.Now,
		UpdatedAt:      in.Now,
	}

	for day := layout.farmStart; day <= layout.farmEnd; day++ {
		it.Items = append(it.Items, farmItem(*in.Farm, day, start))
	}

	placed := distribute(tours, len(layout.tourDays))
	unplaced := len(tours)
	for i, day := range layout.tourDays {
		chunk := placed[i]
		if len(chunk) == 0 {
			it.Items = append(it.Items, freeItem(day, start))
			continue
		}
		for k, a := range chunk {
			it.Items = append(it.Items, tourItem(a, day, k, layout.arrival && day == 1, start, in.Special))
		}
		unplaced -= len(chunk)
	}
	if unplaced > 0 {
		warnings = append(warnings, fmt.Sprintf("%d attraction(s) did not fit a %d-day trip", unplaced, duration))
	}

	it.Warnings = warnings
	it.SortItems()
	if err := it.Validate(); err != nil {
		return nil, fmt.Errorf("building itinerary: %w", err)
	}
	return it, nil
}

// tourQueue puts the special event first and clusters the rest by locality,
// dropping duplicates.
func tourQueue(tours []domain.Attraction, special *domain.SpecialEvent) []domain.Attraction {
	seen := make(map[string]bool)
	var out []domain.Attraction
	if special != nil {
		ev := special.AsAttraction()
		seen[ev.ID] = true
		seen[ev.Name] = true
		out = append(out, ev)
	}
	var rest []domain.Attraction
	for _, a := range tours {
		key := domain.CoalesceStr(a.ID, a.Name)
		if seen[key] || seen[a.Name] {
			continue
		}
		seen[key] = true
		seen[a.Name] = true
		rest = append(rest, a)
	}
	return append(out, ClusterByLocality(rest)...)
}

// distribute splits items into n contiguous chunks whose sizes differ by at
// most one, larger chunks first.
func distribute(items []domain.Attraction, n int) [][]domain.Attraction {
	if n == 0 {
		return nil
	}
	chunks := make([][]domain.Attraction, n)
	q, r := len(items)/n, len(items)%n
	pos := 0
	for i := 0; i < n; i++ {
		size := q
		if i < r {
			size++
		}
		chunks[i] = items[pos : pos+size]
		pos += size
	}
	return chunks
}

func farmItem(f domain.Farm, day int, start time.Time) domain.ScheduleItem {
	return domain.ScheduleItem{
		Day:       day,
		Date:      domain.DayDate(start, day),
		Type:      domain.ScheduleFarm,
		Name:      f.Name,
		StartTime: domain.CoalesceStr(f.WorkStart, domain.DefaultWorkStart),
		EndTime:   domain.CoalesceStr(f.WorkEnd, domain.DefaultWorkEnd),
		Address:   f.Address,
		SourceID:  f.ID,
	}
}

func tourItem(a domain.Attraction, day, slot int, arrival bool, start time.Time, special *domain.SpecialEvent) domain.ScheduleItem {
	item := domain.ScheduleItem{
		Day:       day,
		Date:      domain.DayDate(start, day),
		Type:      domain.ScheduleTour,
		Name:      a.Name,
		StartTime: SlotTime(arrival, slot),
		Address:   a.Address,
		SourceID:  a.ID,
	}
	if special != nil && a.ID == special.SourceID() {
		item.Special = true
		if special.StartTime != "" {
			item.StartTime = special.StartTime
		}
	}
	return item
}

func freeItem(day int, start time.Time) domain.ScheduleItem {
	return domain.ScheduleItem{
		Day:  day,
		Date: domain.DayDate(start, day),
		Type: domain.ScheduleTour,
		Name: FreeDayName,
		Free: true,
	}
}

// SlotTime returns the start time of the slot-th tour on a day. Arrival day
// tours begin mid-afternoon.
func SlotTime(arrival bool, slot int) string {
	hour := tourFirstHour + tourGapHours*slot
	if arrival {
		hour = arrivalFirstHour + arrivalGapHours*slot
	}
	if hour > lastStartHour {
		hour = lastStartHour
	}
	return fmt.Sprintf("%02d:00", hour)
}
