package scheduler

import (
	"time"

	"github.com/alexanderramin/farmtrip/internal/app"
	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/alexanderramin/farmtrip/internal/region"
)

// Reviser applies natural-language feedback to a single itinerary day.
type Reviser struct {
	parser *FeedbackParser
}

func NewReviser(parser *FeedbackParser) *Reviser {
	return &Reviser{parser: parser}
}

// Revise returns a new version of it with only the referenced day changed.
// The input is never modified. pool is the ranked candidate list used for
// replacements; candidates already on the itinerary are skipped.
func (r *Reviser) Revise(it *domain.Itinerary, feedback string, pool []ScoredAttraction, now time.Time) (*domain.Itinerary, error) {
	target, ok := r.parser.Parse(feedback, it.TotalDays)
	if !ok {
		return nil, app.NewScheduleError(app.ErrFeedbackTargetInvalid, "feedback does not name a day (e.g. 첫째날, 2일차, Day 3)")
	}
	if target.Day < 1 || target.Day > it.TotalDays {
		return nil, app.NewScheduleError(app.ErrFeedbackTargetInvalid, "day %d is outside the %d-day itinerary", target.Day, it.TotalDays)
	}
	if t, _ := it.DayType(target.Day); t == domain.ScheduleFarm {
		return nil, app.NewScheduleError(app.ErrFeedbackTargetInvalid, "day %d is a farm day and cannot be changed", target.Day)
	}

	out := it.Clone()
	switch target.Action {
	case FeedbackRetime:
		retimeDay(out, target.Day, target.StartTime)
	default:
		if err := replaceDay(out, target.Day, pool); err != nil {
			return nil, err
		}
	}

	out.Version = it.Version + 1
	out.UpdatedAt = now
	out.SortItems()
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// retimeDay moves the first item of the day to the new start time.
func retimeDay(it *domain.Itinerary, day int, startTime string) {
	for i := range it.Items {
		if it.Items[i].Day == day {
			it.Items[i].StartTime = startTime
			return
		}
	}
}

// replaceDay swaps the day's items for the best unused candidates, preferring
// candidates near what the day already visits.
func replaceDay(it *domain.Itinerary, day int, pool []ScoredAttraction) error {
	used := it.UsedSourceIDs()
	dayItems := it.ItemsOn(day)

	var anchor region.Locality
	for _, item := range dayItems {
		if !item.Free && item.Address != "" {
			anchor = region.ParseLocality(item.Address)
			break
		}
	}
	if anchor.IsZero() {
		anchor = region.ParseLocality(it.Farm.Address)
	}

	var alternatives []domain.Attraction
	for _, c := range PreferLocality(pool, anchor) {
		if c.Attraction.ID == "" || used[c.Attraction.ID] {
			continue
		}
		alternatives = append(alternatives, c.Attraction)
	}
	if len(alternatives) == 0 {
		return app.NewScheduleError(app.ErrNoCandidates, "no alternative attractions left for day %d", day)
	}

	slot := 0
	for i := range it.Items {
		item := &it.Items[i]
		if item.Day != day || slot >= len(alternatives) {
			continue
		}
		a := alternatives[slot]
		startTime := item.StartTime
		if startTime == "" {
			startTime = SlotTime(day == 1, slot)
		}
		*item = domain.ScheduleItem{
			Day:       day,
			Date:      item.Date,
			Type:      domain.ScheduleTour,
			Name:      a.Name,
			StartTime: startTime,
			Address:   a.Address,
			SourceID:  a.ID,
		}
		slot++
	}
	return nil
}
