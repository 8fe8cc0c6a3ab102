package scheduler

import (
	"fmt"
	"time"

	"github.com/alexanderramin/farmtrip/internal/domain"
)

const (
	titleFarmPeriod = "농가 체험"
	titleArrival    = "도착 및 관광"
	titleTour       = "관광지 투어"
	titleWrapUp     = "마무리 관광"
)

// GroupSchedule collapses the farm block into a single period entry and
// emits one entry per remaining day, in day order.
func GroupSchedule(it *domain.Itinerary) []domain.GroupEntry {
	farmStart, farmEnd, hasFarm := it.FarmRange()
	var groups []domain.GroupEntry

	for day := 1; day <= it.TotalDays; day++ {
		if hasFarm && day >= farmStart && day <= farmEnd {
			if day == farmStart {
				groups = append(groups, farmPeriod(it, farmStart, farmEnd))
			}
			continue
		}
		items := it.ItemsOn(day)
		if len(items) == 0 {
			continue
		}
		entry := domain.GroupEntry{
			Kind:         domain.GroupTourDay,
			StartDay:     day,
			EndDay:       day,
			Dates:        []time.Time{items[0].Date},
			DurationDays: 1,
			Items:        items,
		}
		switch {
		case len(items) == 1 && items[0].Free:
			entry.Kind = domain.GroupFreeDay
			entry.Title = FreeDayName
		case day == 1:
			entry.Title = titleArrival
		case day == it.TotalDays:
			entry.Title = titleWrapUp
		default:
			entry.Title = titleTour
		}
		entry.Description = fmt.Sprintf("Day %d: %s", day, entry.Title)
		groups = append(groups, entry)
	}
	return groups
}

func farmPeriod(it *domain.Itinerary, start, end int) domain.GroupEntry {
	entry := domain.GroupEntry{
		Kind:         domain.GroupFarmPeriod,
		Title:        titleFarmPeriod,
		StartDay:     start,
		EndDay:       end,
		DurationDays: end - start + 1,
		FarmName:     it.Farm.Name,
		FarmAddress:  it.Farm.Address,
		WorkTime:     it.Farm.WorkTime(),
	}
	for day := start; day <= end; day++ {
		entry.Dates = append(entry.Dates, domain.DayDate(it.StartDate, day))
		entry.Items = append(entry.Items, it.ItemsOn(day)...)
	}
	if start == end {
		entry.Description = fmt.Sprintf("Day %d: %s 농가 일정", start, it.Farm.Name)
	} else {
		entry.Description = fmt.Sprintf("Day %d-%d: %s 농가 일정", start, end, it.Farm.Name)
	}
	return entry
}
