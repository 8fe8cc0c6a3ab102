package domain

import (
	"fmt"
	"sort"
	"time"
)

// MaxTripDays bounds itinerary length.
const MaxTripDays = 10

const dateLayout = "2006-01-02"

var koreanWeekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// ScheduleItem is one placed activity on one itinerary day. Farm days carry
// one item each; a tour day may carry several.
type ScheduleItem struct {
	Day       int
	Date      time.Time
	Type      ScheduleType
	Name      string
	StartTime string
	EndTime   string
	Address   string
	SourceID  string
	Free      bool
	Special   bool
}

// DateLabel renders the item date as "10월 01일 (목)".
func (s ScheduleItem) DateLabel() string {
	return KoreanDateLabel(s.Date)
}

func KoreanDateLabel(t time.Time) string {
	return fmt.Sprintf("%02d월 %02d일 (%s)", int(t.Month()), t.Day(), koreanWeekdays[t.Weekday()])
}

// DayDate returns the calendar date of a 1-based itinerary day.
func DayDate(start time.Time, day int) time.Time {
	return start.AddDate(0, 0, day-1)
}

// Itinerary is a day-indexed trip plan. Items are kept sorted by day.
type Itinerary struct {
	ID             string
	Version        int
	Region         string
	StartDate      time.Time
	TotalDays      int
	Items          []ScheduleItem
	Farm           Farm
	Profile        PreferenceProfile
	DurationSource Provenance
	StartSource    Provenance
	Warnings       []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Summary struct {
	Duration      int
	FarmDaysCount int
	TourDaysCount int
	Region        string
}

// Clone returns a deep copy; revisions work on the copy so a failed revision
// never touches the original.
func (it *Itinerary) Clone() *Itinerary {
	out := *it
	out.Items = make([]ScheduleItem, len(it.Items))
	copy(out.Items, it.Items)
	out.Farm.Tags = CloneStrings(it.Farm.Tags)
	out.Profile = it.Profile.Clone()
	out.Warnings = CloneStrings(it.Warnings)
	return &out
}

// ItemsOn returns the items scheduled on day, in stored order.
func (it *Itinerary) ItemsOn(day int) []ScheduleItem {
	var out []ScheduleItem
	for _, item := range it.Items {
		if item.Day == day {
			out = append(out, item)
		}
	}
	return out
}

// DayType reports the type of a day. ok is false when the day has no items.
func (it *Itinerary) DayType(day int) (ScheduleType, bool) {
	for _, item := range it.Items {
		if item.Day == day {
			return item.Type, true
		}
	}
	return "", false
}

// FarmRange returns the first and last farm day.
func (it *Itinerary) FarmRange() (start, end int, ok bool) {
	for _, item := range it.Items {
		if item.Type != ScheduleFarm {
			continue
		}
		if !ok || item.Day < start {
			start = item.Day
		}
		if !ok || item.Day > end {
			end = item.Day
		}
		ok = true
	}
	return start, end, ok
}

// UsedSourceIDs returns the catalog ids already placed on tour days.
func (it *Itinerary) UsedSourceIDs() map[string]bool {
	used := make(map[string]bool)
	for _, item := range it.Items {
		if item.Type == ScheduleTour && item.SourceID != "" {
			used[item.SourceID] = true
		}
	}
	return used
}

func (it *Itinerary) Summary() Summary {
	farmDays := make(map[int]bool)
	allDays := make(map[int]bool)
	for _, item := range it.Items {
		allDays[item.Day] = true
		if item.Type == ScheduleFarm {
			farmDays[item.Day] = true
		}
	}
	return Summary{
		Duration:      it.TotalDays,
		FarmDaysCount: len(farmDays),
		TourDaysCount: len(allDays) - len(farmDays),
		Region:        it.Region,
	}
}

// SortItems orders items by day, keeping the in-day order stable.
func (it *Itinerary) SortItems() {
	sort.SliceStable(it.Items, func(i, j int) bool {
		return it.Items[i].Day < it.Items[j].Day
	})
}

// Validate checks the structural invariants every produced itinerary must hold.
func (it *Itinerary) Validate() error {
	if it.TotalDays < 1 || it.TotalDays > MaxTripDays {
		return fmt.Errorf("total_days %d outside 1..%d", it.TotalDays, MaxTripDays)
	}

	byDay := make(map[int][]ScheduleItem, it.TotalDays)
	prevDay := 0
	for _, item := range it.Items {
		if item.Day < 1 || item.Day > it.TotalDays {
			return fmt.Errorf("item %q on day %d outside 1..%d", item.Name, item.Day, it.TotalDays)
		}
		if item.Day < prevDay {
			return fmt.Errorf("items not sorted by day at day %d", item.Day)
		}
		prevDay = item.Day
		byDay[item.Day] = append(byDay[item.Day], item)
	}

	var farmDays []int
	var farmName, farmAddr string
	for day := 1; day <= it.TotalDays; day++ {
		items := byDay[day]
		if len(items) == 0 {
			return fmt.Errorf("day %d has no items", day)
		}
		dayType := items[0].Type
		for _, item := range items {
			if item.Type != dayType {
				return fmt.Errorf("day %d mixes %s and %s items", day, dayType, item.Type)
			}
			if !item.Date.Equal(items[0].Date) {
				return fmt.Errorf("day %d items have different dates", day)
			}
		}
		if dayType != ScheduleFarm {
			continue
		}
		if len(items) != 1 {
			return fmt.Errorf("farm day %d has %d items", day, len(items))
		}
		if len(farmDays) == 0 {
			farmName, farmAddr = items[0].Name, items[0].Address
		} else if items[0].Name != farmName || items[0].Address != farmAddr {
			return fmt.Errorf("farm day %d differs from farm block (%q)", day, farmName)
		}
		farmDays = append(farmDays, day)
	}

	if len(farmDays) == 0 {
		return fmt.Errorf("itinerary has no farm days")
	}
	for i := 1; i < len(farmDays); i++ {
		if farmDays[i] != farmDays[i-1]+1 {
			return fmt.Errorf("farm block is not contiguous between day %d and day %d", farmDays[i-1], farmDays[i])
		}
	}
	return nil
}
