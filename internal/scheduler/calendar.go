package scheduler

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/farmtrip/internal/domain"
)

// CalendarDateTimeLayout renders "10/01/2026 3:00 pm".
const CalendarDateTimeLayout = "01/02/2006 3:04 pm"

const defaultEventHour = 9

// Calendar indexes events by "yyyy-mm" and day of month.
type Calendar map[string]map[int][]domain.CalendarEvent

func NewCalendar() Calendar {
	return make(Calendar)
}

// CalendarEvents projects every item of the itinerary into a calendar event.
func CalendarEvents(it *domain.Itinerary) []domain.CalendarEvent {
	events := make([]domain.CalendarEvent, 0, len(it.Items))
	for _, item := range it.Items {
		events = append(events, domain.CalendarEvent{
			DateTime: itemDateTime(item).Format(CalendarDateTimeLayout),
			Activity: item.Name,
			Day:      item.Day,
			Type:     item.Type,
		})
	}
	return events
}

// Materialize builds a fresh calendar for the itinerary.
func Materialize(it *domain.Itinerary) Calendar {
	c := NewCalendar()
	c.Merge(it)
	return c
}

// Merge adds the itinerary's events. An event already present on the same
// date with the same activity and type is skipped, so merging twice is a
// no-op. It returns the number of events added.
func (c Calendar) Merge(it *domain.Itinerary) int {
	added := 0
	for _, item := range it.Items {
		at := itemDateTime(item)
		ev := domain.CalendarEvent{
			DateTime: at.Format(CalendarDateTimeLayout),
			Activity: item.Name,
			Day:      item.Day,
			Type:     item.Type,
		}
		if c.add(at, ev) {
			added++
		}
	}
	return added
}

func (c Calendar) add(at time.Time, ev domain.CalendarEvent) bool {
	key := at.Format("2006-01")
	days, ok := c[key]
	if !ok {
		days = make(map[int][]domain.CalendarEvent)
		c[key] = days
	}
	for _, existing := range days[at.Day()] {
		if existing.Activity == ev.Activity && existing.Type == ev.Type {
			return false
		}
	}
	days[at.Day()] = append(days[at.Day()], ev)
	return true
}

// Months returns the month keys in chronological order.
func (c Calendar) Months() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Days returns the days of a month that carry events, ascending.
func (c Calendar) Days(month string) []int {
	days := make([]int, 0, len(c[month]))
	for d := range c[month] {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Len counts all events.
func (c Calendar) Len() int {
	n := 0
	for _, days := range c {
		for _, evs := range days {
			n += len(evs)
		}
	}
	return n
}

func itemDateTime(item domain.ScheduleItem) time.Time {
	hour, minute, ok := ParseClock(item.StartTime)
	if !ok {
		hour, minute = defaultEventHour, 0
	}
	d := item.Date
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location())
}

// ParseClock parses "HH:MM".
func ParseClock(s string) (hour, minute int, ok bool) {
	h, m, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, 0, false
	}
	hour, err1 := strconv.Atoi(h)
	minute, err2 := strconv.Atoi(m)
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// FormatClock renders hour and minute as "HH:MM".
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
