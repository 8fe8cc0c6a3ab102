package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/farmtrip/internal/domain"
)

// FormatCalendar renders a month -> day -> events calendar in date order.
// cached marks a calendar served from the memo cache.
func FormatCalendar(months map[string]map[int][]domain.CalendarEvent, cached bool) string {
	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, month := range keys {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(month))
		b.WriteString("\n")

		days := make([]int, 0, len(months[month]))
		for d := range months[month] {
			days = append(days, d)
		}
		sort.Ints(days)
		for _, d := range days {
			for j, ev := range months[month][d] {
				dayCol := "   "
				if j == 0 {
					dayCol = fmt.Sprintf("%2d.", d)
				}
				b.WriteString(fmt.Sprintf("  %s  %s  %s  %s  %s\n",
					StyleBold.Render(dayCol),
					Dim(eventClock(ev.DateTime)),
					TypeBadge(ev.Type),
					ev.Activity,
					Dim(fmt.Sprintf("(day %d)", ev.Day)),
				))
			}
		}
	}
	if len(keys) == 0 {
		b.WriteString(Dim("No events.") + "\n")
	}
	if cached {
		b.WriteString("\n" + Dim("(cached)") + "\n")
	}
	return b.String()
}

// eventClock returns the "3:00 pm" part of a calendar date-time.
func eventClock(dateTime string) string {
	if i := strings.IndexByte(dateTime, ' '); i >= 0 {
		return fmt.Sprintf("%8s", dateTime[i+1:])
	}
	return dateTime
}
