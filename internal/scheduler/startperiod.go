package scheduler

import (
	"regexp"
	"strings"
	"time"

	"github.com/alexanderramin/farmtrip/internal/config"
	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/alexanderramin/farmtrip/internal/region"
)

var (
	monthDayRe = regexp.MustCompile(`(\d{1,2})\s*월\s*(\d{1,2})\s*일`)
	monthRe    = regexp.MustCompile(`(\d{1,2})\s*월\s*(초순|초|중순|중|하순|말)?`)
)

const defaultMidMonthDay = 15

// StartResolution is the resolved trip start plus the special event that
// applies to the region in that month, if any.
type StartResolution struct {
	Date   domain.Slot[time.Time]
	Event  *domain.SpecialEvent
	Phrase string
}

// StartPeriodResolver turns a start-period expression into a concrete date
// relative to today.
type StartPeriodResolver struct {
	seasons []config.WordEntry
	events  []domain.SpecialEvent
}

func NewStartPeriodResolver(seasons map[string]int, events []domain.SpecialEvent) *StartPeriodResolver {
	return &StartPeriodResolver{
		seasons: config.SortedWords(seasons),
		events:  events,
	}
}

// Resolve finds the start date expressed in text. Month-level references
// resolve to the nearest occurrence that is not before today. Without any
// reference the start defaults to tomorrow.
func (r *StartPeriodResolver) Resolve(text, regionName string, today time.Time) StartResolution {
	today = dateOnly(today)

	if sub := monthDayRe.FindStringSubmatch(text); sub != nil {
		month, day := atoi(sub[1]), atoi(sub[2])
		if d, ok := nearestDate(month, day, today); ok {
			return r.resolved(d, regionName, sub[0])
		}
	}

	for _, loc := range monthRe.FindAllStringSubmatchIndex(text, -1) {
		modifier := ""
		if loc[4] >= 0 {
			modifier = text[loc[4]:loc[5]]
		}
		// "10월 말고" rules the month out rather than naming its end.
		if modifier == "말" && strings.HasPrefix(text[loc[1]:], "고") {
			continue
		}
		month := atoi(text[loc[2]:loc[3]])
		if month < 1 || month > 12 {
			continue
		}
		day := r.dayForModifier(modifier, month, regionName)
		if d, ok := nearestDate(month, day, today); ok {
			return r.resolved(d, regionName, strings.TrimSpace(text[loc[0]:loc[1]]))
		}
	}

	for _, s := range r.seasons {
		if strings.Contains(text, s.Word) {
			if d, ok := nearestDate(s.Value, 1, today); ok {
				return r.resolved(d, regionName, s.Word)
			}
		}
	}

	if d, phrase, ok := relativeStart(text, today); ok {
		return r.resolved(d, regionName, phrase)
	}

	d := today.AddDate(0, 0, 1)
	return StartResolution{
		Date:  domain.Defaulted(d),
		Event: r.EventFor(regionName, int(d.Month())),
	}
}

// ResolveMonth resolves a bare month supplied by structured extraction.
func (r *StartPeriodResolver) ResolveMonth(month int, regionName string, today time.Time) StartResolution {
	today = dateOnly(today)
	if month < 1 || month > 12 {
		d := today.AddDate(0, 0, 1)
		return StartResolution{Date: domain.Defaulted(d), Event: r.EventFor(regionName, int(d.Month()))}
	}
	d, _ := nearestDate(month, r.dayForModifier("", month, regionName), today)
	return r.resolved(d, regionName, "")
}

// EventFor returns the special event configured for the region and month.
func (r *StartPeriodResolver) EventFor(regionName string, month int) *domain.SpecialEvent {
	if regionName == "" {
		return nil
	}
	name, ok := region.Normalize(regionName)
	if !ok {
		return nil
	}
	for i := range r.events {
		e := r.events[i]
		if e.Month != month {
			continue
		}
		if evName, ok := region.Normalize(e.Region); ok && evName == name {
			return &e
		}
	}
	return nil
}

func (r *StartPeriodResolver) resolved(d time.Time, regionName, phrase string) StartResolution {
	return StartResolution{
		Date:   domain.Resolved(d),
		Event:  r.EventFor(regionName, int(d.Month())),
		Phrase: phrase,
	}
}

func (r *StartPeriodResolver) dayForModifier(modifier string, month int, regionName string) int {
	switch modifier {
	case "초", "초순":
		return 1
	case "중", "중순":
		return 15
	case "말", "하순":
		return 25
	}
	if e := r.EventFor(regionName, month); e != nil && e.AnchorDay > 0 {
		return e.AnchorDay
	}
	return defaultMidMonthDay
}

// nearestDate returns month/day in today's year, or next year when that date
// has already passed. ok is false for impossible dates such as 2월 30일.
func nearestDate(month, day int, today time.Time) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	for _, year := range []int{today.Year(), today.Year() + 1} {
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, today.Location())
		if d.Month() != time.Month(month) {
			// Feb 29 outside a leap year; try the following year.
			continue
		}
		if !d.Before(today) {
			return d, true
		}
	}
	return time.Time{}, false
}

func relativeStart(text string, today time.Time) (time.Time, string, bool) {
	compact := strings.ReplaceAll(text, " ", "")
	switch {
	case strings.Contains(compact, "다음달"):
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return first.AddDate(0, 1, 0), "다음 달", true
	case strings.Contains(compact, "다음주"):
		return today.AddDate(0, 0, 7), "다음 주", true
	case strings.Contains(compact, "주말"):
		offset := (int(time.Saturday) - int(today.Weekday()) + 7) % 7
		return today.AddDate(0, 0, offset), "주말", true
	case strings.Contains(compact, "모레"):
		return today.AddDate(0, 0, 2), "모레", true
	case strings.Contains(compact, "내일"):
		return today.AddDate(0, 0, 1), "내일", true
	}
	return time.Time{}, "", false
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
