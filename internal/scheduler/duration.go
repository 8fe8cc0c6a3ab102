package scheduler

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/farmtrip/internal/config"
	"github.com/alexanderramin/farmtrip/internal/domain"
)

var (
	calendarDateRe = regexp.MustCompile(`\d{1,2}\s*월\s*\d{1,2}\s*일`)
	dayOrdinalRe   = regexp.MustCompile(`\d+\s*일\s*(?:차|째)`)
	nightsDaysRe   = regexp.MustCompile(`(\d+)\s*박\s*(\d+)\s*일`)
	weeksRe        = regexp.MustCompile(`(\d+)\s*주`)
	daysRe         = regexp.MustCompile(`(\d+)\s*일`)
	nightsRe       = regexp.MustCompile(`(\d+)\s*박`)
)

// DurationMatch is a duration found in free text.
type DurationMatch struct {
	Days    int
	Raw     int
	Clamped bool
	Phrase  string
}

// DurationExtractor finds trip length expressions in Korean text.
type DurationExtractor struct {
	numerals []config.WordEntry
	maxDays  int
}

func NewDurationExtractor(numerals map[string]int) *DurationExtractor {
	return &DurationExtractor{
		numerals: config.SortedWords(numerals),
		maxDays:  domain.MaxTripDays,
	}
}

// Extract returns the trip length in days. Values above the maximum are
// clamped and flagged. ok is false when no expression is present; a zero
// length counts as absent.
func (e *DurationExtractor) Extract(text string) (DurationMatch, bool) {
	// Calendar dates and day ordinals ("10월 1일", "2일차") are not lengths.
	text = calendarDateRe.ReplaceAllString(text, " ")
	text = dayOrdinalRe.ReplaceAllString(text, " ")

	raw, phrase, ok := e.find(text)
	if !ok || raw <= 0 {
		return DurationMatch{}, false
	}
	m := DurationMatch{Days: raw, Raw: raw, Phrase: phrase}
	if raw > e.maxDays {
		m.Days = e.maxDays
		m.Clamped = true
	}
	return m, true
}

func (e *DurationExtractor) find(text string) (int, string, bool) {
	if sub := nightsDaysRe.FindStringSubmatch(text); sub != nil {
		return atoi(sub[2]), sub[0], true
	}
	if n, word, ok := e.findNumeral(text); ok {
		return n, word, true
	}
	if sub := weeksRe.FindStringSubmatch(text); sub != nil {
		return atoi(sub[1]) * 7, sub[0], true
	}
	if sub := daysRe.FindStringSubmatch(text); sub != nil {
		return atoi(sub[1]), sub[0], true
	}
	if sub := nightsRe.FindStringSubmatch(text); sub != nil {
		return atoi(sub[1]) + 1, sub[0], true
	}
	return 0, "", false
}

// findNumeral picks the earliest numeral word in text; at equal positions
// the longer word wins.
func (e *DurationExtractor) findNumeral(text string) (int, string, bool) {
	best := -1
	var hit config.WordEntry
	for _, w := range e.numerals {
		idx := strings.Index(text, w.Word)
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best {
			best = idx
			hit = w
		}
	}
	if best < 0 {
		return 0, "", false
	}
	return hit.Value, hit.Word, true
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
