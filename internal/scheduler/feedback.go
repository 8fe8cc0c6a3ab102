package scheduler

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alexanderramin/farmtrip/internal/config"
)

type FeedbackAction string

const (
	FeedbackReplace FeedbackAction = "replace"
	FeedbackRetime  FeedbackAction = "retime"
)

var (
	lastDayRe     = regexp.MustCompile(`마지막\s*날`)
	englishDayRe  = regexp.MustCompile(`(?i)\bday\s*(\d+)`)
	numberedDayRe = regexp.MustCompile(`(\d+)\s*일\s*(?:차|째)`)
	clockRe       = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	koreanHourRe  = regexp.MustCompile(`(오전|오후)?\s*(\d{1,2})시(?:\s*(\d{1,2})\s*분|\s*반)?`)
)

// hourParticles may follow an attached "N시" and still leave it a clock time,
// as in "3시로" or "9시에". Any other Hangul right after 시 makes a word
// such as 시간 or 시장.
var hourParticles = []string{"로", "으로", "에", "부터", "까지", "쯤", "경", "정각", "이후", "전", "후"}

// FeedbackTarget is what a feedback sentence asks to change.
type FeedbackTarget struct {
	Day       int
	Action    FeedbackAction
	StartTime string
}

// FeedbackParser reads day references ("첫째날", "3일차", "Day 2",
// "마지막 날") and optional times out of revision feedback.
type FeedbackParser struct {
	ordinals []config.WordEntry
}

func NewFeedbackParser(ordinals map[string]int) *FeedbackParser {
	return &FeedbackParser{ordinals: config.SortedWords(ordinals)}
}

// Parse returns the targeted day and action. ok is false when the text names
// no day. The day is not range-checked here.
func (p *FeedbackParser) Parse(text string, totalDays int) (FeedbackTarget, bool) {
	day, ok := p.parseDay(text, totalDays)
	if !ok {
		return FeedbackTarget{}, false
	}
	target := FeedbackTarget{Day: day, Action: FeedbackReplace}
	if t, ok := parseTime(stripDayRefs(text)); ok {
		target.Action = FeedbackRetime
		target.StartTime = t
	}
	return target, true
}

func (p *FeedbackParser) parseDay(text string, totalDays int) (int, bool) {
	if lastDayRe.MatchString(text) {
		return totalDays, true
	}
	if sub := englishDayRe.FindStringSubmatch(text); sub != nil {
		return atoi(sub[1]), true
	}
	if sub := numberedDayRe.FindStringSubmatch(text); sub != nil {
		return atoi(sub[1]), true
	}
	compact := strings.Join(strings.Fields(text), "")
	for _, w := range p.ordinals {
		idx := strings.Index(compact, w.Word)
		for idx >= 0 {
			if strings.HasPrefix(compact[idx+len(w.Word):], "날") {
				return w.Value, true
			}
			next := strings.Index(compact[idx+len(w.Word):], w.Word)
			if next < 0 {
				break
			}
			idx += len(w.Word) + next
		}
	}
	return 0, false
}

// stripDayRefs blanks out "Day N" and "N일차" so their digits are not read
// as an hour.
func stripDayRefs(text string) string {
	text = englishDayRe.ReplaceAllString(text, " ")
	return numberedDayRe.ReplaceAllString(text, " ")
}

func isClockSuffix(rest string) bool {
	r, _ := utf8.DecodeRuneInString(rest)
	if !unicode.Is(unicode.Hangul, r) {
		return true
	}
	for _, p := range hourParticles {
		if strings.HasPrefix(rest, p) {
			return true
		}
	}
	return false
}

func parseTime(text string) (string, bool) {
	if sub := clockRe.FindStringSubmatch(text); sub != nil {
		if h, m, ok := ParseClock(sub[0]); ok {
			return FormatClock(h, m), true
		}
	}
	for _, loc := range koreanHourRe.FindAllStringSubmatchIndex(text, -1) {
		if !isClockSuffix(text[loc[1]:]) {
			continue
		}
		match := text[loc[0]:loc[1]]
		group := func(n int) string {
			if loc[2*n] < 0 {
				return ""
			}
			return text[loc[2*n]:loc[2*n+1]]
		}
		hour := atoi(group(2))
		minute := 0
		switch {
		case group(3) != "":
			minute = atoi(group(3))
		case strings.HasSuffix(match, "반"):
			minute = 30
		}
		switch {
		case group(1) == "오후" && hour < 12:
			hour += 12
		case group(1) == "오전" && hour == 12:
			hour = 0
		}
		if hour > 23 || minute > 59 {
			return "", false
		}
		return FormatClock(hour, minute), true
	}
	return "", false
}
