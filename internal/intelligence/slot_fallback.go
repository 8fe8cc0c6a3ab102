package intelligence

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/farmtrip/internal/config"
	"github.com/alexanderramin/farmtrip/internal/region"
	"github.com/alexanderramin/farmtrip/internal/scheduler"
)

var monthMentionRe = regexp.MustCompile(`(\d{1,2})\s*월`)

// RuleSlotExtractor fills slots deterministically from vocabulary tables.
// It runs whenever the language model is disabled or fails.
type RuleSlotExtractor struct {
	durations  *scheduler.DurationExtractor
	seasons    []config.WordEntry
	activities []string
	tags       *scheduler.TagCanonicalizer
	landscapes []string
	styles     []string
}

func NewRuleSlotExtractor(vocab config.Vocabulary) *RuleSlotExtractor {
	r := &RuleSlotExtractor{
		durations:  scheduler.NewDurationExtractor(vocab.Numerals),
		seasons:    config.SortedWords(vocab.Seasons),
		activities: vocab.Activities,
		tags:       scheduler.NewTagCanonicalizer(vocab.Synonyms),
	}
	// Synonym group heads double as the known landscape and style tags.
	for _, group := range vocab.Synonyms {
		if len(group) == 0 {
			continue
		}
		switch group[0] {
		case "바다", "산", "계곡", "호수":
			r.landscapes = append(r.landscapes, group...)
		default:
			r.styles = append(r.styles, group...)
		}
	}
	return r
}

// Extract never fails; unknown slots stay empty. Rule output is fully
// trusted, so Confidence is 1.
func (r *RuleSlotExtractor) Extract(text string) ParsedSlots {
	slots := ParsedSlots{Confidence: 1}

	if name, ok := region.ExtractFromText(text); ok {
		slots.Region = name
	}
	if m, ok := r.durations.Extract(text); ok {
		days := m.Days
		slots.DurationDays = &days
	}
	if month, ok := r.month(text); ok {
		slots.StartMonth = &month
	}
	for _, a := range r.activities {
		if strings.Contains(text, a) {
			slots.ActivityTypes = append(slots.ActivityTypes, a)
		}
	}
	slots.Landscapes = r.mentioned(text, r.landscapes)
	slots.TravelStyles = r.mentioned(text, r.styles)
	return slots
}

func (r *RuleSlotExtractor) month(text string) (int, bool) {
	if sub := monthMentionRe.FindStringSubmatch(text); sub != nil {
		var m int
		for _, c := range sub[1] {
			m = m*10 + int(c-'0')
		}
		if m >= 1 && m <= 12 {
			return m, true
		}
	}
	for _, s := range r.seasons {
		if strings.Contains(text, s.Word) {
			return s.Value, true
		}
	}
	return 0, false
}

// mentioned returns the canonical tags of words found in text, deduplicated
// in first-seen order.
func (r *RuleSlotExtractor) mentioned(text string, words []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, w := range words {
		// Single-syllable words ("산") hide inside place names like 군산.
		if utf8.RuneCountInString(w) < 2 || !strings.Contains(text, w) {
			continue
		}
		c := r.tags.Canonical(w)
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
