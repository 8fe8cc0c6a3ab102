package scheduler

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// TagCanonicalizer maps free-form tags onto a canonical form so that minor
// phrasing differences ("Healing", "힐링 ", "휴식") compare equal.
type TagCanonicalizer struct {
	heads map[string]string
}

// NewTagCanonicalizer builds a canonicalizer from synonym groups. The first
// word of each group is the canonical head.
func NewTagCanonicalizer(synonyms [][]string) *TagCanonicalizer {
	c := &TagCanonicalizer{heads: make(map[string]string)}
	for _, group := range synonyms {
		if len(group) == 0 {
			continue
		}
		head := normalizeTag(group[0])
		for _, w := range group {
			n := normalizeTag(w)
			if _, taken := c.heads[n]; !taken {
				c.heads[n] = head
			}
		}
	}
	return c
}

// Canonical returns the canonical form of tag. A nil canonicalizer only
// normalizes.
func (c *TagCanonicalizer) Canonical(tag string) string {
	n := normalizeTag(tag)
	if c == nil {
		return n
	}
	if head, ok := c.heads[n]; ok {
		return head
	}
	return n
}

// CanonicalSet canonicalizes tags into a set, dropping empties.
func (c *TagCanonicalizer) CanonicalSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		if n := c.Canonical(t); n != "" {
			set[n] = true
		}
	}
	return set
}

// normalizeTag applies NFKC, case folding and strips whitespace and
// punctuation such as leading '#'.
func normalizeTag(s string) string {
	s = norm.NFKC.String(s)
	s = cases.Fold().String(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return r
	}, s)
}

// SplitKeywords splits a catalog keyword field. Catalog exports separate
// keywords with ';' and occasionally ','.
func SplitKeywords(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == ';' || r == ',' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
