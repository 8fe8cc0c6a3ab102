package scheduler

import (
	"strings"

	"github.com/alexanderramin/farmtrip/internal/domain"
)

// FilterFacilities drops catalog entries that are facilities rather than
// attractions (offices, parking lots, ...), matched by name keyword.
func FilterFacilities(candidates []domain.Attraction, avoid []string) (kept []domain.Attraction, dropped int) {
	kept = make([]domain.Attraction, 0, len(candidates))
	for _, c := range candidates {
		if containsAny(c.Name, avoid) {
			dropped++
			continue
		}
		kept = append(kept, c)
	}
	return kept, dropped
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(s, w) {
			return true
		}
	}
	return false
}
