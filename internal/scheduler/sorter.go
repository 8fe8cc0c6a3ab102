package scheduler

import (
	"sort"

	"github.com/alexanderramin/farmtrip/internal/region"
)

// CanonicalSort orders scored attractions deterministically:
// 1. Score: higher first
// 2. Input position: earlier first
func CanonicalSort(scored []ScoredAttraction) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Index < b.Index
	})
}

// SortFarms applies the same ordering rules to farms.
func SortFarms(scored []ScoredFarm) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Index < b.Index
	})
}

// localityRank is 0 for the same district, 1 for the same city, 2 otherwise.
func localityRank(anchor, loc region.Locality) int {
	switch {
	case anchor.SameDistrict(loc):
		return 0
	case anchor.SameCity(loc):
		return 1
	default:
		return 2
	}
}

// PreferLocality reorders candidates so those near anchor come first while
// keeping their ranked order within each proximity band.
func PreferLocality(scored []ScoredAttraction, anchor region.Locality) []ScoredAttraction {
	out := make([]ScoredAttraction, len(scored))
	copy(out, scored)
	if anchor.IsZero() {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri := localityRank(anchor, region.ParseLocality(out[i].Attraction.Address))
		rj := localityRank(anchor, region.ParseLocality(out[j].Attraction.Address))
		return ri < rj
	})
	return out
}
