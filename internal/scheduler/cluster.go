package scheduler

import (
	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/alexanderramin/farmtrip/internal/region"
)

// ClusterByLocality groups attractions so that those sharing a city, and
// within it a district, sit next to each other. Groups appear in order of
// first occurrence and members keep their input order, so ranking is
// preserved as far as grouping allows.
func ClusterByLocality(attractions []domain.Attraction) []domain.Attraction {
	if len(attractions) < 3 {
		return append([]domain.Attraction(nil), attractions...)
	}

	type cityGroup struct {
		city      string
		districts []string
		members   map[string][]domain.Attraction
	}
	var cities []*cityGroup
	byCity := make(map[string]*cityGroup)

	for _, a := range attractions {
		loc := region.ParseLocality(a.Address)
		g, ok := byCity[loc.City]
		if !ok {
			g = &cityGroup{city: loc.City, members: make(map[string][]domain.Attraction)}
			byCity[loc.City] = g
			cities = append(cities, g)
		}
		if _, seen := g.members[loc.District]; !seen {
			g.districts = append(g.districts, loc.District)
		}
		g.members[loc.District] = append(g.members[loc.District], a)
	}

	out := make([]domain.Attraction, 0, len(attractions))
	for _, g := range cities {
		for _, d := range g.districts {
			out = append(out, g.members[d]...)
		}
	}
	return out
}
