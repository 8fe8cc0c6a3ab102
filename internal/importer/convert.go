package importer

import (
	"fmt"

	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/alexanderramin/farmtrip/internal/region"
	"github.com/google/uuid"
)

// catalogNamespace seeds generated ids so re-importing the same file upserts
// the same rows.
var catalogNamespace = uuid.MustParse("6f1c2a8e-4d3b-5e7f-9a10-2b3c4d5e6f70")

// Catalog is a converted import ready for persistence.
type Catalog struct {
	Farms       []*domain.Farm
	Attractions []*domain.Attraction
}

// Convert transforms a validated CatalogSchema into domain objects ready for persistence.
// Call ValidateCatalogSchema first; Convert assumes the schema is valid.
func Convert(schema *CatalogSchema) (*Catalog, error) {
	out := &Catalog{
		Farms:       make([]*domain.Farm, 0, len(schema.Farms)),
		Attractions: make([]*domain.Attraction, 0, len(schema.Attractions)),
	}

	for _, f := range schema.Farms {
		regionName, err := canonicalRegion(f.Region, schema.Region)
		if err != nil {
			return nil, fmt.Errorf("farm %q: %w", f.Name, err)
		}
		out.Farms = append(out.Farms, &domain.Farm{
			ID:        entryID("farm", f.ID, regionName, f.Name, f.Address),
			Name:      f.Name,
			Address:   f.Address,
			Region:    regionName,
			Tags:      []string(f.Tags),
			WorkStart: domain.CoalesceStr(f.WorkStart, domain.DefaultWorkStart),
			WorkEnd:   domain.CoalesceStr(f.WorkEnd, domain.DefaultWorkEnd),
		})
	}

	for _, a := range schema.Attractions {
		regionName, err := canonicalRegion(a.Region, schema.Region)
		if err != nil {
			return nil, fmt.Errorf("attraction %q: %w", a.Name, err)
		}
		out.Attractions = append(out.Attractions, &domain.Attraction{
			ID:                entryID("attraction", a.ID, regionName, a.Name, a.Address),
			Name:              a.Name,
			Address:           a.Address,
			Region:            regionName,
			LandscapeKeywords: []string(a.LandscapeKeywords),
			StyleKeywords:     []string(a.StyleKeywords),
			RawScore:          a.RawScore,
		})
	}

	return out, nil
}

func canonicalRegion(entry, fallback string) (string, error) {
	raw := effectiveRegion(entry, fallback)
	name, ok := region.Normalize(raw)
	if !ok {
		return "", fmt.Errorf("unsupported region %q", raw)
	}
	return name, nil
}

func entryID(kind, explicit, regionName, name, address string) string {
	if explicit != "" {
		return explicit
	}
	return uuid.NewSHA1(catalogNamespace, []byte(kind+"|"+regionName+"|"+name+"|"+address)).String()
}
