package importer

import (
	"fmt"

	"github.com/alexanderramin/farmtrip/internal/region"
	"github.com/alexanderramin/farmtrip/internal/scheduler"
)

// ValidateCatalogSchema checks the catalog before conversion.
// Returns a slice of all validation errors found.
func ValidateCatalogSchema(schema *CatalogSchema) []error {
	var errs []error

	if schema.Region != "" {
		if _, ok := region.Normalize(schema.Region); !ok {
			errs = append(errs, fmt.Errorf("region: unsupported region %q", schema.Region))
		}
	}
	if len(schema.Farms) == 0 && len(schema.Attractions) == 0 {
		errs = append(errs, fmt.Errorf("catalog has no farms and no attractions"))
	}

	ids := make(map[string]string)
	for i, f := range schema.Farms {
		prefix := fmt.Sprintf("farms[%d]", i)
		errs = append(errs, validateEntry(prefix, f.Name, f.Region, schema.Region)...)
		errs = append(errs, validateWorkHours(prefix, f.WorkStart, f.WorkEnd)...)
		errs = append(errs, checkDuplicateID(prefix, f.ID, ids)...)
	}
	for i, a := range schema.Attractions {
		prefix := fmt.Sprintf("attractions[%d]", i)
		errs = append(errs, validateEntry(prefix, a.Name, a.Region, schema.Region)...)
		if a.RawScore != nil && *a.RawScore < 0 {
			errs = append(errs, fmt.Errorf("%s.raw_score must not be negative", prefix))
		}
		errs = append(errs, checkDuplicateID(prefix, a.ID, ids)...)
	}

	return errs
}

func validateEntry(prefix, name, entryRegion, defaultRegion string) []error {
	var errs []error
	if name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	}
	switch r := effectiveRegion(entryRegion, defaultRegion); {
	case r == "":
		errs = append(errs, fmt.Errorf("%s.region is required when the catalog has no default region", prefix))
	case entryRegion != "":
		if _, ok := region.Normalize(entryRegion); !ok {
			errs = append(errs, fmt.Errorf("%s.region: unsupported region %q", prefix, entryRegion))
		}
	}
	return errs
}

func validateWorkHours(prefix, start, end string) []error {
	var errs []error
	sh, sm, startOK := scheduler.ParseClock(start)
	eh, em, endOK := scheduler.ParseClock(end)
	if start != "" && !startOK {
		errs = append(errs, fmt.Errorf("%s.work_start: invalid time %q (expected HH:MM)", prefix, start))
	}
	if end != "" && !endOK {
		errs = append(errs, fmt.Errorf("%s.work_end: invalid time %q (expected HH:MM)", prefix, end))
	}
	if startOK && endOK && sh*60+sm >= eh*60+em {
		errs = append(errs, fmt.Errorf("%s: work_start %s must be before work_end %s", prefix, start, end))
	}
	return errs
}

func checkDuplicateID(prefix, id string, seen map[string]string) []error {
	if id == "" {
		return nil
	}
	if first, ok := seen[id]; ok {
		return []error{fmt.Errorf("%s.id %q duplicates %s", prefix, id, first)}
	}
	seen[id] = prefix
	return nil
}

func effectiveRegion(entry, fallback string) string {
	if entry != "" {
		return entry
	}
	return fallback
}
