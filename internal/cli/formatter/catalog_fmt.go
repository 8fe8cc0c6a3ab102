package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/alexanderramin/farmtrip/internal/repository"
)

// FormatRegions lists every supported region with its catalog counts.
// Regions with nothing imported are dimmed.
func FormatRegions(names []string, counts []repository.RegionCount) string {
	byRegion := make(map[string]repository.RegionCount, len(counts))
	for _, c := range counts {
		byRegion[c.Region] = c
	}
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		c := byRegion[name]
		if c.Farms == 0 && c.Attractions == 0 {
			rows = append(rows, []string{Dim(name), Dim("0"), Dim("0")})
			continue
		}
		rows = append(rows, []string{Bold(name), fmt.Sprintf("%d", c.Farms), fmt.Sprintf("%d", c.Attractions)})
	}
	return RenderTable([]string{"REGION", "FARMS", "ATTRACTIONS"}, rows)
}

func FormatFarmList(farms []domain.Farm) string {
	rows := make([][]string, 0, len(farms))
	for _, f := range farms {
		rows = append(rows, []string{
			Bold(f.Name),
			Truncate(f.Address, 28),
			JoinTags(f.Tags),
			f.WorkTime(),
			Dim(f.ID),
		})
	}
	return RenderTable([]string{"FARM", "ADDRESS", "TAGS", "HOURS", "ID"}, rows)
}

func FormatAttractionList(attractions []domain.Attraction) string {
	rows := make([][]string, 0, len(attractions))
	for _, a := range attractions {
		rows = append(rows, []string{
			Bold(a.Name),
			Truncate(a.Address, 28),
			JoinTags(a.LandscapeKeywords),
			JoinTags(a.StyleKeywords),
			Dim(a.ID),
		})
	}
	return RenderTable([]string{"ATTRACTION", "ADDRESS", "LANDSCAPE", "STYLE", "ID"}, rows)
}

// FormatImportResult renders the outcome of a catalog import.
func FormatImportResult(farms, attractions int, regions []string) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("Catalog imported.") + "\n\n")
	b.WriteString(fmt.Sprintf("  %s  %d farms, %d attractions\n", StyleDim.Render("CONTENT"), farms, attractions))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("REGIONS"), JoinTags(regions)))
	return RenderBox("", b.String())
}

// FormatValidationErrors renders validation errors in a styled list.
func FormatValidationErrors(errs []error) string {
	var b strings.Builder
	b.WriteString(StyleRed.Render(fmt.Sprintf("Validation failed (%d errors):", len(errs))))
	b.WriteString("\n")
	for _, e := range errs {
		b.WriteString(StyleRed.Render("  - ") + e.Error() + "\n")
	}
	return b.String()
}
