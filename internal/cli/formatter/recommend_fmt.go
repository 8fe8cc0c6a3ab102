package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/farmtrip/internal/app"
)

// FormatRecommendation renders the ranked farms and attractions of a region.
func FormatRecommendation(resp *app.RecommendResponse) string {
	var b strings.Builder

	b.WriteString(Header("Farms · " + resp.Region))
	b.WriteString("\n")
	if len(resp.Farms) == 0 {
		b.WriteString(Dim("  No farms listed for this region.") + "\n")
	} else {
		rows := make([][]string, 0, len(resp.Farms))
		for _, f := range resp.Farms {
			rows = append(rows, []string{
				fmt.Sprintf("%d", f.Rank),
				Bold(f.Farm.Name),
				ScoreStyled(f.Score),
				JoinTags(f.Farm.Tags),
				Dim(f.Farm.WorkTime()),
				Dim(f.Farm.ID),
			})
		}
		b.WriteString(RenderTable([]string{"#", "FARM", "SCORE", "TAGS", "HOURS", "ID"}, rows))
	}

	b.WriteString("\n")
	b.WriteString(Header("Attractions · " + resp.Region))
	b.WriteString("\n")
	if len(resp.Tours) == 0 {
		b.WriteString(Dim("  No attractions listed for this region.") + "\n")
	} else {
		b.WriteString(FormatRankedAttractions(resp.Tours))
	}

	if resp.Filtered > 0 {
		b.WriteString("\n" + Dim(fmt.Sprintf("%d facility listing(s) skipped.", resp.Filtered)) + "\n")
	}
	return b.String()
}

// FormatRankedAttractions renders a ranked attraction table with the reasons
// behind each score.
func FormatRankedAttractions(ranked []app.RankedAttraction) string {
	rows := make([][]string, 0, len(ranked))
	for _, r := range ranked {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.Rank),
			Bold(r.Attraction.Name),
			ScoreStyled(r.Score),
			reasonList(r.Reasons),
			Dim(r.Attraction.ID),
		})
	}
	return RenderTable([]string{"#", "ATTRACTION", "SCORE", "WHY", "ID"}, rows)
}

func reasonList(reasons []app.ScoreReason) string {
	if len(reasons) == 0 {
		return Dim("--")
	}
	parts := make([]string, 0, len(reasons))
	for _, r := range reasons {
		parts = append(parts, r.Message)
	}
	return strings.Join(parts, "; ")
}
