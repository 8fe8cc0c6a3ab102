package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/farmtrip/internal/app"
	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/alexanderramin/farmtrip/internal/repository"
)

// FormatItinerary renders a scheduled trip: a header box with how the
// request was resolved, the day-by-day plan, the grouped overview and any
// warnings.
func FormatItinerary(resp *app.ScheduleResponse) string {
	it := resp.Itinerary
	var b strings.Builder

	b.WriteString(RenderBox("ITINERARY", itineraryHeader(resp)))
	b.WriteString("\n\n")

	b.WriteString(Header("Schedule"))
	b.WriteString("\n")
	for day := 1; day <= it.TotalDays; day++ {
		items := it.ItemsOn(day)
		for i, item := range items {
			dayCol := "      "
			if i == 0 {
				dayCol = fmt.Sprintf("Day %-2d", day)
			}
			b.WriteString(fmt.Sprintf("  %s  %s  %s  %s  %s\n",
				StyleBold.Render(dayCol),
				Dim(item.DateLabel()),
				TypeBadge(item.Type),
				timeRange(item),
				itemName(item),
			))
			if item.Address != "" && !item.Free {
				b.WriteString(fmt.Sprintf("  %s  %s\n", strings.Repeat(" ", 6), Dim(item.Address)))
			}
		}
	}

	if len(resp.Groups) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Overview"))
		b.WriteString("\n")
		for _, g := range resp.Groups {
			b.WriteString("  " + formatGroup(g) + "\n")
		}
	}

	s := it.Summary()
	b.WriteString(fmt.Sprintf("\n  %s\n", Dim(fmt.Sprintf("%s · 총 %d일 · 농가 %d일 · 관광 %d일 · v%d",
		s.Region, s.Duration, s.FarmDaysCount, s.TourDaysCount, it.Version))))

	warnings := append(append([]string(nil), it.Warnings...), resp.Warnings...)
	if len(warnings) > 0 {
		b.WriteString("\n")
		for _, w := range warnings {
			b.WriteString("  " + StyleYellow.Render("! "+w) + "\n")
		}
	}
	return b.String()
}

func itineraryHeader(resp *app.ScheduleResponse) string {
	it := resp.Itinerary
	label := func(s string) string { return StyleDim.Render(fmt.Sprintf("%-8s", s)) }

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", label("ID"), it.ID))
	b.WriteString(fmt.Sprintf("%s  %s\n", label("REGION"), Bold(it.Region)))
	b.WriteString(fmt.Sprintf("%s  %s\n", label("FARM"), it.Farm.Name))
	b.WriteString(fmt.Sprintf("%s  %s %s  %s\n", label("START"),
		it.StartDate.Format("2006-01-02"), Dim(domain.KoreanDateLabel(it.StartDate)), ProvenanceBadge(resp.Start.Provenance)))
	b.WriteString(fmt.Sprintf("%s  %d일  %s", label("DAYS"), it.TotalDays, ProvenanceBadge(resp.Duration.Provenance)))
	if resp.SpecialEvent != nil {
		b.WriteString(fmt.Sprintf("\n%s  %s", label("EVENT"), StylePurple.Render(resp.SpecialEvent.Name)))
	}
	if resp.UsedDefault {
		b.WriteString("\n\n" + StyleYellow.Render("Some values were filled in from defaults."))
	}
	return b.String()
}

func timeRange(item domain.ScheduleItem) string {
	if item.EndTime != "" {
		return item.StartTime + "-" + item.EndTime
	}
	return fmt.Sprintf("%-11s", item.StartTime)
}

func itemName(item domain.ScheduleItem) string {
	switch {
	case item.Free:
		return Dim(item.Name)
	case item.Special:
		return StylePurple.Render("★ " + item.Name)
	default:
		return StyleFg.Render(item.Name)
	}
}

func formatGroup(g domain.GroupEntry) string {
	days := fmt.Sprintf("Day %d", g.StartDay)
	if g.EndDay != g.StartDay {
		days = fmt.Sprintf("Day %d-%d", g.StartDay, g.EndDay)
	}
	switch g.Kind {
	case domain.GroupFarmPeriod:
		return fmt.Sprintf("%s  %s  %s %s  %s",
			StyleBold.Render(fmt.Sprintf("%-9s", days)),
			StyleGreen.Render(g.Title),
			g.FarmName,
			Dim("("+g.WorkTime+")"),
			Dim(fmt.Sprintf("%d일", g.DurationDays)))
	case domain.GroupFreeDay:
		return fmt.Sprintf("%s  %s", StyleBold.Render(fmt.Sprintf("%-9s", days)), Dim(g.Title))
	default:
		names := make([]string, 0, len(g.Items))
		for _, item := range g.Items {
			names = append(names, item.Name)
		}
		return fmt.Sprintf("%s  %s  %s",
			StyleBold.Render(fmt.Sprintf("%-9s", days)),
			StyleBlue.Render(g.Title),
			strings.Join(names, " → "))
	}
}

// FormatItineraryList renders stored itineraries, newest first.
func FormatItineraryList(its []*domain.Itinerary) string {
	headers := []string{"ID", "REGION", "FARM", "START", "DAYS", "VER", "UPDATED"}
	rows := make([][]string, 0, len(its))
	for _, it := range its {
		rows = append(rows, []string{
			TruncID(it.ID),
			it.Region,
			Truncate(it.Farm.Name, 16),
			it.StartDate.Format("2006-01-02"),
			fmt.Sprintf("%d", it.TotalDays),
			fmt.Sprintf("v%d", it.Version),
			HumanTimestamp(it.UpdatedAt),
		})
	}
	return RenderTable(headers, rows)
}

// FormatRevisionHistory renders the versions of one itinerary with the
// feedback that produced each.
func FormatRevisionHistory(revs []repository.Revision) string {
	return formatRevisionHistoryAt(revs, time.Now())
}

func formatRevisionHistoryAt(revs []repository.Revision, now time.Time) string {
	headers := []string{"VER", "WHEN", "FEEDBACK"}
	rows := make([][]string, 0, len(revs))
	for _, r := range revs {
		feedback := r.Feedback
		if feedback == "" {
			feedback = Dim("(generated)")
		}
		rows = append(rows, []string{
			fmt.Sprintf("v%d", r.Version),
			HumanTimestampFrom(r.CreatedAt, now),
			feedback,
		})
	}
	return RenderTable(headers, rows)
}
