package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/farmtrip/internal/app"
	"github.com/alexanderramin/farmtrip/internal/cli/formatter"
	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// farmtripHuhTheme returns a huh theme matching the Gruvbox formatter palette.
func farmtripHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[✓] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// tripSelection is what the picker fills in.
type tripSelection struct {
	FarmID  string
	TourIDs []string
}

// pickTrip ranks the region's catalog for the profile and lets the user
// choose one farm and any number of attractions.
func pickTrip(ctx context.Context, a *App, regionName string, profile domain.PreferenceProfile) (tripSelection, error) {
	req := app.NewRecommendRequest(regionName, profile)
	req.FarmLimit, req.TourLimit = 0, 0
	rec, err := a.Recommend.Recommend(ctx, req)
	if err != nil {
		return tripSelection{}, err
	}
	if len(rec.Farms) == 0 {
		return tripSelection{}, app.NewScheduleError(app.ErrNoFarmSelected, "no farms are listed for %s", rec.Region)
	}

	var sel tripSelection
	if err := tripPickerForm(rec, &sel).RunWithContext(ctx); err != nil {
		return tripSelection{}, fmt.Errorf("trip picker: %w", err)
	}
	return sel, nil
}

func tripPickerForm(rec *app.RecommendResponse, sel *tripSelection) *huh.Form {
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("농가 선택 · " + rec.Region).
				Description("Farms are ranked by how well they match your preferred work.").
				Options(farmOptions(rec.Farms)...).
				Value(&sel.FarmID),
		),
	}
	if len(rec.Tours) > 0 {
		groups = append(groups, huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("관광지 선택").
				Description("Pick the attractions to visit; leave empty for free days.").
				Options(tourOptions(rec.Tours)...).
				Value(&sel.TourIDs),
		))
	}
	return huh.NewForm(groups...).WithTheme(farmtripHuhTheme()).WithShowHelp(false)
}

func farmOptions(farms []app.RankedFarm) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(farms))
	for _, f := range farms {
		label := fmt.Sprintf("%s  (%s)", f.Farm.Name, f.Farm.WorkTime())
		if len(f.Farm.Tags) > 0 {
			label += "  " + formatter.JoinTags(f.Farm.Tags)
		}
		opts = append(opts, huh.NewOption(label, f.Farm.ID))
	}
	return opts
}

func tourOptions(tours []app.RankedAttraction) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(tours))
	for _, t := range tours {
		label := t.Attraction.Name
		if t.Score > 0 {
			label = fmt.Sprintf("%s  ★%.0f", label, t.Score)
		}
		opts = append(opts, huh.NewOption(label, t.Attraction.ID))
	}
	return opts
}
