package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TypeBadge renders the Korean schedule-type label: green for farm days,
// blue for tours.
func TypeBadge(t domain.ScheduleType) string {
	switch t {
	case domain.ScheduleFarm:
		return StyleGreen.Render(t.Label())
	case domain.ScheduleTour:
		return StyleBlue.Render(t.Label())
	default:
		return StyleDim.Render(string(t))
	}
}

// ProvenanceBadge shows whether a value came from the request or a default.
func ProvenanceBadge(p domain.Provenance) string {
	switch p {
	case domain.ProvenanceResolved:
		return StyleGreen.Render("● resolved")
	case domain.ProvenanceDefaulted:
		return StyleYellow.Render("○ defaulted")
	default:
		return StyleDim.Render("· absent")
	}
}

// ScoreStyled colors a ranking score: zero is dim.
func ScoreStyled(score float64) string {
	text := fmt.Sprintf("%.1f", score)
	if score <= 0 {
		return StyleDim.Render(text)
	}
	return StyleYellow.Render(text)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
