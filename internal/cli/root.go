package cli

import (
	"github.com/alexanderramin/farmtrip/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Catalog   service.CatalogService
	Recommend service.RecommendService
	Schedules service.ScheduleService
	Calendars service.CalendarService

	// IsInteractive reports whether stdin is a terminal. nil means never,
	// which keeps pickers and the pager out of tests and pipes.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "farmtrip" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "farmtrip",
		Short: "Farm stay and sightseeing itinerary planner for 전북",
		Long: `farmtrip recommends farms and attractions in a 전북 region and builds a
multi-day itinerary with one farm-work block and sightseeing days.

The trip length and start are read from a Korean request such as
"10월에 김제에서 열흘 동안 일하고 싶어".`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newCatalogCmd(app),
		newRegionsCmd(app),
		newRecommendCmd(app),
		newScheduleCmd(app),
		newReviseCmd(app),
		newShowCmd(app),
		newListCmd(app),
		newHistoryCmd(app),
		newCalendarCmd(app),
	)

	return root
}
