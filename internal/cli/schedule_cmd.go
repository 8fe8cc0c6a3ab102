package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/farmtrip/internal/app"
	"github.com/alexanderramin/farmtrip/internal/cli/formatter"
	"github.com/alexanderramin/farmtrip/internal/region"
	"github.com/spf13/cobra"
)

func newScheduleCmd(a *App) *cobra.Command {
	var regionName, farmID, today string
	var tourIDs []string
	var noNLU, asJSON bool
	var prefs profileFlags

	cmd := &cobra.Command{
		Use:   "schedule [REQUEST...]",
		Short: "Build a multi-day itinerary from a free-text request",
		Long: `Build an itinerary around one farm and the chosen attractions.

The request text carries the trip length and start, for example
  farmtrip schedule --region 김제 --farm FARM_ID "10월에 열흘 동안 일하고 싶어"

Without --farm on an interactive terminal a picker lists the region's
ranked farms and attractions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			text := strings.TrimSpace(strings.Join(args, " "))

			profile, err := prefs.profile()
			if err != nil {
				return err
			}

			req := app.NewGenerateRequest(regionName, text)
			req.FarmID = farmID
			req.TourIDs = tourIDs
			req.Profile = profile
			req.UseNLU = !noNLU
			if today != "" {
				d, err := time.ParseInLocation("2006-01-02", today, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --today %q: %w", today, err)
				}
				req.Today = &d
			}

			if req.FarmID == "" && a.interactive() {
				pickRegion := regionName
				if pickRegion == "" {
					pickRegion, _ = region.ExtractFromText(text)
				}
				if pickRegion == "" {
					return app.NewScheduleError(app.ErrUnsupportedRegion, "pass --region or name a region in the request")
				}
				sel, err := pickTrip(ctx, a, pickRegion, profile)
				if err != nil {
					return err
				}
				req.Region = pickRegion
				req.FarmID = sel.FarmID
				req.TourIDs = append(req.TourIDs, sel.TourIDs...)
			}

			resp, err := a.Schedules.Generate(ctx, req)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp.View())
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItinerary(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&regionName, "region", "", "Region name; read from the request when omitted")
	cmd.Flags().StringVar(&farmID, "farm", "", "Farm ID (see 'catalog farms')")
	cmd.Flags().StringSliceVar(&tourIDs, "tour", nil, "Attraction ID to visit (repeatable)")
	cmd.Flags().BoolVar(&noNLU, "no-nlu", false, "Skip model-based slot extraction")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the itinerary as JSON")
	cmd.Flags().StringVar(&today, "today", "", "Resolve dates relative to this day (YYYY-MM-DD)")
	prefs.register(cmd.Flags())

	return cmd
}

func newReviseCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "revise ID FEEDBACK...",
		Short: "Change one day of an itinerary from feedback",
		Long: `Apply feedback such as "첫째날 일정을 바꿔주세요" or "2일차 오후 3시로" to one
itinerary day. Farm days cannot be changed.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveItineraryID(ctx, a, args[0])
			if err != nil {
				return err
			}
			resp, err := a.Schedules.Revise(ctx, app.NewReviseRequest(id, strings.Join(args[1:], " ")))
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp.View())
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItinerary(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the itinerary as JSON")

	return cmd
}
