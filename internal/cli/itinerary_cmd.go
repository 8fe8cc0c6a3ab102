package cli

import (
	"fmt"

	"github.com/alexanderramin/farmtrip/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShowCmd(a *App) *cobra.Command {
	var asJSON, pager bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a stored itinerary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveItineraryID(ctx, a, args[0])
			if err != nil {
				return err
			}
			resp, err := a.Schedules.Get(ctx, id)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp.View())
			}

			out := formatter.FormatItinerary(resp)
			if pager && a.interactive() {
				return runPager(fmt.Sprintf("%s · %s", resp.Itinerary.Region, resp.Itinerary.Farm.Name), out)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the itinerary as JSON")
	cmd.Flags().BoolVar(&pager, "pager", false, "Browse the itinerary in a scrollable pager")

	return cmd
}

func newListCmd(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored itineraries, most recently changed first",
		RunE: func(cmd *cobra.Command, args []string) error {
			its, err := a.Schedules.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(its) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No itineraries found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItineraryList(its))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum itineraries to show (0 for all)")

	return cmd
}

func newHistoryCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history ID",
		Short: "Show the revision history of an itinerary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveItineraryID(ctx, a, args[0])
			if err != nil {
				return err
			}
			revs, err := a.Schedules.History(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRevisionHistory(revs))
			return nil
		},
	}
}

func newCalendarCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "calendar ID...",
		Short: "Show itineraries as calendar events",
		Long: `Show one itinerary as a month/day calendar. With several IDs the
itineraries are merged; an activity already on a day is not added twice.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ids := make([]string, 0, len(args))
			for _, arg := range args {
				id, err := resolveItineraryID(ctx, a, arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			if len(ids) == 1 {
				resp, err := a.Calendars.Materialize(ctx, ids[0])
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), resp.Months)
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalendar(resp.Months, resp.Cached))
				return nil
			}

			cal, added, err := a.Calendars.Combine(ctx, ids...)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), cal)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalendar(cal, false))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf("%d events from %d itineraries", added, len(ids))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the calendar as JSON")

	return cmd
}
