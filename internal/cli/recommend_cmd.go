package cli

import (
	"fmt"

	"github.com/alexanderramin/farmtrip/internal/app"
	"github.com/alexanderramin/farmtrip/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRecommendCmd(a *App) *cobra.Command {
	var regionName string
	var farmLimit, tourLimit int
	var prefs profileFlags

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank a region's farms and attractions for your preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := prefs.profile()
			if err != nil {
				return err
			}
			req := app.NewRecommendRequest(regionName, profile)
			if cmd.Flags().Changed("farms") {
				req.FarmLimit = farmLimit
			}
			if cmd.Flags().Changed("tours") {
				req.TourLimit = tourLimit
			}

			resp, err := a.Recommend.Recommend(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecommendation(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&regionName, "region", "", "Region name (e.g. 김제)")
	cmd.Flags().IntVar(&farmLimit, "farms", 5, "Maximum farms to show (0 for all)")
	cmd.Flags().IntVar(&tourLimit, "tours", 10, "Maximum attractions to show (0 for all)")
	prefs.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("region")

	return cmd
}
