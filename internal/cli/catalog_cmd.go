package cli

import (
	"fmt"

	"github.com/alexanderramin/farmtrip/internal/cli/formatter"
	"github.com/alexanderramin/farmtrip/internal/importer"
	"github.com/alexanderramin/farmtrip/internal/region"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the farm and attraction catalog",
	}

	cmd.AddCommand(
		newCatalogImportCmd(app),
		newCatalogValidateCmd(),
		newCatalogFarmsCmd(app),
		newCatalogAttractionsCmd(app),
	)

	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import farms and attractions from a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Catalog.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatImportResult(result.Farms, result.Attractions, result.Regions))
			return nil
		},
	}
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a catalog file without importing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadCatalogSchema(args[0])
			if err != nil {
				return err
			}
			if errs := importer.ValidateCatalogSchema(schema); len(errs) > 0 {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatValidationErrors(errs))
				return fmt.Errorf("%s: %d validation error(s)", args[0], len(errs))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d farms, %d attractions\n",
				args[0], len(schema.Farms), len(schema.Attractions))
			return nil
		},
	}
}

func newCatalogFarmsCmd(app *App) *cobra.Command {
	var regionName string

	cmd := &cobra.Command{
		Use:   "farms",
		Short: "List farms of a region",
		RunE: func(cmd *cobra.Command, args []string) error {
			farms, err := app.Catalog.ListFarms(cmd.Context(), regionName)
			if err != nil {
				return err
			}
			if len(farms) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No farms found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFarmList(farms))
			return nil
		},
	}

	cmd.Flags().StringVar(&regionName, "region", "", "Region name (e.g. 김제, 김제시)")
	_ = cmd.MarkFlagRequired("region")

	return cmd
}

func newCatalogAttractionsCmd(app *App) *cobra.Command {
	var regionName string

	cmd := &cobra.Command{
		Use:   "attractions",
		Short: "List attractions of a region",
		RunE: func(cmd *cobra.Command, args []string) error {
			attractions, err := app.Catalog.ListAttractions(cmd.Context(), regionName)
			if err != nil {
				return err
			}
			if len(attractions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No attractions found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAttractionList(attractions))
			return nil
		},
	}

	cmd.Flags().StringVar(&regionName, "region", "", "Region name (e.g. 김제, 김제시)")
	_ = cmd.MarkFlagRequired("region")

	return cmd
}

func newRegionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List supported regions and their catalog size",
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := app.Catalog.Overview(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRegions(region.Names(), counts))
			return nil
		},
	}
}
