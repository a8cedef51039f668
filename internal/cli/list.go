package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newUnitsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List known unit symbols",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, u := range app.units.List() {
				fmt.Fprintf(w, "%s\t%s\n", u.Symbol(), u.Name())
			}
			return w.Flush()
		},
	}
}

func newStylesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List style presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range app.styles.List() {
				style := app.styles.MustGet(name)
				fmt.Fprintf(w, "%s\t%s\n", name, style.Description)
			}
			return w.Flush()
		},
	}
}
