package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uniflowhq/uniflow/internal/cli/formatter"
)

func newDegreesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "degrees [name]",
		Short: "List degree programs or show one in full",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				degree, err := app.Degrees.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.FormatDegree(degree))
				return nil
			}

			degrees, err := app.Degrees.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatDegrees(degrees))
			return nil
		},
	}
}
