package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uniflowhq/uniflow/internal/cli/formatter"
	"github.com/uniflowhq/uniflow/internal/repository"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse previously generated plans",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryRemoveCmd(app),
	)
	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var (
		degree string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent plan runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := listHistory(cmd, app, degree, limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No plans recorded yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistory(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&degree, "degree", "", "Only show runs for this degree name")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of runs to show")
	return cmd
}

func listHistory(cmd *cobra.Command, app *App, degree string, limit int) ([]*repository.PlanRecord, error) {
	if degree != "" {
		return app.History.ListByDegree(cmd.Context(), degree, limit)
	}
	return app.History.ListRecent(cmd.Context(), limit)
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recorded plan in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := app.History.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistoryRecord(record))
			return nil
		},
	}
}

func newHistoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete one recorded plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.History.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s\n", args[0])
			return nil
		},
	}
}
