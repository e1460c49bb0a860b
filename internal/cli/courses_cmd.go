package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uniflowhq/uniflow/internal/cli/formatter"
)

func newCoursesCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "courses <query>...",
		Short: "Search the course catalog by relevance",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := app.Degrees.SearchCourses(cmd.Context(), strings.Join(args, " "), limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCourses(courses))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of results")
	return cmd
}
