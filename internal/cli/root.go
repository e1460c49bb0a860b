package cli

import (
	"github.com/spf13/cobra"

	"github.com/uniflowhq/uniflow/internal/intelligence"
	"github.com/uniflowhq/uniflow/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans   service.PlanService
	Degrees service.DegreeService
	History service.HistoryService

	// Intelligence services are nil when the LLM layer is disabled; the
	// commands fall back to their deterministic equivalents.
	Position intelligence.PositionService
	Advisor  intelligence.AdvisorService

	// IsInteractive reports whether stdin is a terminal; the plan command
	// only offers the wizard when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "uniflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "uniflow",
		Short:         "Degree requirement resolver and semester planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlanCmd(app),
		newDegreesCmd(app),
		newCoursesCmd(app),
		newHistoryCmd(app),
		newServeCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
