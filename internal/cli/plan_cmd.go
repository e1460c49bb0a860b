package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uniflowhq/uniflow/internal/cli/formatter"
	"github.com/uniflowhq/uniflow/internal/intelligence"
	"github.com/uniflowhq/uniflow/internal/planner"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		degree    string
		completed []string
		credits   float64
		position  string
		benchmark []string
		skills    []string
		advise    bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a semester-by-semester study plan",
		Long: "Resolves the degree requirements against completed courses and packs\n" +
			"the remaining credits into semesters. With --position, the target job\n" +
			"title is analyzed into a skill benchmark that steers course selection.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if degree == "" && app.interactive() {
				answers, err := runPlanWizard(ctx, app)
				if err != nil {
					return err
				}
				degree = answers.Degree
				credits = answers.Credits
				completed = answers.Completed
				position = answers.Position
				skills = answers.Skills
			}

			req := planner.PlanRequest{
				DegreeName:         degree,
				CompletedCourseIDs: completed,
				CreditsRemaining:   credits,
				SkillBenchmark:     benchmark,
				StudentSkills:      skills,
			}

			if len(req.SkillBenchmark) == 0 && position != "" && app.Position != nil {
				bm, err := app.Position.AnalyzePosition(ctx, position)
				if err != nil {
					return fmt.Errorf("analyzing position: %w", err)
				}
				req.SkillBenchmark = bm.Skills
				fmt.Fprintln(out, formatter.FormatBenchmark(bm))
			}

			resp, err := app.Plans.GeneratePlan(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatPlan(resp))

			if advise && app.Advisor != nil {
				trace := intelligence.NewPlanTrace(resp, req.Student().MissingSkills())
				advice, err := app.Advisor.AdvisePlan(ctx, trace)
				if err != nil {
					return fmt.Errorf("advising on plan: %w", err)
				}
				fmt.Fprintln(out, formatter.FormatAdvice(advice))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&degree, "degree", "", "Exact degree name from the requirements catalog")
	cmd.Flags().StringSliceVar(&completed, "completed", nil, "Completed course IDs (comma-separated)")
	cmd.Flags().Float64Var(&credits, "credits", 0, "Credits remaining to graduate")
	cmd.Flags().StringVar(&position, "position", "", "Target job title to derive a skill benchmark from")
	cmd.Flags().StringSliceVar(&benchmark, "benchmark", nil, "Benchmark skills (overrides --position analysis)")
	cmd.Flags().StringSliceVar(&skills, "skills", nil, "Skills the student already has")
	cmd.Flags().BoolVar(&advise, "advise", false, "Append an advisor narrative to the plan")

	return cmd
}
