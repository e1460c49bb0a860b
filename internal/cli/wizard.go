package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// wizardAnswers holds everything the interactive plan form collects.
type wizardAnswers struct {
	Degree    string
	Credits   float64
	Completed []string
	Position  string
	Skills    []string
}

// runPlanWizard collects planning input interactively when the plan command
// is invoked without flags on a terminal.
func runPlanWizard(ctx context.Context, app *App) (*wizardAnswers, error) {
	degrees, err := app.Degrees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading degree programs: %w", err)
	}
	options := make([]huh.Option[string], 0, len(degrees))
	for _, d := range degrees {
		options = append(options, huh.NewOption(d.DegreeName, d.DegreeName))
	}

	var (
		degree    string
		credits   string
		completed string
		position  string
		skills    string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Degree program").
				Options(options...).
				Value(&degree),
			huh.NewInput().
				Title("Credits remaining to graduate").
				Placeholder("90").
				Value(&credits).
				Validate(validatePositiveNumber),
			huh.NewInput().
				Title("Completed course IDs (comma-separated, blank for none)").
				Placeholder("CS250, MATH201").
				Value(&completed),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Target position (blank to skip)").
				Placeholder("Machine Learning Engineer").
				Value(&position),
			huh.NewInput().
				Title("Skills you already have (comma-separated)").
				Placeholder("python, sql").
				Value(&skills),
		),
	).WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, err
	}

	creditsVal, err := strconv.ParseFloat(strings.TrimSpace(credits), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid credit total %q: %w", credits, err)
	}

	return &wizardAnswers{
		Degree:    degree,
		Credits:   creditsVal,
		Completed: splitList(completed),
		Position:  strings.TrimSpace(position),
		Skills:    splitList(skills),
	}, nil
}

func validatePositiveNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
