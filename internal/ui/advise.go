package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haneul/sugang/internal/course"
	"github.com/haneul/sugang/internal/llm"
	"github.com/haneul/sugang/internal/timetable"
)

func (a *App) adviseCmd() *cobra.Command {
	var (
		model   string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Ask the LLM how to resolve schedule conflicts",
		Long: `Send the current selection and its conflicts to the configured LLM
provider and print a keep/drop recommendation per conflict.

Example:
  sugang advise
  sugang advise --model=llama3.1`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			selected, err := a.repo.ListSelection(ctx)
			if err != nil {
				return fmt.Errorf("listing selection: %w", err)
			}
			if len(selected) == 0 {
				fmt.Println("No courses selected.")
				return nil
			}

			entries := make([]course.Entry, 0, len(selected))
			for _, s := range selected {
				entries = append(entries, s.Entry)
			}
			grid := timetable.Build(entries, a.viewState())

			conflicts := timetable.Conflicts(grid)
			if len(conflicts) == 0 {
				fmt.Println("No conflicts. Nothing to advise.")
				return nil
			}

			if model == "" {
				model = a.config.LLM.Model
			}
			client, err := llm.NewClient(a.config.LLM.Provider, model, a.config.LLM.BaseURL)
			if err != nil {
				return fmt.Errorf("creating LLM client: %w", err)
			}

			advisor := llm.NewAdvisor(client)
			advice, err := advisor.Advise(ctx, buildAdviseRequest(selected, conflicts))
			if err != nil {
				return fmt.Errorf("getting advice: %w", err)
			}

			printAdvice(advice)
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "LLM model to use (default from config)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// buildAdviseRequest converts the selection and conflict blocks into the
// provider-neutral advisor input.
func buildAdviseRequest(selected []course.Selected, conflicts []timetable.PositionedBlock) llm.AdviseRequest {
	req := llm.AdviseRequest{}

	for _, s := range selected {
		req.Selected = append(req.Selected, llm.SelectedCourse{
			Key:        s.Entry.Key(),
			Title:      s.Entry.Title,
			Instructor: s.Entry.Instructor,
			Credits:    s.Entry.Credits,
			Category:   string(s.Entry.Category),
			Schedule:   s.Entry.Schedule,
		})
	}

	for _, b := range conflicts {
		var keys []string
		for _, e := range b.Entries {
			keys = append(keys, e.Key())
		}
		req.Conflicts = append(req.Conflicts, llm.Conflict{
			Day:   course.WeekdayName(b.Day),
			Start: timetable.MinutesToTime(b.Start),
			End:   timetable.MinutesToTime(b.End),
			Keys:  keys,
		})
	}

	return req
}

func printAdvice(advice *llm.Advice) {
	fmt.Printf("%s\n", formatHeader("ADVICE"))
	fmt.Println(strings.Repeat("─", 60))

	for _, v := range advice.Verdicts {
		fmt.Printf("  Keep %s, drop %s\n",
			formatStats(v.Keep), formatConflict(strings.Join(v.Drop, ", ")))
		if v.Reason != "" {
			fmt.Printf("    %s\n", formatMuted(v.Reason))
		}
	}

	if advice.Summary != "" {
		fmt.Printf("\n  %s\n", advice.Summary)
	}
	for _, w := range advice.Warnings {
		fmt.Printf("  %s\n", formatMuted("! "+w))
	}
}
