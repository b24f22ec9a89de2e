package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haneul/sugang/internal/course"
	"github.com/haneul/sugang/internal/timetable"
)

func (a *App) listCmd() *cobra.Command {
	var (
		verbose bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the current selection",
		Long: `List the working selection with credit totals and conflict warnings.

Conflicting courses are marked with '!'. Use 'sugang show' for the
weekly grid view.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			selected, err := a.repo.ListSelection(context.Background())
			if err != nil {
				return fmt.Errorf("listing selection: %w", err)
			}

			if len(selected) == 0 {
				fmt.Println("No courses selected. Use 'sugang add CODE-SECTION' to start.")
				return nil
			}

			entries := make([]course.Entry, 0, len(selected))
			for _, s := range selected {
				entries = append(entries, s.Entry)
			}
			grid := timetable.Build(entries, a.viewState())

			conflicted := conflictedKeys(grid)
			opts := PrintOpts{Verbose: verbose}
			maxTitleWidth := opts.CalcMaxTitleWidth(40)
			for _, s := range selected {
				PrintEntryRow(s.Entry, conflicted[s.Entry.Key()], opts, maxTitleWidth)
			}

			fmt.Println()
			PrintStats(BuildStats(selected, grid))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show instructor and schedule")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// conflictedKeys returns the set of entry keys involved in any conflict.
func conflictedKeys(grid timetable.Grid) map[string]bool {
	keys := make(map[string]bool)
	for _, b := range timetable.Conflicts(grid) {
		for _, e := range b.Entries {
			keys[e.Key()] = true
		}
	}
	return keys
}

// viewState builds the configured default view overrides.
func (a *App) viewState() timetable.ViewState {
	return timetable.ViewState{
		StartTime: a.config.View.DayStart,
		EndTime:   a.config.View.DayEnd,
		Days:      a.config.ViewDays(),
	}
}
