package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haneul/sugang/internal/course"
	"github.com/haneul/sugang/internal/timetable"
)

func (a *App) showCmd() *cobra.Command {
	var (
		startTime string
		endTime   string
		days      []string
		name      string
		noColor   bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the weekly timetable grid",
		Long: `Display the working selection as a weekly grid.

The visible window derives from the schedule data and can be overridden
per invocation. With --name, shows a saved timetable instead of the
working selection.`,
		Example: `  sugang show
  sugang show --start=08:00 --end=20:00
  sugang show --days=mon,wed,fri
  sugang show --name=plan-a`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()

			var entries []course.Entry
			header := "SELECTION"
			if name != "" {
				_, tableEntries, err := a.repo.GetTimetable(ctx, name)
				if err != nil {
					return fmt.Errorf("loading timetable: %w", err)
				}
				entries = tableEntries
				header = fmt.Sprintf("TIMETABLE %q", name)
			} else {
				selected, err := a.repo.ListSelection(ctx)
				if err != nil {
					return fmt.Errorf("listing selection: %w", err)
				}
				for _, s := range selected {
					entries = append(entries, s.Entry)
				}
			}

			if len(entries) == 0 {
				fmt.Println("Nothing to show.")
				return nil
			}

			view := a.viewState()
			if startTime != "" {
				view.StartTime = startTime
			}
			if endTime != "" {
				view.EndTime = endTime
			}
			if len(days) > 0 {
				view.Days = parseDayFlags(days)
			}

			grid := timetable.Build(entries, view)

			fmt.Printf("%s\n\n", formatHeader(header))
			fmt.Print(RenderGrid(grid))
			PrintConflicts(grid)
			return nil
		},
	}

	cmd.Flags().StringVar(&startTime, "start", "", "Window start (HH:MM)")
	cmd.Flags().StringVar(&endTime, "end", "", "Window end (HH:MM)")
	cmd.Flags().StringSliceVar(&days, "days", nil, "Visible days (e.g. mon,wed,fri)")
	cmd.Flags().StringVar(&name, "name", "", "Show a saved timetable instead of the selection")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// parseDayFlags converts weekday names to day indices, dropping unknown names.
func parseDayFlags(names []string) []int {
	var result []int
	for _, n := range names {
		if d := course.ParseWeekday(n); d >= 0 {
			result = append(result, d)
		}
	}
	if result == nil {
		// All names invalid: an empty non-nil slice hides every column,
		// which at least makes the mistake visible.
		result = []int{}
	}
	return result
}
