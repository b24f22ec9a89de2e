package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haneul/sugang/internal/course"
	"github.com/haneul/sugang/internal/timetable"
)

func (a *App) searchCmd() *cobra.Command {
	var (
		category string
		credits  int
		day      string
		limit    int
		verbose  bool
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search the course catalog",
		Long: `Search the imported catalog by keyword over code, title, and instructor.

Example:
  sugang search algorithms
  sugang search --category=major --credits=3
  sugang search --day=friday`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			keyword := ""
			if len(args) > 0 {
				keyword = args[0]
			}

			entries, err := a.repo.SearchCourses(context.Background(), keyword, limit)
			if err != nil {
				return fmt.Errorf("searching courses: %w", err)
			}

			// Category and credits narrowing happens client side; the
			// repository only matches the keyword.
			filter := course.Filter{Category: course.Category(category), Credits: credits}
			entries = filter.Apply(entries)

			if day != "" {
				d := course.ParseWeekday(day)
				if d < 0 {
					return fmt.Errorf("unknown day %q", day)
				}
				entries = filterByDay(entries, d)
			}

			if len(entries) == 0 {
				fmt.Println("No courses found.")
				return nil
			}

			opts := PrintOpts{Verbose: verbose}
			maxTitleWidth := opts.CalcMaxTitleWidth(40)
			for _, e := range entries {
				PrintEntryRow(e, false, opts, maxTitleWidth)
			}
			fmt.Printf("\n%d course(s)\n", len(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category: major, general, or elective")
	cmd.Flags().IntVar(&credits, "credits", 0, "Filter by exact credits")
	cmd.Flags().StringVar(&day, "day", "", "Filter by meeting day (e.g. monday)")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of results")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show instructor and schedule")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// filterByDay keeps entries with at least one parsed slot on the given day.
func filterByDay(entries []course.Entry, day int) []course.Entry {
	var out []course.Entry
	for _, e := range entries {
		for _, s := range timetable.Parse(e.Schedule) {
			if s.Day == day {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
