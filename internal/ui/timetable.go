package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) saveCmd() *cobra.Command {
	var priority int

	cmd := &cobra.Command{
		Use:   "save [name]",
		Short: "Save the current selection as a timetable",
		Long: `Save the working selection under a name so it can be reloaded later.

Lower priority numbers rank higher when listing candidates.

Example:
  sugang save plan-a --priority=1`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			selected, err := a.repo.ListSelection(ctx)
			if err != nil {
				return fmt.Errorf("listing selection: %w", err)
			}
			if len(selected) == 0 {
				return fmt.Errorf("nothing to save: the selection is empty")
			}

			keys := make([]string, 0, len(selected))
			for _, s := range selected {
				keys = append(keys, s.Entry.Key())
			}

			saved, err := a.repo.SaveTimetable(ctx, args[0], priority, keys)
			if err != nil {
				return fmt.Errorf("saving timetable: %w", err)
			}

			fmt.Printf("Saved timetable %q with %d courses (priority %d)\n",
				saved.Name, len(saved.Keys), saved.Priority)
			return nil
		},
	}

	cmd.Flags().IntVar(&priority, "priority", 0, "Ranking priority (lower ranks higher)")
	return cmd
}

func (a *App) timetablesCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "timetables",
		Short: "List saved timetables",
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			timetables, err := a.repo.ListTimetables(context.Background())
			if err != nil {
				return fmt.Errorf("listing timetables: %w", err)
			}

			if len(timetables) == 0 {
				fmt.Println("No saved timetables. Use 'sugang save NAME' to create one.")
				return nil
			}

			for _, t := range timetables {
				fmt.Printf("  %s %-20s %d courses\n",
					formatMuted(fmt.Sprintf("[%d]", t.Priority)), t.Name, len(t.Keys))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func (a *App) loadCmd() *cobra.Command {
	var keep bool

	cmd := &cobra.Command{
		Use:   "load [name]",
		Short: "Replace the selection with a saved timetable",
		Long: `Load a saved timetable into the working selection.

The current selection is cleared first unless --keep is given.

Example:
  sugang load plan-a`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			table, entries, err := a.repo.GetTimetable(ctx, args[0])
			if err != nil {
				return fmt.Errorf("loading timetable: %w", err)
			}

			if !keep {
				if err := a.repo.ClearSelection(ctx); err != nil {
					return fmt.Errorf("clearing selection: %w", err)
				}
			}

			loaded := 0
			for _, e := range entries {
				_, err := a.repo.AddSelection(ctx, e.Code, e.Section)
				if err != nil {
					// With --keep, already-selected entries are expected.
					if keep {
						continue
					}
					return fmt.Errorf("selecting %s: %w", e.Key(), err)
				}
				loaded++
			}

			fmt.Printf("Loaded timetable %q: %d courses\n", table.Name, loaded)
			return nil
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", false, "Merge into the current selection instead of replacing it")
	return cmd
}

func (a *App) deleteTimetableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a saved timetable",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			if err := a.repo.DeleteTimetable(context.Background(), args[0]); err != nil {
				return fmt.Errorf("deleting timetable: %w", err)
			}

			fmt.Printf("Deleted timetable %q\n", args[0])
			return nil
		},
	}
}
