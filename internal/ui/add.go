package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haneul/sugang/internal/course"
)

func (a *App) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [key]",
		Short: "Add a course to the selection",
		Long: `Add a catalog course to the working selection by its CODE-SECTION key.

Example:
  sugang add CS101-001`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			code, section, err := course.SplitKey(args[0])
			if err != nil {
				return err
			}

			sel, err := a.repo.AddSelection(context.Background(), code, section)
			if err != nil {
				return fmt.Errorf("adding course: %w", err)
			}

			fmt.Printf("Added %s: %s (%d credits)\n",
				sel.Entry.Key(), sel.Entry.Title, sel.Entry.Credits)
			return nil
		},
	}

	return cmd
}

func (a *App) removeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove [key]",
		Short:   "Remove a course from the selection",
		Example: `  sugang remove CS101-001`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			code, section, err := course.SplitKey(args[0])
			if err != nil {
				return err
			}

			if err := a.repo.RemoveSelection(context.Background(), code, section); err != nil {
				return fmt.Errorf("removing course: %w", err)
			}

			fmt.Printf("Removed %s-%s\n", code, section)
			return nil
		},
	}

	return cmd
}
