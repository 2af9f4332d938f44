// Package main provides the entry point for the habits CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newAddCmd creates the add command.
func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Start tracking a new habit",
		Long: `Start tracking a new habit.

The habit is created with an empty completion log. Adding a habit that
already exists is a conflict, not a silent no-op.

Examples:
  habits add workout
  habits add reading --json`,
		Args: cobra.ExactArgs(1),
		RunE: runAdd,
	}
}

// runAdd executes the add command.
func runAdd(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	files, err := newStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	tracker, err := files.Load()
	if err != nil {
		printer.Error(err)
		return err
	}

	h, err := tracker.AddHabit(args[0])
	if err != nil {
		err = classifyHabitError(err)
		printer.Error(err)
		return err
	}

	if err := files.Save(tracker); err != nil {
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Added habit %q", h.Name),
		"habit":   h.Name,
	})
}
