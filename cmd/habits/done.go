// Package main provides the entry point for the habits CLI.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/habits/internal/habit"
)

// newDoneCmd creates the done command.
func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <name>",
		Short: "Mark a habit as done for today",
		Long: `Record today's completion for a habit.

A habit can be marked done at most once per calendar day; a second 'done'
on the same day is a conflict and leaves the log unchanged.

Examples:
  habits done workout
  habits done reading --json`,
		Args: cobra.ExactArgs(1),
		RunE: runDone,
	}
}

// runDone executes the done command.
func runDone(cmd *cobra.Command, args []string) error {
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

	name := args[0]
	today := time.Now()
	if err := tracker.MarkDone(name, today); err != nil {
		err = classifyHabitError(err)
		printer.Error(err)
		return err
	}

	if err := files.Save(tracker); err != nil {
		printer.Error(err)
		return err
	}

	h, _ := tracker.Get(name)
	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Marked %q done for %s", h.Name, habit.Day(today)),
		"habit":   h.Name,
		"date":    habit.Day(today),
		"total":   h.Total(),
		"streak":  h.Streak(today),
	})
}
