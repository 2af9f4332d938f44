// Package main provides the entry point for the habits CLI.
package main

import (
	"github.com/spf13/cobra"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tracked habits",
		Long: `List the names of all tracked habits, sorted alphabetically.

Examples:
  habits list          # One name per line
  habits list --json   # {"count": N, "habits": [...]}`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
}

// runList executes the list command.
func runList(cmd *cobra.Command, _ []string) error {
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

	names := tracker.ListHabits()

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"count":  len(names),
			"habits": names,
		})
	}

	if len(names) == 0 {
		printer.Println("No habits tracked yet. Add one with 'habits add <name>'")
		return nil
	}

	for _, name := range names {
		printer.Println(name)
	}
	return nil
}
