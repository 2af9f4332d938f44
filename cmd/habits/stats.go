// Package main provides the entry point for the habits CLI.
package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/habits/internal/export"
	"github.com/gorewood/habits/internal/output"
)

// newStatsCmd creates the stats command.
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show completion totals and streaks",
		Long: `Show statistics for all tracked habits.

Displays total completions and the current streak for each habit. A streak
counts consecutive completed days ending today; a habit not completed today
has a streak of 0.

Examples:
  habits stats          # Table output
  habits stats --json   # Structured stats for scripting`,
		Args: cobra.NoArgs,
		RunE: runStats,
	}
}

// runStats executes the stats command.
func runStats(cmd *cobra.Command, _ []string) error {
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

	records := export.BuildRecords(tracker, time.Now())

	if printer.IsJSON() {
		return export.FormatJSON(printer, records)
	}

	if len(records) == 0 {
		printer.Println("No habits tracked yet. Add one with 'habits add <name>'")
		return nil
	}

	printHumanStats(printer, records)
	return nil
}

// printHumanStats renders the stats table.
func printHumanStats(printer *output.Printer, records []export.Record) {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Name,
			strconv.Itoa(record.Total),
			formatStreak(record.Streak),
		})
	}
	printer.Table([]string{"Habit", "Total", "Streak"}, rows)
}

// formatStreak renders a streak count with its unit.
func formatStreak(days int) string {
	if days == 1 {
		return "1 day"
	}
	return strconv.Itoa(days) + " days"
}
