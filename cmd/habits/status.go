// Package main provides the entry point for the habits CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/habits/internal/output"
	"github.com/gorewood/habits/internal/store"
)

// statusResult holds the data for status output.
type statusResult struct {
	DataFile    string `json:"data_file"`
	FileExists  bool   `json:"file_exists"`
	HabitCount  int    `json:"habit_count"`
	Completions int    `json:"completions"`
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show data file location and state",
		Long: `Show the resolved data file path and a summary of its contents.

Useful for checking which file a command will operate on when --file,
$HABITS_FILE, or config.yaml overrides are in play.

Examples:
  habits status          # Human-readable status
  habits status --json   # Output status as JSON for scripting`,
		Args: cobra.NoArgs,
		RunE: runStatus,
	}
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	files, err := newStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := gatherStatus(files)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"data_file":   result.DataFile,
			"file_exists": result.FileExists,
			"habit_count": result.HabitCount,
			"completions": result.Completions,
		})
	}

	printHumanStatus(printer, result)
	return nil
}

// gatherStatus collects all status information.
func gatherStatus(files *store.FileStore) (*statusResult, error) {
	tracker, err := files.Load()
	if err != nil {
		return nil, err
	}

	completions := 0
	for _, name := range tracker.ListHabits() {
		h, _ := tracker.Get(name)
		completions += h.Total()
	}

	return &statusResult{
		DataFile:    files.Path(),
		FileExists:  files.Exists(),
		HabitCount:  tracker.Len(),
		Completions: completions,
	}, nil
}

// printHumanStatus outputs status in human-readable format.
func printHumanStatus(printer *output.Printer, status *statusResult) {
	printer.Section("Habits Storage")
	printer.KeyValue("Data file", status.DataFile)
	printer.KeyValue("Exists", formatBool(status.FileExists))
	printer.KeyValue("Habits", strconv.Itoa(status.HabitCount))
	printer.KeyValue("Completions", strconv.Itoa(status.Completions))
}

// formatBool returns a human-readable boolean string.
func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
