// Package export provides formatting and file output for habit data.
//
// Two formats are supported:
//   - JSON: machine-readable records with computed stats
//   - Markdown: human-readable report with YAML frontmatter
package export

import (
	"fmt"
	"os"
	"time"

	"github.com/gorewood/habits/internal/habit"
	"github.com/gorewood/habits/internal/output"
)

// Record is the exported view of one habit: the raw completion log plus the
// stats derived from it at export time.
type Record struct {
	Name        string   `json:"name"`
	Total       int      `json:"total"`
	Streak      int      `json:"streak"`
	Completions []string `json:"completions"`
}

// BuildRecords converts a tracker into export records, sorted by habit name.
// Streaks are computed relative to today.
func BuildRecords(tracker *habit.Tracker, today time.Time) []Record {
	names := tracker.ListHabits()
	records := make([]Record, 0, len(names))
	for _, name := range names {
		h, _ := tracker.Get(name)
		records = append(records, Record{
			Name:        h.Name,
			Total:       h.Total(),
			Streak:      h.Streak(today),
			Completions: h.Completions,
		})
	}
	return records
}

// FormatJSON outputs the records as a JSON array to the printer.
func FormatJSON(printer *output.Printer, records []Record) error {
	return printer.WriteJSON(records)
}

// WriteFile writes exported content to a file.
func WriteFile(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return output.NewSystemError(fmt.Sprintf("failed to write file %s: %v", path, err))
	}
	return nil
}
