package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/gorewood/habits/internal/habit"
)

// FormatMarkdown formats the records as a markdown report.
// Returns the formatted markdown string.
func FormatMarkdown(records []Record, today time.Time) string {
	var builder strings.Builder

	writeFrontmatter(&builder, records, today)
	builder.WriteString("# Habits\n\n")
	for _, record := range records {
		writeHabitSection(&builder, record)
	}

	return builder.String()
}

// writeFrontmatter writes the YAML frontmatter section.
func writeFrontmatter(builder *strings.Builder, records []Record, today time.Time) {
	builder.WriteString("---\n")
	builder.WriteString("schema: habits.export/v1\n")
	fmt.Fprintf(builder, "date: %s\n", habit.Day(today))
	fmt.Fprintf(builder, "habit_count: %d\n", len(records))
	builder.WriteString("---\n\n")
}

// writeHabitSection writes one habit's stats and completion log.
func writeHabitSection(builder *strings.Builder, record Record) {
	fmt.Fprintf(builder, "## %s\n\n", record.Name)
	fmt.Fprintf(builder, "- Total completions: %d\n", record.Total)
	fmt.Fprintf(builder, "- Current streak: %d\n", record.Streak)

	if len(record.Completions) > 0 {
		last := record.Completions[len(record.Completions)-1]
		fmt.Fprintf(builder, "- Last completed: %s\n", last)
	}

	builder.WriteString("\n")
}
