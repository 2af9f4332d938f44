// Package main provides the entry point for the habits CLI.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/habits/internal/export"
	"github.com/gorewood/habits/internal/output"
)

// exportFlags holds all flag values for the export command.
type exportFlags struct {
	format string
	out    string
}

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var (
		formatFlag string
		outFlag    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export habit data with computed stats",
		Long: `Export all habits with their completion logs and computed stats.

Formats:
  json      Machine-readable records (default)
  markdown  Report with YAML frontmatter and per-habit sections

Examples:
  habits export
  habits export --format markdown
  habits export --format markdown --out habits.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, exportFlags{format: formatFlag, out: outFlag})
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "json", "Output format: json or markdown")
	cmd.Flags().StringVar(&outFlag, "out", "", "Write to a file instead of stdout")

	return cmd
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, flags exportFlags) error {
	printer := newPrinter(cmd)

	if flags.format != "json" && flags.format != "markdown" {
		err := output.NewUserError(fmt.Sprintf("unknown format %q (use json or markdown)", flags.format))
		printer.Error(err)
		return err
	}

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

	today := time.Now()
	records := export.BuildRecords(tracker, today)

	content, err := renderExport(records, flags.format, today)
	if err != nil {
		printer.Error(err)
		return err
	}

	if flags.out == "" {
		printer.Print("%s", content)
		return nil
	}

	if err := export.WriteFile(flags.out, []byte(content)); err != nil {
		printer.Error(err)
		return err
	}
	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Exported %d habits to %s", len(records), flags.out),
		"file":    flags.out,
		"count":   len(records),
	})
}

// renderExport produces the export content in the requested format.
func renderExport(records []export.Record, format string, today time.Time) (string, error) {
	if format == "markdown" {
		return export.FormatMarkdown(records, today), nil
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", output.NewSystemError("failed to serialize export: " + err.Error())
	}
	return string(data) + "\n", nil
}
