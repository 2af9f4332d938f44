// Package output provides structured output handling for the habits CLI.
//
// This package handles both human-readable and JSON output formats so every
// command works equally well for people and for scripts.
//
// # Printer
//
// The Printer is the primary interface for command output. It handles format
// switching based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	// For success output
//	printer.Success(map[string]any{"message": "Added habit", "habit": name})
//
//	// For error output
//	printer.Error(err)
//
//	// For tabular output (stats)
//	printer.Table([]string{"Habit", "Total", "Streak"}, rows)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), all output is structured:
//
//	// Success: {"message": "...", "habit": "...", ...}
//	// Error: {"error": "message", "code": N}
//
// # Exit Codes
//
// The package defines standard exit codes and error constructors:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad args, unknown habit, corrupt data)
//	output.ExitSystemError // 2: System error (I/O failure)
//	output.ExitConflict    // 3: Conflict (duplicate habit, already done today)
//
// Errors created with the constructors carry exit codes used for both JSON
// error output and the process exit code.
package output
