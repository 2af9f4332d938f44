// Package main provides the entry point for the habits CLI.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gorewood/habits/internal/config"
	"github.com/gorewood/habits/internal/habit"
	"github.com/gorewood/habits/internal/output"
	"github.com/gorewood/habits/internal/store"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := lookupPersistentFlag(cmd, "json")
	return flag != nil && flag.Value.String() == "true"
}

// lookupPersistentFlag finds a flag on the command, falling back to the
// root's persistent flag set when the command has not merged inherited
// flags yet.
func lookupPersistentFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag
	}
	return cmd.Root().PersistentFlags().Lookup(name)
}

// useColor resolves the effective color setting from the --color flag,
// the config file, and TTY detection. The flag wins; a flag value of
// "auto" falls through to the config file's color mode.
func useColor(cmd *cobra.Command) bool {
	colorMode := "auto"
	if flag := lookupPersistentFlag(cmd, "color"); flag != nil {
		colorMode = flag.Value.String()
	}
	if colorMode == "auto" {
		if cfg, err := config.Load(); err == nil && cfg.Color != "" {
			colorMode = cfg.Color
		}
	}
	return output.ResolveColorMode(colorMode, output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter creates the printer for a command invocation.
func newPrinter(cmd *cobra.Command) *output.Printer {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))
	return printer.WithStderr(cmd.ErrOrStderr())
}

// resolveDataFile determines the data file path for this invocation.
//
// Resolution order:
//  1. --file flag
//  2. $HABITS_FILE
//  3. data_file in config.yaml
//  4. habits.json in the working directory
func resolveDataFile(cmd *cobra.Command) (string, error) {
	if flag := lookupPersistentFlag(cmd, "file"); flag != nil && flag.Value.String() != "" {
		return flag.Value.String(), nil
	}

	if path := os.Getenv("HABITS_FILE"); path != "" {
		return path, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", output.NewUserError(err.Error())
	}
	if cfg.DataFile != "" {
		return cfg.DataFile, nil
	}

	return store.DefaultFileName, nil
}

// newStore creates the file store for a command invocation.
func newStore(cmd *cobra.Command) (*store.FileStore, error) {
	path, err := resolveDataFile(cmd)
	if err != nil {
		return nil, err
	}
	return store.New(path), nil
}

// classifyHabitError maps tracker sentinel errors onto exit-coded errors.
// Errors that already carry an exit code pass through unchanged.
func classifyHabitError(err error) error {
	switch {
	case errors.Is(err, habit.ErrDuplicateHabit), errors.Is(err, habit.ErrAlreadyDone):
		return output.NewConflictErrorWithCause(err.Error(), err)
	case errors.Is(err, habit.ErrUnknownHabit):
		return output.NewUserErrorWithCause(err.Error(), err)
	}

	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return output.NewUserError(err.Error())
}
