// Package store persists the habit tracker to a single JSON data file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/habits/internal/habit"
	"github.com/gorewood/habits/internal/output"
)

// ErrCorruptData indicates the data file exists but does not parse into the
// expected tracker shape, or violates a tracker invariant.
var ErrCorruptData = errors.New("habits data file is corrupt")

// DefaultFileName is the data file name used when no override is configured.
const DefaultFileName = "habits.json"

// FileStore provides load/save access to the tracker stored as one JSON
// document mapping habit names to habit records.
//
// The file is not locked. Only one process instance is expected to run at a
// time; concurrent invocations may race.
type FileStore struct {
	path string
}

// New creates a FileStore backed by the given file path.
func New(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the data file path.
func (s *FileStore) Path() string {
	return s.path
}

// Exists returns true if the data file exists.
func (s *FileStore) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// Load reads the tracker from the data file.
// A missing file is not an error: it yields an empty tracker.
// An unreadable file is a system error; a file that exists but does not
// parse or validate is a user error wrapping ErrCorruptData.
func (s *FileStore) Load() (*habit.Tracker, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return habit.NewTracker(), nil
		}
		return nil, output.NewSystemErrorWithCause("failed to read data file: "+s.path, err)
	}

	var tracker habit.Tracker
	if err := json.Unmarshal(data, &tracker); err != nil {
		return nil, output.NewUserErrorWithCause(
			"failed to parse data file: "+s.path,
			fmt.Errorf("%w: %v", ErrCorruptData, err))
	}
	if tracker.Habits == nil {
		tracker.Habits = make(map[string]*habit.Habit)
	}

	if err := tracker.Validate(); err != nil {
		return nil, output.NewUserErrorWithCause(
			"invalid data file: "+s.path,
			fmt.Errorf("%w: %v", ErrCorruptData, err))
	}

	return &tracker, nil
}

// Save serializes the full tracker to the data file, overwriting any
// previous content. Uses write-to-temp-then-rename in the target directory.
// Write failures are system errors.
func (s *FileStore) Save(tracker *habit.Tracker) error {
	if err := tracker.Validate(); err != nil {
		return output.NewUserError(err.Error())
	}

	data, err := json.MarshalIndent(tracker, "", "  ")
	if err != nil {
		return output.NewSystemError("failed to serialize tracker: " + err.Error())
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return output.NewSystemErrorWithCause("failed to create data directory", err)
		}
	}

	if err := atomicWrite(s.path, data); err != nil {
		return output.NewSystemErrorWithCause("failed to write data file", err)
	}
	return nil
}

// atomicWrite writes data to path using write-to-temp-then-rename.
// The temp file is created in the same directory as path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
