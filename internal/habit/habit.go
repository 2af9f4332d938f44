// Package habit provides the habit schema, validation, and streak
// computation for the habits tracker.
package habit

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for completion entries.
const DateLayout = "2006-01-02"

// Sentinel errors reported by tracker operations. Commands wrap these in
// exit-coded errors; errors.Is sees through the wrapping.
var (
	ErrUnknownHabit   = errors.New("unknown habit")
	ErrDuplicateHabit = errors.New("habit already exists")
	ErrAlreadyDone    = errors.New("habit already completed on this date")
)

// Habit represents a single tracked habit and its completion history.
// Completions hold calendar dates in DateLayout form, in insertion order,
// with no duplicate dates.
type Habit struct {
	Name        string   `json:"name"`
	Completions []string `json:"completions"`
}

// New creates a habit with no completions yet.
func New(name string) *Habit {
	return &Habit{Name: name, Completions: []string{}}
}

// Day formats a time as a calendar date in DateLayout form.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidationError is returned when habit validation fails.
type ValidationError struct {
	Habit    string
	Problems []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Habit == "" {
		return strings.Join(e.Problems, ", ")
	}
	return fmt.Sprintf("habit %q: %s", e.Habit, strings.Join(e.Problems, ", "))
}

// Validate checks the habit's structural invariants: a non-empty name,
// every completion a parseable DateLayout date, and no duplicate dates.
func (h *Habit) Validate() error {
	var problems []string
	if strings.TrimSpace(h.Name) == "" {
		problems = append(problems, "empty name")
	}

	seen := make(map[string]struct{}, len(h.Completions))
	for _, date := range h.Completions {
		if _, err := time.Parse(DateLayout, date); err != nil {
			problems = append(problems, fmt.Sprintf("invalid completion date %q", date))
			continue
		}
		if _, dup := seen[date]; dup {
			problems = append(problems, fmt.Sprintf("duplicate completion date %q", date))
		}
		seen[date] = struct{}{}
	}

	if len(problems) > 0 {
		return &ValidationError{Habit: h.Name, Problems: problems}
	}
	return nil
}

// Total returns the number of recorded completions.
func (h *Habit) Total() int {
	return len(h.Completions)
}

// DoneOn reports whether the habit was completed on the given day.
func (h *Habit) DoneOn(day time.Time) bool {
	date := Day(day)
	for _, completion := range h.Completions {
		if completion == date {
			return true
		}
	}
	return false
}

// markDone appends today's date to the completion log.
// Returns ErrAlreadyDone if the date is already recorded.
func (h *Habit) markDone(today time.Time) error {
	if h.DoneOn(today) {
		return fmt.Errorf("%w: %q on %s", ErrAlreadyDone, h.Name, Day(today))
	}
	h.Completions = append(h.Completions, Day(today))
	return nil
}

// Streak returns the number of consecutive calendar days with a completion,
// ending at today. A completion on today itself is required; without it the
// streak is 0 even if a run ended yesterday. Walks backward one day at a
// time until the first day with no completion.
func (h *Habit) Streak(today time.Time) int {
	if len(h.Completions) == 0 {
		return 0
	}

	done := make(map[string]struct{}, len(h.Completions))
	for _, date := range h.Completions {
		done[date] = struct{}{}
	}

	streak := 0
	for day := today; ; day = day.AddDate(0, 0, -1) {
		if _, ok := done[Day(day)]; !ok {
			break
		}
		streak++
	}
	return streak
}
