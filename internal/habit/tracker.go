package habit

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Tracker is the in-memory model of all tracked habits, keyed by name.
type Tracker struct {
	Habits map[string]*Habit `json:"habits"`
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{Habits: make(map[string]*Habit)}
}

// AddHabit inserts a new habit with an empty completion log.
// Returns ErrDuplicateHabit if a habit with that name already exists.
// Leading and trailing whitespace in the name is trimmed.
func (t *Tracker) AddHabit(name string) (*Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("habit name must not be empty")
	}
	if _, exists := t.Habits[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateHabit, name)
	}

	h := New(name)
	if t.Habits == nil {
		t.Habits = make(map[string]*Habit)
	}
	t.Habits[name] = h
	return h, nil
}

// MarkDone records a completion for the habit on today's date.
// Returns ErrUnknownHabit if the habit does not exist and ErrAlreadyDone
// if today is already in the completion log.
func (t *Tracker) MarkDone(name string, today time.Time) error {
	h, ok := t.Habits[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownHabit, name)
	}
	return h.markDone(today)
}

// TotalCompletions returns the number of completions recorded for the habit.
func (t *Tracker) TotalCompletions(name string) (int, error) {
	h, ok := t.Habits[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownHabit, name)
	}
	return h.Total(), nil
}

// CurrentStreak returns the habit's streak of consecutive completed days
// ending at today. See Habit.Streak for the exact policy.
func (t *Tracker) CurrentStreak(name string, today time.Time) (int, error) {
	h, ok := t.Habits[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownHabit, name)
	}
	return h.Streak(today), nil
}

// Get returns the habit with the given name, if it exists.
func (t *Tracker) Get(name string) (*Habit, bool) {
	h, ok := t.Habits[name]
	return h, ok
}

// Len returns the number of tracked habits.
func (t *Tracker) Len() int {
	return len(t.Habits)
}

// ListHabits returns all habit names sorted lexicographically.
func (t *Tracker) ListHabits() []string {
	names := make([]string, 0, len(t.Habits))
	for name := range t.Habits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks every habit in the tracker, including that map keys
// match the stored habit names.
func (t *Tracker) Validate() error {
	for key, h := range t.Habits {
		if h == nil {
			return &ValidationError{Habit: key, Problems: []string{"missing habit record"}}
		}
		if err := h.Validate(); err != nil {
			return err
		}
		if key != h.Name {
			return &ValidationError{
				Habit:    h.Name,
				Problems: []string{fmt.Sprintf("stored under mismatched key %q", key)},
			}
		}
	}
	return nil
}
