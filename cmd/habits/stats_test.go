package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gorewood/habits/internal/habit"
	"github.com/gorewood/habits/internal/store"
)

// seedDataFile writes a tracker with the given habits to the data file.
func seedDataFile(t *testing.T, path string, habits map[string][]string) {
	t.Helper()
	tracker := habit.NewTracker()
	for name, completions := range habits {
		h := habit.New(name)
		h.Completions = completions
		tracker.Habits[name] = h
	}
	if err := store.New(path).Save(tracker); err != nil {
		t.Fatalf("seeding data file: %v", err)
	}
}

func TestStatsCommand_JSON(t *testing.T) {
	dataFile := testDataFile(t)
	now := time.Now()

	seedDataFile(t, dataFile, map[string][]string{
		// Three consecutive days ending today
		"workout": {
			habit.Day(now.AddDate(0, 0, -2)),
			habit.Day(now.AddDate(0, 0, -1)),
			habit.Day(now),
		},
		// Gap before today resets the streak to 1
		"reading": {
			habit.Day(now.AddDate(0, 0, -3)),
			habit.Day(now),
		},
		// Not completed today means streak 0
		"meditation": {
			habit.Day(now.AddDate(0, 0, -1)),
		},
	})

	out, err := execute(t, "stats", "--json", "--file", dataFile)
	if err != nil {
		t.Fatalf("stats failed: %v\nOutput: %s", err, out)
	}

	records := parseJSONArray(t, out)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	want := []struct {
		name   string
		total  float64
		streak float64
	}{
		{"meditation", 1, 0},
		{"reading", 2, 1},
		{"workout", 3, 3},
	}
	for i, w := range want {
		if records[i]["name"] != w.name {
			t.Errorf("records[%d].name = %v, want %s", i, records[i]["name"], w.name)
		}
		if records[i]["total"] != w.total {
			t.Errorf("%s: total = %v, want %v", w.name, records[i]["total"], w.total)
		}
		if records[i]["streak"] != w.streak {
			t.Errorf("%s: streak = %v, want %v", w.name, records[i]["streak"], w.streak)
		}
	}
}

func TestStatsCommand_Table(t *testing.T) {
	dataFile := testDataFile(t)
	now := time.Now()

	seedDataFile(t, dataFile, map[string][]string{
		"workout": {habit.Day(now)},
	})

	out, err := execute(t, "stats", "--file", dataFile)
	if err != nil {
		t.Fatalf("stats failed: %v\nOutput: %s", err, out)
	}

	for _, want := range []string{"Habit", "Total", "Streak", "workout", "1 day"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStatsCommand_Empty(t *testing.T) {
	dataFile := testDataFile(t)

	out, err := execute(t, "stats", "--file", dataFile)
	if err != nil {
		t.Fatalf("stats failed: %v\nOutput: %s", err, out)
	}
	if !strings.Contains(out, "No habits tracked yet") {
		t.Errorf("expected empty-state message, got:\n%s", out)
	}
}
