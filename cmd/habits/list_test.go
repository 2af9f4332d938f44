package main

import (
	"strings"
	"testing"
)

func TestListCommand(t *testing.T) {
	dataFile := testDataFile(t)

	for _, name := range []string{"reading", "workout", "meditation"} {
		if out, err := execute(t, "add", name, "--file", dataFile); err != nil {
			t.Fatalf("add %s failed: %v\nOutput: %s", name, err, out)
		}
	}

	out, err := execute(t, "list", "--file", dataFile)
	if err != nil {
		t.Fatalf("list failed: %v\nOutput: %s", err, out)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{"meditation", "reading", "workout"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), out)
	}
	for i, name := range want {
		if lines[i] != name {
			t.Errorf("line %d = %q, want %q", i, lines[i], name)
		}
	}
}

func TestListCommand_JSON(t *testing.T) {
	dataFile := testDataFile(t)

	for _, name := range []string{"workout", "reading"} {
		if _, err := execute(t, "add", name, "--file", dataFile); err != nil {
			t.Fatalf("add %s failed: %v", name, err)
		}
	}

	out, err := execute(t, "list", "--json", "--file", dataFile)
	if err != nil {
		t.Fatalf("list failed: %v\nOutput: %s", err, out)
	}

	result := parseJSONObject(t, out)
	if result["count"] != float64(2) {
		t.Errorf("count = %v, want 2", result["count"])
	}
	habits, ok := result["habits"].([]any)
	if !ok {
		t.Fatalf("habits = %T, want array", result["habits"])
	}
	if len(habits) != 2 || habits[0] != "reading" || habits[1] != "workout" {
		t.Errorf("habits = %v, want [reading workout]", habits)
	}
}

func TestListCommand_Empty(t *testing.T) {
	dataFile := testDataFile(t)

	out, err := execute(t, "list", "--file", dataFile)
	if err != nil {
		t.Fatalf("list failed: %v\nOutput: %s", err, out)
	}
	if !strings.Contains(out, "No habits tracked yet") {
		t.Errorf("expected empty-state message, got:\n%s", out)
	}
}
