package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestPrinter_Success_JSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	err := printer.Success(map[string]any{"message": "Added habit \"workout\"", "habit": "workout"})
	if err != nil {
		t.Fatalf("Success failed: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["habit"] != "workout" {
		t.Errorf("habit = %v, want workout", result["habit"])
	}
}

func TestPrinter_Success_Human(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	if err := printer.Success(map[string]any{"message": "Added habit"}); err != nil {
		t.Fatalf("Success failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "Added habit" {
		t.Errorf("output = %q, want %q", got, "Added habit")
	}
}

func TestPrinter_Error_JSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Error(NewConflictError("habit already exists"))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["error"] != "habit already exists" {
		t.Errorf("error = %v", result["error"])
	}
	if result["code"] != float64(ExitConflict) {
		t.Errorf("code = %v, want %d", result["code"], ExitConflict)
	}
}

func TestPrinter_Error_HumanGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, false, false).WithStderr(&errOut)

	printer.Error(NewUserError("unknown habit"))

	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "unknown habit") {
		t.Errorf("stderr = %q, want it to contain the message", errOut.String())
	}
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Table(
		[]string{"Habit", "Total", "Streak"},
		[][]string{
			{"reading", "12", "3 days"},
			{"workout", "5", "0 days"},
		},
	)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Habit") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "reading") || !strings.Contains(lines[1], "12") {
		t.Errorf("row = %q", lines[1])
	}

	// Columns align: "Total" starts at the same offset in every line
	headerIdx := strings.Index(lines[0], "Total")
	rowIdx := strings.Index(lines[1], "12")
	if headerIdx != rowIdx {
		t.Errorf("column misaligned: header at %d, row at %d", headerIdx, rowIdx)
	}
}

func TestPrinter_KeyValue(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.KeyValue("Data file", "habits.json")

	if got := strings.TrimSpace(buf.String()); got != "Data file: habits.json" {
		t.Errorf("output = %q", got)
	}
}

func TestPrinter_Warn_JSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Warn("data file %s is missing", "habits.json")

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !strings.Contains(result["warning"].(string), "habits.json") {
		t.Errorf("warning = %v", result["warning"])
	}
}
