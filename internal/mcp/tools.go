package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/habits/internal/habit"
	"github.com/gorewood/habits/internal/store"
)

// --- Shared types ---

// HabitStats is the computed view of one habit.
type HabitStats struct {
	Name          string `json:"name"                     jsonschema:"habit name"`
	Total         int    `json:"total"                    jsonschema:"total number of completions"`
	Streak        int    `json:"streak"                   jsonschema:"consecutive completed days ending today"`
	LastCompleted string `json:"last_completed,omitempty" jsonschema:"most recent completion date (YYYY-MM-DD)"`
}

// buildStats converts a tracker into HabitStats, sorted by name.
func buildStats(tracker *habit.Tracker, today time.Time) []HabitStats {
	names := tracker.ListHabits()
	result := make([]HabitStats, 0, len(names))
	for _, name := range names {
		h, _ := tracker.Get(name)
		stats := HabitStats{
			Name:   h.Name,
			Total:  h.Total(),
			Streak: h.Streak(today),
		}
		if len(h.Completions) > 0 {
			stats.LastCompleted = h.Completions[len(h.Completions)-1]
		}
		result = append(result, stats)
	}
	return result
}

// --- list_habits tool ---

// ListHabitsInput is the input for the list_habits tool (no parameters needed).
type ListHabitsInput struct{}

// ListHabitsOutput is the output for the list_habits tool.
type ListHabitsOutput struct {
	Count  int      `json:"count"            jsonschema:"number of tracked habits"`
	Habits []string `json:"habits,omitempty" jsonschema:"sorted habit names"`
}

func handleListHabits(files *store.FileStore) mcp.ToolHandlerFor[ListHabitsInput, ListHabitsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListHabitsInput) (*mcp.CallToolResult, ListHabitsOutput, error) {
		tracker, err := files.Load()
		if err != nil {
			return nil, ListHabitsOutput{}, fmt.Errorf("loading habits: %w", err)
		}

		names := tracker.ListHabits()
		return nil, ListHabitsOutput{Count: len(names), Habits: names}, nil
	}
}

// --- habit_stats tool ---

// HabitStatsInput is the input for the habit_stats tool.
type HabitStatsInput struct {
	Name string `json:"name,omitempty" jsonschema:"restrict output to one habit"`
}

// HabitStatsOutput is the output for the habit_stats tool.
type HabitStatsOutput struct {
	Habits []HabitStats `json:"habits" jsonschema:"stats per habit"`
}

func handleHabitStats(files *store.FileStore) mcp.ToolHandlerFor[HabitStatsInput, HabitStatsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input HabitStatsInput) (*mcp.CallToolResult, HabitStatsOutput, error) {
		tracker, err := files.Load()
		if err != nil {
			return nil, HabitStatsOutput{}, fmt.Errorf("loading habits: %w", err)
		}

		stats := buildStats(tracker, time.Now())
		if input.Name != "" {
			for _, s := range stats {
				if s.Name == input.Name {
					return nil, HabitStatsOutput{Habits: []HabitStats{s}}, nil
				}
			}
			return nil, HabitStatsOutput{}, fmt.Errorf("%w: %q", habit.ErrUnknownHabit, input.Name)
		}

		return nil, HabitStatsOutput{Habits: stats}, nil
	}
}

// --- add_habit tool ---

// AddHabitInput is the input for the add_habit tool.
type AddHabitInput struct {
	Name string `json:"name" jsonschema:"name of the habit to start tracking"`
}

// AddHabitOutput is the output for the add_habit tool.
type AddHabitOutput struct {
	Habit   string `json:"habit"   jsonschema:"habit name as stored"`
	Message string `json:"message" jsonschema:"confirmation message"`
}

func handleAddHabit(files *store.FileStore) mcp.ToolHandlerFor[AddHabitInput, AddHabitOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input AddHabitInput) (*mcp.CallToolResult, AddHabitOutput, error) {
		tracker, err := files.Load()
		if err != nil {
			return nil, AddHabitOutput{}, fmt.Errorf("loading habits: %w", err)
		}

		h, err := tracker.AddHabit(input.Name)
		if err != nil {
			return nil, AddHabitOutput{}, err
		}

		if err := files.Save(tracker); err != nil {
			return nil, AddHabitOutput{}, fmt.Errorf("saving habits: %w", err)
		}

		return nil, AddHabitOutput{
			Habit:   h.Name,
			Message: fmt.Sprintf("Added habit %q", h.Name),
		}, nil
	}
}

// --- mark_done tool ---

// MarkDoneInput is the input for the mark_done tool.
type MarkDoneInput struct {
	Name string `json:"name" jsonschema:"name of the habit to mark complete for today"`
}

// MarkDoneOutput is the output for the mark_done tool.
type MarkDoneOutput struct {
	Habit  string `json:"habit"  jsonschema:"habit name"`
	Date   string `json:"date"   jsonschema:"completion date recorded (YYYY-MM-DD)"`
	Total  int    `json:"total"  jsonschema:"total completions after recording"`
	Streak int    `json:"streak" jsonschema:"current streak after recording"`
}

func handleMarkDone(files *store.FileStore) mcp.ToolHandlerFor[MarkDoneInput, MarkDoneOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input MarkDoneInput) (*mcp.CallToolResult, MarkDoneOutput, error) {
		tracker, err := files.Load()
		if err != nil {
			return nil, MarkDoneOutput{}, fmt.Errorf("loading habits: %w", err)
		}

		today := time.Now()
		if err := tracker.MarkDone(input.Name, today); err != nil {
			return nil, MarkDoneOutput{}, err
		}

		if err := files.Save(tracker); err != nil {
			return nil, MarkDoneOutput{}, fmt.Errorf("saving habits: %w", err)
		}

		h, _ := tracker.Get(input.Name)
		return nil, MarkDoneOutput{
			Habit:  h.Name,
			Date:   habit.Day(today),
			Total:  h.Total(),
			Streak: h.Streak(today),
		}, nil
	}
}
