// Package mcp provides a Model Context Protocol server for habits.
// It exposes tracker operations as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/habits/internal/store"
)

// NewServer creates an MCP server with all habits tools registered.
func NewServer(version string, files *store.FileStore) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "habits",
		Version: version,
	}, nil)
	registerTools(server, files)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all habits tools to the server.
func registerTools(server *mcp.Server, files *store.FileStore) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_habits",
		Description: "List the names of all tracked habits, sorted alphabetically.",
		Annotations: readOnlyAnnotations(),
	}, handleListHabits(files))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "habit_stats",
		Description: "Show total completions and current streak for every tracked habit.",
		Annotations: readOnlyAnnotations(),
	}, handleHabitStats(files))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_habit",
		Description: "Start tracking a new habit. Fails if a habit with that name already exists.",
		Annotations: writeAnnotations(),
	}, handleAddHabit(files))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "mark_done",
		Description: "Record today's completion for a habit. Fails if the habit is unknown or already marked done today.",
		Annotations: writeAnnotations(),
	}, handleMarkDone(files))
}
