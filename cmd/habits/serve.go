// Package main provides the entry point for the habits CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	habitsmcp "github.com/gorewood/habits/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run habits as a Model Context Protocol (MCP) server over stdio.

This exposes habit operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "habits": {
        "command": "habits",
        "args": ["serve"]
      }
    }
  }

Available tools: add_habit, mark_done, habit_stats, list_habits`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			files, err := newStore(cmd)
			if err != nil {
				return err
			}
			server := habitsmcp.NewServer(buildVersion(), files)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
