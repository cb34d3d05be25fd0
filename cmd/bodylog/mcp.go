// ABOUTME: CLI command for running the MCP server.
// ABOUTME: Exposes the entry log to MCP-compatible AI assistants over stdio.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/bodylog/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server on stdio.

Add to your Claude Desktop config:

  {
    "mcpServers": {
      "bodylog": { "command": "bodylog", "args": ["mcp"] }
    }
  }

TOOLS:

  log_entry        Record an observation
  query_entries    List observations in a window
  get_series       Extract a metric series for plotting
  get_report       Render the markdown period report
  delete_entries   Delete by id, range, or all
  set_threshold    Update one abnormality threshold

RESOURCES:

  bodylog://recent    Last 14 days with abnormality flags
  bodylog://config    Active metrics and thresholds
  bodylog://profile   Profile height`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := mcp.NewServer(st, cfg, profile)
		if err := server.Serve(cmd.Context()); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
