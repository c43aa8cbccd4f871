package commands

import (
	"github.com/spf13/cobra"

	"github.com/moasq/claudelint/internal/lintserver"
)

var mcpCmd = &cobra.Command{
	Use:    "mcp",
	Short:  "Run MCP servers (used internally by Claude Code)",
	Hidden: true,
}

var mcpLintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Run the lint MCP server",
	Long:  "Starts the claudelint MCP server over stdio. Used by Claude Code to validate workspaces via typed tool calls.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return lintserver.Run(cmd.Context())
	},
}

func init() {
	mcpCmd.AddCommand(mcpLintCmd)
}
