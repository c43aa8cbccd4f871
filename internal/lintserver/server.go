// Package lintserver exposes the workspace linter over MCP so Claude Code
// can run checks through typed tool calls instead of shelling out and
// parsing text.
package lintserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Run starts the lint MCP server over stdio.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "claudelint",
			Version: "v1.0.0",
		},
		nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_workspace",
		Description: "Validate a .claude/ workspace directory. Checks CLAUDE.md for workflow verbs and code fences, agents/*.md for frontmatter, length, and procedural sections, skills/*/SKILL.md for frontmatter, the Capability section, length, and success-criteria terms, and references/*.md for the 'optional' marker. Returns every violation with a stable code. Read-only.",
	}, handleCheckWorkspace)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_rules",
		Description: "List the literal rule set the linter enforces: disallowed workflow verbs, procedural section markers, success criteria terms, and line ceilings. Does not touch the filesystem.",
	}, handleListRules)

	return server.Run(ctx, &mcp.StdioTransport{})
}
