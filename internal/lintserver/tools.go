package lintserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/moasq/claudelint/internal/lint"
)

// checkWorkspaceInput is the input for the check_workspace tool.
type checkWorkspaceInput struct {
	Path string `json:"path,omitempty" jsonschema:"description=Workspace root to validate. Defaults to .claude in the current directory."`
}

// finding is one violation in tool output.
type finding struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type checkWorkspaceOutput struct {
	OK       bool      `json:"ok"`
	Path     string    `json:"path"`
	Findings []finding `json:"findings,omitempty"`
}

func handleCheckWorkspace(ctx context.Context, req *mcp.CallToolRequest, input checkWorkspaceInput) (*mcp.CallToolResult, checkWorkspaceOutput, error) {
	root := input.Path
	if root == "" {
		root = lint.DefaultRoot
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, checkWorkspaceOutput{}, fmt.Errorf("%s is not a directory", root)
	}

	report := lint.Check(os.DirFS(root), root)
	out := checkWorkspaceOutput{OK: !report.HasIssues(), Path: root}
	for _, issue := range report.Issues {
		out.Findings = append(out.Findings, finding{
			Path:    issue.Path,
			Code:    issue.Code,
			Message: issue.Message,
		})
	}
	return nil, out, nil
}

// listRulesInput is the (empty) input for the list_rules tool.
type listRulesInput struct{}

type listRulesOutput struct {
	WorkflowVerbs      []string `json:"workflow_verbs"`
	ProceduralSections []string `json:"procedural_sections"`
	SuccessTerms       []string `json:"success_criteria_terms"`
	MaxAgentLines      int      `json:"max_agent_lines"`
	MaxSkillLines      int      `json:"max_skill_lines"`
}

func handleListRules(ctx context.Context, req *mcp.CallToolRequest, input listRulesInput) (*mcp.CallToolResult, listRulesOutput, error) {
	return nil, listRulesOutput{
		WorkflowVerbs:      lint.WorkflowVerbs(),
		ProceduralSections: lint.ProceduralSections(),
		SuccessTerms:       lint.SuccessTerms(),
		MaxAgentLines:      lint.MaxAgentLines,
		MaxSkillLines:      lint.MaxSkillLines,
	}, nil
}
