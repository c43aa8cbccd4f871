package lint

import "slices"

// DefaultRoot is the workspace checked when no path argument is given.
const DefaultRoot = ".claude"

// Line ceilings per document category.
const (
	MaxAgentLines = 120
	MaxSkillLines = 500
)

// referenceHeadLines is the window, in lines, within which reference
// documents must mention "optional".
const referenceHeadLines = 15

const (
	frontmatterOpen   = "---\n"
	fenceMarker       = "```"
	capabilityHeading = "\n## Capability\n"
	referencesHeading = "\n## References\n"
	optionalMarker    = "optional"
)

// workflowVerbs are phrases signalling step-by-step procedural language,
// disallowed in CLAUDE.md. Matched case-insensitively as substrings.
var workflowVerbs = []string{
	"must then", "next,", "step 1", "step 2", "first,",
	"second,", "finally,", "afterward", "subsequently",
}

// proceduralSections are heading markers agent documents must not carry.
var proceduralSections = []string{"## procedure", "## workflow", "## steps"}

// successTerms are mandate-language phrases disallowed in SKILL.md. Skills
// describe capability; enforceable requirements belong elsewhere.
var successTerms = []string{
	"success criteria", "must ensure", "must verify",
	"requirement:", "requirements:", "you must",
}

// WorkflowVerbs returns the phrases disallowed in CLAUDE.md.
func WorkflowVerbs() []string {
	return slices.Clone(workflowVerbs)
}

// ProceduralSections returns the section markers disallowed in agent
// documents.
func ProceduralSections() []string {
	return slices.Clone(proceduralSections)
}

// SuccessTerms returns the phrases disallowed in skill documents.
func SuccessTerms() []string {
	return slices.Clone(successTerms)
}
