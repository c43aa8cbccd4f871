package lint

import (
	"io/fs"
	"strings"
)

// checkClaudeMD validates the required top-level CLAUDE.md. Global context
// is always loaded, so it must stay declarative: no workflow language, no
// code fences.
func checkClaudeMD(fsys fs.FS, root string, report *Report) {
	display := displayPath(root, "CLAUDE.md")

	if !isRegularFile(fsys, "CLAUDE.md") {
		report.add(display, "missing_claude_md", "missing %s", display)
		return
	}

	content, ok := readDocument(fsys, "CLAUDE.md")
	if !ok {
		report.add(display, "unreadable_claude_md", "cannot read %s", display)
		return
	}

	lower := strings.ToLower(content)
	for _, verb := range workflowVerbs {
		if strings.Contains(lower, verb) {
			report.add(display, "workflow_verb",
				"%s: contains workflow verb '%s'", display, verb)
		}
	}

	if strings.Contains(content, fenceMarker) {
		report.add(display, "fenced_code_block",
			"%s: contains fenced code block", display)
	}
}
