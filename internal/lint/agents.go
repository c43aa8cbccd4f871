package lint

import (
	"io/fs"
	"path"
	"strings"
)

// checkAgents validates every markdown document directly under agents/.
// The directory is optional: an absent directory or unreadable listing
// yields no errors. Non-markdown entries and subdirectories are ignored.
func checkAgents(fsys fs.FS, root string, report *Report) {
	if !isDir(fsys, "agents") {
		return
	}
	entries, err := fs.ReadDir(fsys, "agents")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if !isMarkdown(entry.Name()) {
			continue
		}
		display := displayPath(root, "agents", entry.Name())

		content, ok := readDocument(fsys, path.Join("agents", entry.Name()))
		if !ok {
			continue
		}

		checkFrontmatter(content, display, false, report)

		if lines := countLines(content); lines > MaxAgentLines {
			report.add(display, "agent_too_long",
				"%s: too long (%d lines, max %d)", display, lines, MaxAgentLines)
		}

		if strings.Contains(content, fenceMarker) {
			report.add(display, "fenced_code_block",
				"%s: contains fenced code block", display)
		}

		lower := strings.ToLower(content)
		for _, section := range proceduralSections {
			if strings.Contains(lower, section) {
				report.add(display, "procedural_section",
					"%s: contains procedural section '%s'", display, section)
			}
		}
	}
}
