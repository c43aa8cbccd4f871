package lint

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// checkReferences validates reference documents inside one skill's
// references/ directory. References are elective, so each document must
// announce itself as optional near the top.
func checkReferences(fsys fs.FS, dir, display string, report *Report) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if !isMarkdown(entry.Name()) {
			continue
		}
		content, ok := readDocument(fsys, path.Join(dir, entry.Name()))
		if !ok {
			continue
		}

		if !headContainsOptional(content) {
			docDisplay := filepath.Join(display, entry.Name())
			report.add(docDisplay, "reference_missing_optional",
				"%s: should state 'optional' near the top", docDisplay)
		}
	}
}

// headContainsOptional scans the first referenceHeadLines lines for the
// optional marker, case-insensitively.
func headContainsOptional(content string) bool {
	lines := strings.Split(content, "\n")
	if len(lines) > referenceHeadLines {
		lines = lines[:referenceHeadLines]
	}
	head := strings.ToLower(strings.Join(lines, "\n"))
	return strings.Contains(head, optionalMarker)
}
