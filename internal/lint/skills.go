package lint

import (
	"io/fs"
	"path"
	"strings"
)

// checkSkills validates every skill directory under skills/. The directory
// is optional with the same silent-skip semantics as agents/. Non-directory
// entries are ignored.
func checkSkills(fsys fs.FS, root string, report *Report) {
	if !isDir(fsys, "skills") {
		return
	}
	entries, err := fs.ReadDir(fsys, "skills")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		checkSkillDir(fsys, root, entry.Name(), report)
	}
}

// checkSkillDir validates one skills/<name>/ directory and, when present,
// its references/ subdirectory.
func checkSkillDir(fsys fs.FS, root, name string, report *Report) {
	skillDisplay := displayPath(root, "skills", name)
	mdName := path.Join("skills", name, "SKILL.md")
	mdDisplay := displayPath(root, "skills", name, "SKILL.md")

	if !isRegularFile(fsys, mdName) {
		report.add(skillDisplay, "missing_skill_md", "%s: missing SKILL.md", skillDisplay)
		return
	}

	// Unlike CLAUDE.md, an unreadable SKILL.md is skipped silently.
	content, ok := readDocument(fsys, mdName)
	if !ok {
		return
	}

	checkFrontmatter(content, mdDisplay, true, report)

	if !strings.Contains(content, capabilityHeading) {
		report.add(mdDisplay, "missing_capability_section",
			"%s: missing '## Capability' section", mdDisplay)
	}

	if lines := countLines(content); lines > MaxSkillLines {
		report.add(mdDisplay, "skill_too_long",
			"%s: too long (%d lines, max %d)", mdDisplay, lines, MaxSkillLines)
	}

	if strings.Contains(content, fenceMarker) {
		report.add(mdDisplay, "fenced_code_block",
			"%s: contains fenced code block", mdDisplay)
	}

	lower := strings.ToLower(content)
	for _, term := range successTerms {
		if strings.Contains(lower, term) {
			report.add(mdDisplay, "success_criteria_term",
				"%s: contains success criteria term '%s'", mdDisplay, term)
		}
	}

	refsName := path.Join("skills", name, "references")
	if isDir(fsys, refsName) {
		if !strings.Contains(content, referencesHeading) {
			report.add(mdDisplay, "missing_references_section",
				"%s: has references/ but no '## References' section", mdDisplay)
		}
		checkReferences(fsys, refsName, displayPath(root, "skills", name, "references"), report)
	}
}
