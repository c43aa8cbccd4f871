package lint

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatterMeta is the YAML metadata block skill documents declare.
type frontmatterMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// splitFrontmatter separates the leading YAML block from the document.
// ok is false when the document does not open with the delimiter; closed is
// false when the opening delimiter is never matched by a closing line.
func splitFrontmatter(content string) (block string, closed, ok bool) {
	if !strings.HasPrefix(content, frontmatterOpen) {
		return "", false, false
	}
	rest := content[len(frontmatterOpen):]
	if end := strings.Index(rest, "\n---\n"); end >= 0 {
		return rest[:end], true, true
	}
	// Allow EOF immediately after the closing delimiter.
	if strings.HasSuffix(rest, "\n---") {
		return strings.TrimSuffix(rest, "\n---"), true, true
	}
	return "", false, true
}

// checkFrontmatter enforces the leading frontmatter rules shared by agent
// and skill documents: the document must open with the delimiter and the
// block must decode as YAML. Skill documents must additionally declare name
// and description.
func checkFrontmatter(content, display string, skill bool, report *Report) {
	block, closed, ok := splitFrontmatter(content)
	if !ok {
		report.add(display, "missing_frontmatter", "%s: missing YAML frontmatter", display)
		return
	}

	var meta frontmatterMeta
	if !closed || yaml.Unmarshal([]byte(block), &meta) != nil {
		report.add(display, "malformed_frontmatter", "%s: malformed YAML frontmatter", display)
		return
	}
	if !skill {
		return
	}

	if strings.TrimSpace(meta.Name) == "" {
		report.add(display, "missing_frontmatter_name", "%s: frontmatter missing 'name'", display)
	}
	if strings.TrimSpace(meta.Description) == "" {
		report.add(display, "missing_frontmatter_description", "%s: frontmatter missing 'description'", display)
	}
}
