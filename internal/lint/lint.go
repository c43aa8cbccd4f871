// Package lint validates a .claude/ directory structure.
//
// It enforces a layering model where global context is non-procedural,
// agents express perspective without workflows, skills describe
// capabilities without success criteria, and references are elective.
package lint

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Issue is a single validation finding.
type Issue struct {
	Path    string // display path of the offending file or directory
	Code    string // stable identifier, e.g. "missing_frontmatter"
	Message string // fully rendered error line
}

func (i Issue) String() string {
	return i.Message
}

// Report collects issues in traversal order: CLAUDE.md first, then agents,
// then skills, with each skill's references directly after it.
type Report struct {
	Issues []Issue
}

// HasIssues reports whether any checker found a violation.
func (r Report) HasIssues() bool {
	return len(r.Issues) > 0
}

func (r *Report) add(path, code, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Path:    path,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
}

// Check runs every checker against the workspace rooted at fsys and returns
// the aggregated report. root is the user-facing path of the workspace and
// is used only to render issue paths; callers pass os.DirFS(root) alongside
// it.
func Check(fsys fs.FS, root string) Report {
	var report Report
	checkClaudeMD(fsys, root, &report)
	checkAgents(fsys, root, &report)
	checkSkills(fsys, root, &report)
	return report
}

// readDocument reads a file fully as text. Content that is not valid UTF-8
// counts as unreadable.
func readDocument(fsys fs.FS, name string) (string, bool) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil || !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

// countLines counts newline-separated lines. A trailing newline does not
// open a new line.
func countLines(content string) int {
	if content == "" {
		return 0
	}
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}

// isMarkdown reports whether name carries the literal extension "md".
// Case-sensitive; a bare ".md" dotfile has no extension.
func isMarkdown(name string) bool {
	return len(name) > len(".md") && strings.HasSuffix(name, ".md")
}

func isRegularFile(fsys fs.FS, name string) bool {
	info, err := fs.Stat(fsys, name)
	return err == nil && info.Mode().IsRegular()
}

func isDir(fsys fs.FS, name string) bool {
	info, err := fs.Stat(fsys, name)
	return err == nil && info.IsDir()
}

// displayPath joins path elements under the user-supplied root for issue
// messages.
func displayPath(root string, elem ...string) string {
	return filepath.Join(append([]string{root}, elem...)...)
}
