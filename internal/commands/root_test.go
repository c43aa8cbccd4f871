package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with captured streams.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestValidWorkspacePasses(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "CLAUDE.md"),
		"# Project Context\n\nDeclarative description only.\n")

	stdout, stderr, err := runCLI(t, root)
	if err != nil {
		t.Fatalf("expected success, got %v (stderr: %q)", err, stderr)
	}
	if want := "ok: " + root + " passes all checks\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
	if stderr != "" {
		t.Fatalf("stderr = %q, want empty", stderr)
	}
}

func TestMissingClaudeMD(t *testing.T) {
	root := t.TempDir()

	stdout, stderr, err := runCLI(t, root)
	if err == nil {
		t.Fatal("expected an error for an empty workspace")
	}
	want := "error: missing " + filepath.Join(root, "CLAUDE.md") + "\n\n1 error(s)\n"
	if stderr != want {
		t.Fatalf("stderr = %q, want %q", stderr, want)
	}
	if stdout != "" {
		t.Fatalf("stdout = %q, want empty", stdout)
	}
}

func TestOversizedSkillWithFence(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "CLAUDE.md"), "# Context\n\nDeclarative.\n")

	var b strings.Builder
	b.WriteString("---\nname: foo\ndescription: Oversized fixture.\n---\n# Foo\n\n## Capability\nFixture.\n\n```\ncode\n```\n")
	for i := 0; i < 600; i++ {
		b.WriteString("filler\n")
	}
	writeFile(t, filepath.Join(root, "skills", "foo", "SKILL.md"), b.String())

	_, stderr, err := runCLI(t, root)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(stderr, ": too long (") || !strings.Contains(stderr, "contains fenced code block") {
		t.Fatalf("stderr missing expected findings: %q", stderr)
	}
	if !strings.HasSuffix(stderr, "\n2 error(s)\n") {
		t.Fatalf("stderr summary wrong: %q", stderr)
	}
}

func TestNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	writeFile(t, file, "not a workspace\n")

	stdout, stderr, err := runCLI(t, file)
	if err == nil {
		t.Fatal("expected an error for a non-directory path")
	}
	if want := "error: " + file + " is not a directory\n"; stderr != want {
		t.Fatalf("stderr = %q, want %q", stderr, want)
	}
	if stdout != "" {
		t.Fatalf("stdout = %q, want empty", stdout)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
