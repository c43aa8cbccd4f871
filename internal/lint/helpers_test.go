package lint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountLines(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"a", 1},
		{"a\n", 1},
		{"a\nb", 2},
		{"a\nb\n", 2},
		{"a\n\nb\n", 3},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, countLines(tc.content), "content %q", tc.content)
	}
}

func TestIsMarkdown(t *testing.T) {
	assert.True(t, isMarkdown("agent.md"))
	assert.True(t, isMarkdown("a.b.md"))
	assert.False(t, isMarkdown("agent.MD"))
	assert.False(t, isMarkdown("agent.txt"))
	assert.False(t, isMarkdown(".md"))
	assert.False(t, isMarkdown("md"))
}

func TestHeadContainsOptional(t *testing.T) {
	assert.True(t, headContainsOptional("This file is optional.\n"))
	assert.True(t, headContainsOptional("OPTIONAL reading.\n"))
	assert.True(t, headContainsOptional(strings.Repeat("x\n", 14)+"optional\n"))
	assert.False(t, headContainsOptional(strings.Repeat("x\n", 15)+"optional\n"))
	assert.False(t, headContainsOptional("# Title\n\nRequired reading.\n"))
}
