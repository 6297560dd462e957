package crosswordsolver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetErrorFormat(t *testing.T) {
	err := NewAlphabetError("alphabet must not be empty")
	msg := err.Error()

	assert.True(t, strings.HasPrefix(msg, "ERROR:\n"))
	assert.False(t, strings.HasSuffix(msg, "\n"))
	assert.Contains(t, msg, "alphabet must not be empty")
}

func TestGridStructureErrorFormat(t *testing.T) {
	err := NewGridStructureError("row lengths differ")
	msg := err.Error()

	assert.True(t, strings.HasPrefix(msg, "ERROR:\n"))
	assert.False(t, strings.HasSuffix(msg, "\n"))
}

func TestRegexStructureErrorFormat(t *testing.T) {
	err := NewRegexStructureError("unbalanced group")
	msg := err.Error()

	assert.True(t, strings.HasPrefix(msg, "ERROR:\n"))
	assert.False(t, strings.HasSuffix(msg, "\n"))
}

func TestInputFileErrorWithoutLine(t *testing.T) {
	err := NewInputFileError("file not found")
	msg := err.Error()

	assert.True(t, strings.HasPrefix(msg, "ERROR:\n"))
	assert.False(t, strings.HasSuffix(msg, "\n"))
	assert.Contains(t, msg, "file not found")
}

func TestInputFileErrorWithLine(t *testing.T) {
	err := NewInputFileLineError("grid.txt", 3, "AB CD", "row too short")
	msg := err.Error()

	assert.True(t, strings.HasPrefix(msg, "ERROR:\n"))
	assert.False(t, strings.HasSuffix(msg, "\n"))
	assert.Contains(t, msg, "'grid.txt'")
	assert.Contains(t, msg, "line 3")
	assert.Contains(t, msg, "'AB CD'")
	assert.Contains(t, msg, "row too short")
}

func TestRegexParseErrorFormat(t *testing.T) {
	const errorPos = 2
	err := NewRegexParseError("bad escape", `A\qB`, errorPos)
	msg := err.Error()

	assert.True(t, strings.HasPrefix(msg, "ERROR:\n"))
	assert.False(t, strings.HasSuffix(msg, "\n"))
	assert.Contains(t, msg, "bad escape")
	assert.Contains(t, msg, `'A\qB'`)

	lines := strings.Split(msg, "\n")
	quoteLine := lines[len(lines)-2]
	caretLine := lines[len(lines)-1]
	assert.Equal(t, "  ", caretLine[:2])
	assert.True(t, strings.HasSuffix(caretLine, "^"))

	// The caret must land directly under regex[errorPos] in the quoted
	// line above, not one column to its left.
	caretColumn := strings.Index(caretLine, "^")
	require.Equal(t, 9+errorPos, caretColumn)
	assert.Equal(t, byte('q'), quoteLine[caretColumn])
}

func TestCommandLineErrorFormat(t *testing.T) {
	err := NewCommandLineError("unknown option '--bogus'", "usage: tokenredump [options] <regex>")
	msg := err.Error()

	assert.True(t, strings.HasPrefix(msg, "ERROR:\n"))
	assert.False(t, strings.HasSuffix(msg, "\n"))
	assert.Contains(t, msg, "unknown option")
	assert.True(t, strings.HasSuffix(msg, "usage: tokenredump [options] <regex>"))
}
