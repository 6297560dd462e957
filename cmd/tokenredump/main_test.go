package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpTokensIncludesEndSentinel(t *testing.T) {
	var buf bytes.Buffer
	dumpTokens(&buf, "A*", false)

	out := buf.String()
	assert.Contains(t, out, "SingleCharacter")
	assert.Contains(t, out, "KleeneStarRepetition")
	assert.Contains(t, out, "End")
}

func TestDumpTokensVerbosePrefixesPosition(t *testing.T) {
	var buf bytes.Buffer
	dumpTokens(&buf, "A", true)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	for _, line := range lines {
		assert.True(t, strings.Contains(line, ": "), "expected position prefix in %q", line)
	}
}

func TestRunUnrecognizedOptionReturnsError(t *testing.T) {
	err := run([]string{"tokenredump", "--bogus", "A"})
	assert.Error(t, err)
}

func TestRunHelp(t *testing.T) {
	err := run([]string{"tokenredump", "--help"})
	assert.NoError(t, err)
}
