// Package testutil provides small assertion helpers shared by this
// module's test files, adapted from the teacher's parser/testutil helper
// (assertNodeType) for comparing tagged token values instead of parsed
// MIB nodes.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/antoine-trux/regexcrossword-tokenizer/token"
)

// AssertTokensEqual compares two token slices element by element,
// reporting a non-fatal failure for a length difference and for every
// differing element of the common prefix, so a single test run surfaces
// every mismatch rather than stopping at the first one.
func AssertTokensEqual(t *testing.T, want, got []token.Token) {
	t.Helper()

	if len(want) != len(got) {
		t.Errorf("token count mismatch: want %d, got %d", len(want), len(got))
	}

	n := len(want)
	if len(got) < n {
		n = len(got)
	}
	for i := 0; i < n; i++ {
		assert.Equal(t, want[i], got[i], "token %d mismatch", i)
	}
}

// AssertTokenKindsEqual compares two token slices by Type alone, ignoring
// payload, for tests that only care about the shape of a token stream.
func AssertTokenKindsEqual(t *testing.T, want, got []token.Token) {
	t.Helper()

	if len(want) != len(got) {
		t.Errorf("token count mismatch: want %d, got %d", len(want), len(got))
		return
	}
	for i := range want {
		assert.Equal(t, want[i].Type, got[i].Type, "token %d kind mismatch", i)
	}
}

// BuildSingleCharacters returns a token.Token slice with one
// SingleCharacter token per byte of chars, a convenience for keeping test
// tables readable when a scenario's expected output is a long literal run.
func BuildSingleCharacters(chars string) []token.Token {
	out := make([]token.Token, len(chars))
	for i := 0; i < len(chars); i++ {
		out[i] = token.NewSingleCharacter(chars[i])
	}
	return out
}
