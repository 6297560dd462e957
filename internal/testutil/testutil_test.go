package testutil

import (
	"testing"

	"github.com/antoine-trux/regexcrossword-tokenizer/token"
)

func TestAssertTokensEqualPasses(t *testing.T) {
	want := []token.Token{token.NewSingleCharacter('A'), token.New(token.End)}
	got := []token.Token{token.NewSingleCharacter('A'), token.New(token.End)}
	AssertTokensEqual(t, want, got)
}

func TestAssertTokenKindsEqualPasses(t *testing.T) {
	want := []token.Token{token.NewSingleCharacter('A'), token.New(token.End)}
	got := []token.Token{token.NewSingleCharacter('Z'), token.New(token.End)}
	AssertTokenKindsEqual(t, want, got)
}

func TestBuildSingleCharacters(t *testing.T) {
	got := BuildSingleCharacters("AB")
	want := []token.Token{token.NewSingleCharacter('A'), token.NewSingleCharacter('B')}
	AssertTokensEqual(t, want, got)
}
