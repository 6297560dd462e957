// Package token defines the lexical atoms produced by the regex tokenizer.
package token

import (
	"fmt"
	"strconv"
)

// Type identifies the kind of a Token.
type Type int

const (
	// End is the sentinel returned once the source is exhausted.
	End Type = iota

	SingleCharacter
	AnyCharacter
	EpsilonAtStart
	EpsilonAtEnd
	EpsilonAtWordBoundary
	EpsilonNotAtWordBoundary
	ShorthandDigitCharacter
	ShorthandNotDigitCharacter
	ShorthandSpaceCharacter
	ShorthandNotSpaceCharacter
	ShorthandWordCharacter
	ShorthandNotWordCharacter
	KleeneStarRepetition
	PlusRepetition
	QuestionMarkRepetition
	OpenCountedRepetition
	CloseCountedRepetition
	RepetitionCountSeparator
	RepetitionCount
	OpenCharacterClass
	CloseCharacterClass
	NegateCharacterClass
	CharacterRangeSeparator
	Or
	OpenGroup
	CloseGroup
	OpenPositiveLookahead
	OpenNonCapturingGroup
	Backreference
	Invalid
)

var typeNames = map[Type]string{
	End:                        "End",
	SingleCharacter:            "SingleCharacter",
	AnyCharacter:               "AnyCharacter",
	EpsilonAtStart:             "EpsilonAtStart",
	EpsilonAtEnd:               "EpsilonAtEnd",
	EpsilonAtWordBoundary:      "EpsilonAtWordBoundary",
	EpsilonNotAtWordBoundary:   "EpsilonNotAtWordBoundary",
	ShorthandDigitCharacter:    "ShorthandDigitCharacter",
	ShorthandNotDigitCharacter: "ShorthandNotDigitCharacter",
	ShorthandSpaceCharacter:    "ShorthandSpaceCharacter",
	ShorthandNotSpaceCharacter: "ShorthandNotSpaceCharacter",
	ShorthandWordCharacter:     "ShorthandWordCharacter",
	ShorthandNotWordCharacter:  "ShorthandNotWordCharacter",
	KleeneStarRepetition:       "KleeneStarRepetition",
	PlusRepetition:             "PlusRepetition",
	QuestionMarkRepetition:     "QuestionMarkRepetition",
	OpenCountedRepetition:      "OpenCountedRepetition",
	CloseCountedRepetition:     "CloseCountedRepetition",
	RepetitionCountSeparator:   "RepetitionCountSeparator",
	RepetitionCount:            "RepetitionCount",
	OpenCharacterClass:         "OpenCharacterClass",
	CloseCharacterClass:        "CloseCharacterClass",
	NegateCharacterClass:       "NegateCharacterClass",
	CharacterRangeSeparator:    "CharacterRangeSeparator",
	Or:                         "Or",
	OpenGroup:                  "OpenGroup",
	CloseGroup:                 "CloseGroup",
	OpenPositiveLookahead:      "OpenPositiveLookahead",
	OpenNonCapturingGroup:      "OpenNonCapturingGroup",
	Backreference:              "Backreference",
	Invalid:                    "Invalid",
}

// String returns the symbolic name of t, or "Type(n)" if t is unknown.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Token is a single lexical atom. Only the field relevant to Type is populated:
// Char for SingleCharacter, Count for RepetitionCount, Group for Backreference,
// Message for Invalid.
type Token struct {
	Type    Type
	Char    byte
	Count   uint
	Group   uint
	Message string
}

// New returns a payload-free token of the given type.
func New(t Type) Token {
	return Token{Type: t}
}

// NewSingleCharacter returns a SingleCharacter token carrying ch.
func NewSingleCharacter(ch byte) Token {
	return Token{Type: SingleCharacter, Char: ch}
}

// NewRepetitionCount returns a RepetitionCount token carrying n.
func NewRepetitionCount(n uint) Token {
	return Token{Type: RepetitionCount, Count: n}
}

// NewBackreference returns a Backreference token carrying group.
func NewBackreference(group uint) Token {
	return Token{Type: Backreference, Group: group}
}

// NewInvalid returns an Invalid token carrying message.
func NewInvalid(message string) Token {
	return Token{Type: Invalid, Message: message}
}

// String renders a Token for diagnostics and test failure messages.
func (t Token) String() string {
	switch t.Type {
	case SingleCharacter:
		return fmt.Sprintf("SingleCharacter(%q)", t.Char)
	case RepetitionCount:
		return fmt.Sprintf("RepetitionCount(%d)", t.Count)
	case Backreference:
		return fmt.Sprintf("Backreference(%d)", t.Group)
	case Invalid:
		return fmt.Sprintf("Invalid(%q)", t.Message)
	default:
		return t.Type.String()
	}
}
