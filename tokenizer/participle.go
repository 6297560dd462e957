package tokenizer

import (
	"fmt"
	"io"
	"io/ioutil"

	participlelexer "github.com/alecthomas/participle/v2/lexer"
	"github.com/antoine-trux/regexcrossword-tokenizer/token"
)

// ParticipleLexer adapts a Tokenizer to participle/v2's lexer.Lexer
// interface, so that a regex token stream can be driven by participle-based
// tooling without this module building a grammar of its own. Grounded on
// the teacher module's own Lexer/LexerDefinition split (parser/lexer).
type ParticipleLexer struct {
	filename string
	t        *Tokenizer
}

// NewParticipleLexer wraps source in a Tokenizer exposed through
// participle/v2's lexer.Lexer interface.
func NewParticipleLexer(filename, source string) *ParticipleLexer {
	return &ParticipleLexer{filename: filename, t: New(source)}
}

// Next implements participle/v2/lexer.Lexer.
func (l *ParticipleLexer) Next() (participlelexer.Token, error) {
	offset := l.t.Position()
	tok := l.t.Consume()

	tokenType := participlelexer.EOF
	if tok.Type != token.End {
		tokenType = participleType(tok.Type)
	}

	return participlelexer.Token{
		Type:  tokenType,
		Value: tok.String(),
		Pos: participlelexer.Position{
			Filename: l.filename,
			Offset:   offset,
		},
	}, nil
}

// participleType maps a token.Type to a negative participle token type,
// keeping clear of the positive rune literals participle's default lexer
// would otherwise use and of lexer.EOF itself.
func participleType(tt token.Type) participlelexer.TokenType {
	return participlelexer.TokenType(-int(tt) - 1)
}

// ParticipleLexerDefinition implements participle/v2/lexer.Definition over
// the regex tokenizer.
type ParticipleLexerDefinition struct{}

// Lex implements lexer.Definition.
func (d *ParticipleLexerDefinition) Lex(filename string, r io.Reader) (participlelexer.Lexer, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading regex source: %w", err)
	}
	return NewParticipleLexer(filename, string(data)), nil
}

// LexString implements lexer.Definition.
func (d *ParticipleLexerDefinition) LexString(filename, source string) (participlelexer.Lexer, error) {
	return NewParticipleLexer(filename, source), nil
}

// LexBytes implements lexer.Definition.
func (d *ParticipleLexerDefinition) LexBytes(filename string, data []byte) (participlelexer.Lexer, error) {
	return NewParticipleLexer(filename, string(data)), nil
}

// Symbols implements lexer.Definition, mapping each token.Type to its
// symbolic name so participle's error messages can name token kinds.
func (d *ParticipleLexerDefinition) Symbols() map[string]participlelexer.TokenType {
	symbols := make(map[string]participlelexer.TokenType, len(symbolNames)+1)
	symbols["EOF"] = participlelexer.EOF
	for tt, name := range symbolNames {
		symbols[name] = participleType(tt)
	}
	return symbols
}

var symbolNames = map[token.Type]string{
	token.SingleCharacter:            "SingleCharacter",
	token.AnyCharacter:               "AnyCharacter",
	token.EpsilonAtStart:             "EpsilonAtStart",
	token.EpsilonAtEnd:               "EpsilonAtEnd",
	token.EpsilonAtWordBoundary:      "EpsilonAtWordBoundary",
	token.EpsilonNotAtWordBoundary:   "EpsilonNotAtWordBoundary",
	token.ShorthandDigitCharacter:    "ShorthandDigitCharacter",
	token.ShorthandNotDigitCharacter: "ShorthandNotDigitCharacter",
	token.ShorthandSpaceCharacter:    "ShorthandSpaceCharacter",
	token.ShorthandNotSpaceCharacter: "ShorthandNotSpaceCharacter",
	token.ShorthandWordCharacter:     "ShorthandWordCharacter",
	token.ShorthandNotWordCharacter:  "ShorthandNotWordCharacter",
	token.KleeneStarRepetition:       "KleeneStarRepetition",
	token.PlusRepetition:             "PlusRepetition",
	token.QuestionMarkRepetition:     "QuestionMarkRepetition",
	token.OpenCountedRepetition:      "OpenCountedRepetition",
	token.CloseCountedRepetition:     "CloseCountedRepetition",
	token.RepetitionCountSeparator:   "RepetitionCountSeparator",
	token.RepetitionCount:            "RepetitionCount",
	token.OpenCharacterClass:         "OpenCharacterClass",
	token.CloseCharacterClass:        "CloseCharacterClass",
	token.NegateCharacterClass:       "NegateCharacterClass",
	token.CharacterRangeSeparator:    "CharacterRangeSeparator",
	token.Or:                         "Or",
	token.OpenGroup:                  "OpenGroup",
	token.CloseGroup:                 "CloseGroup",
	token.OpenPositiveLookahead:      "OpenPositiveLookahead",
	token.OpenNonCapturingGroup:      "OpenNonCapturingGroup",
	token.Backreference:              "Backreference",
	token.Invalid:                    "Invalid",
}
