// Package tokenizer implements a context-sensitive, hand-written scanner for
// a Perl-compatible subset of regular-expression syntax. It produces a
// stream of token.Token values with single-token peek and unlimited
// push-back, in the style of the lexer this package is grounded on
// (github.com/lukeod/gosmi's parser/lexer), but driving byte-level
// next/consume/backup primitives instead of a rune-based scan since the
// tokenizer's contract is byte-wise (see token.SingleCharacter).
package tokenizer

import (
	"github.com/antoine-trux/regexcrossword-tokenizer/internal/utils"
	"github.com/antoine-trux/regexcrossword-tokenizer/token"
)

// Tokenizer scans a regex source string into a sequence of tokens. A
// Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	source string
	pos    int

	inCountedRepetition bool
	inCharacterClass    bool

	prevIsOpenCharacterClass      bool
	prevIsNegateCharacterClass    bool
	prevIsCharacterRangeSeparator bool
	prevIsEndOfCharacterRange     bool

	pushedBack []token.Token
}

// New returns a Tokenizer positioned at the start of source.
func New(source string) *Tokenizer {
	return &Tokenizer{source: source}
}

// Position returns the current cursor: the byte offset that the next
// from-source scan would read. Push-back does not affect it.
func (t *Tokenizer) Position() int {
	return t.pos
}

// Consume returns the next token and advances the tokenizer. If tokens
// have been pushed back, the most recently pushed one is returned first.
// Once the source is exhausted, Consume returns token.End on every call.
func (t *Tokenizer) Consume() token.Token {
	if n := len(t.pushedBack); n > 0 {
		tok := t.pushedBack[n-1]
		t.pushedBack = t.pushedBack[:n-1]
		return tok
	}
	if t.atEnd() {
		return token.New(token.End)
	}
	return t.consumeFromSource()
}

// Peek returns the next token without advancing the tokenizer. token.End
// is never pushed back, so peeking at the end of input and then consuming
// still yields token.End.
func (t *Tokenizer) Peek() token.Token {
	tok := t.Consume()
	t.PushBack(tok)
	return tok
}

// PushBack places tok at the head of the stream, to be redelivered by the
// next Consume. token.End is never stored.
func (t *Tokenizer) PushBack(tok token.Token) {
	if tok.Type == token.End {
		return
	}
	t.pushedBack = append(t.pushedBack, tok)
}

// PushBackMany pushes the elements of tokens back such that tokens[0] is
// the first one redelivered by a subsequent Consume.
func (t *Tokenizer) PushBackMany(tokens []token.Token) {
	for i := len(tokens) - 1; i >= 0; i-- {
		t.PushBack(tokens[i])
	}
}

func (t *Tokenizer) atEnd() bool {
	return t.pos >= len(t.source)
}

func (t *Tokenizer) numRemaining() int {
	return len(t.source) - t.pos
}

func (t *Tokenizer) peekCharAt(offset int) byte {
	return t.source[t.pos+offset]
}

func (t *Tokenizer) peekChar() byte {
	return t.peekCharAt(0)
}

func (t *Tokenizer) consumeChar() byte {
	c := t.source[t.pos]
	t.pos++
	return c
}

func (t *Tokenizer) pushBackChar() {
	t.pos--
}

func (t *Tokenizer) nextThreeAreOctalDigits() bool {
	return t.numRemaining() >= 3 &&
		utils.IsOctalDigit(t.peekCharAt(0)) &&
		utils.IsOctalDigit(t.peekCharAt(1)) &&
		utils.IsOctalDigit(t.peekCharAt(2))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// consumeFromSource scans exactly one token from the source and updates
// the lexical-mode bookkeeping of §3.2: inCharacterClass,
// inCountedRepetition, and the four previous-token flags that disambiguate
// ']', '^', and '-' inside a character class.
func (t *Tokenizer) consumeFromSource() token.Token {
	if t.inCharacterClass {
		tok := t.consumeInCharacterClass()

		prevWasRangeSeparator := t.prevIsCharacterRangeSeparator

		t.inCharacterClass = tok.Type != token.CloseCharacterClass
		t.prevIsOpenCharacterClass = false
		t.prevIsNegateCharacterClass = tok.Type == token.NegateCharacterClass
		t.prevIsEndOfCharacterRange = prevWasRangeSeparator && tok.Type == token.SingleCharacter
		t.prevIsCharacterRangeSeparator = tok.Type == token.CharacterRangeSeparator

		return tok
	}

	tok := t.consumeOutsideCharacterClass()

	t.inCharacterClass = tok.Type == token.OpenCharacterClass
	t.prevIsOpenCharacterClass = tok.Type == token.OpenCharacterClass
	t.prevIsNegateCharacterClass = false
	t.prevIsCharacterRangeSeparator = false
	t.prevIsEndOfCharacterRange = false

	return tok
}

func (t *Tokenizer) consumeInCharacterClass() token.Token {
	c := t.consumeChar()

	switch c {
	case ']':
		if t.prevIsOpenCharacterClass || t.prevIsNegateCharacterClass {
			return token.NewSingleCharacter(c)
		}
		return token.New(token.CloseCharacterClass)

	case '^':
		if t.prevIsOpenCharacterClass {
			return token.New(token.NegateCharacterClass)
		}
		return token.NewSingleCharacter(c)

	case '-':
		if t.prevIsOpenCharacterClass || t.prevIsNegateCharacterClass || t.prevIsEndOfCharacterRange {
			return token.NewSingleCharacter(c)
		}
		if t.atEnd() || t.peekChar() == ']' {
			return token.NewSingleCharacter(c)
		}
		return token.New(token.CharacterRangeSeparator)

	case '\\':
		t.pushBackChar()
		return t.consumeEscape()

	default:
		return token.NewSingleCharacter(c)
	}
}

func (t *Tokenizer) consumeOutsideCharacterClass() token.Token {
	if t.inCountedRepetition {
		return t.consumeInCountedRepetition()
	}

	c := t.consumeChar()

	switch c {
	case '.':
		return token.New(token.AnyCharacter)
	case '^':
		return token.New(token.EpsilonAtStart)
	case '$':
		return token.New(token.EpsilonAtEnd)
	case '*':
		return token.New(token.KleeneStarRepetition)
	case '+':
		return token.New(token.PlusRepetition)
	case '?':
		return token.New(token.QuestionMarkRepetition)
	case '{':
		t.inCountedRepetition = true
		return token.New(token.OpenCountedRepetition)
	case '[':
		return token.New(token.OpenCharacterClass)
	case '|':
		return token.New(token.Or)
	case '(':
		return t.consumeOpenParen()
	case ')':
		return token.New(token.CloseGroup)
	case '\\':
		t.pushBackChar()
		return t.consumeEscape()
	default:
		return token.NewSingleCharacter(c)
	}
}

// consumeOpenParen resolves the '(' / '(?' / '(?=' / '(?:' family. The
// source only ever reports '(?...' as unsupported; this tokenizer
// additionally recognizes the two lookahead/non-capturing-group forms the
// downstream parser needs.
func (t *Tokenizer) consumeOpenParen() token.Token {
	if t.atEnd() || t.peekChar() != '?' {
		return token.New(token.OpenGroup)
	}

	if t.numRemaining() >= 2 {
		switch t.peekCharAt(1) {
		case '=':
			t.consumeChar()
			t.consumeChar()
			return token.New(token.OpenPositiveLookahead)
		case ':':
			t.consumeChar()
			t.consumeChar()
			return token.New(token.OpenNonCapturingGroup)
		}
	}

	t.consumeChar()
	return token.NewInvalid("construct '(?' is not supported")
}

func (t *Tokenizer) consumeInCountedRepetition() token.Token {
	c := t.consumeChar()

	if c == '}' {
		t.inCountedRepetition = false
		return token.New(token.CloseCountedRepetition)
	}
	if c == ',' {
		return token.New(token.RepetitionCountSeparator)
	}
	if !isDigit(c) {
		return token.NewInvalid("invalid token in counted repetition")
	}

	t.pushBackChar()
	return t.consumeRepetitionCount()
}

func (t *Tokenizer) consumeRepetitionCount() token.Token {
	start := t.pos
	for !t.atEnd() && isDigit(t.peekChar()) {
		t.consumeChar()
	}

	n, err := utils.StringToUnsigned[uint](t.source[start:t.pos])
	if err != nil {
		return token.NewInvalid("invalid repetition count")
	}
	return token.NewRepetitionCount(n)
}
