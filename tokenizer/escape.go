package tokenizer

import (
	"github.com/antoine-trux/regexcrossword-tokenizer/internal/utils"
	"github.com/antoine-trux/regexcrossword-tokenizer/token"
)

// consumeEscape is entered with the cursor on '\'. It dispatches on the
// following byte per the escape table.
func (t *Tokenizer) consumeEscape() token.Token {
	t.consumeChar() // '\'

	if t.atEnd() {
		return token.NewInvalid("incomplete escape")
	}

	c := t.consumeChar()

	switch c {
	case 'a':
		return token.NewSingleCharacter('\a')
	case 'A':
		return token.New(token.EpsilonAtStart)
	case 'b':
		if t.inCharacterClass {
			return token.NewSingleCharacter('\b')
		}
		return token.New(token.EpsilonAtWordBoundary)
	case 'B':
		return token.New(token.EpsilonNotAtWordBoundary)
	case 'd':
		return token.New(token.ShorthandDigitCharacter)
	case 'D':
		return token.New(token.ShorthandNotDigitCharacter)
	case 'f':
		return token.NewSingleCharacter('\f')
	case 'n':
		return token.NewSingleCharacter('\n')
	case 'r':
		return token.NewSingleCharacter('\r')
	case 's':
		return token.New(token.ShorthandSpaceCharacter)
	case 'S':
		return token.New(token.ShorthandNotSpaceCharacter)
	case 't':
		return token.NewSingleCharacter('\t')
	case 'u':
		t.pushBackChar()
		t.pushBackChar()
		return t.consumeUnicodeEscape(4)
	case 'U':
		t.pushBackChar()
		t.pushBackChar()
		return t.consumeUnicodeEscape(8)
	case 'v':
		return token.NewSingleCharacter('\v')
	case 'w':
		return token.New(token.ShorthandWordCharacter)
	case 'W':
		return token.New(token.ShorthandNotWordCharacter)
	case 'x':
		t.pushBackChar()
		t.pushBackChar()
		return t.consumeHexEscape()
	case 'Z':
		return token.New(token.EpsilonAtEnd)
	default:
		if utils.IsASCIILetter(c) {
			return token.NewInvalid("bad escape")
		}
		if isDigit(c) {
			t.pushBackChar()
			t.pushBackChar()
			return t.consumeDigitEscape()
		}
		return token.NewSingleCharacter(c)
	}
}

func (t *Tokenizer) consumeHexEscape() token.Token {
	t.consumeChar() // '\'
	t.consumeChar() // 'x'

	const wantDigits = 2
	read := 0
	value := 0

	for !t.atEnd() && read != wantDigits {
		c := t.peekChar()
		if !isHexDigit(c) {
			break
		}
		value = 16*value + utils.HexDigitToInt(c)
		t.consumeChar()
		read++
	}

	if read == wantDigits {
		return token.NewSingleCharacter(byte(value))
	}
	return token.NewInvalid("incomplete hexadecimal escape")
}

func (t *Tokenizer) consumeUnicodeEscape(wantDigits int) token.Token {
	t.consumeChar() // '\'
	t.consumeChar() // 'u' or 'U'

	read := 0
	for !t.atEnd() && read != wantDigits {
		if !isHexDigit(t.peekChar()) {
			break
		}
		t.consumeChar()
		read++
	}

	if read == wantDigits {
		return token.NewInvalid("unicode characters are not supported")
	}
	return token.NewInvalid("incomplete unicode escape")
}

// consumeDigitEscape is entered with the cursor on '\' followed by a
// digit, dispatching on whether the tokenizer is inside a character class.
func (t *Tokenizer) consumeDigitEscape() token.Token {
	if t.inCharacterClass {
		return t.consumeDigitEscapeInCharacterClass()
	}
	return t.consumeDigitEscapeOutsideCharacterClass()
}

func (t *Tokenizer) consumeDigitEscapeInCharacterClass() token.Token {
	digit0 := t.peekCharAt(1) // character after '\'
	if !utils.IsOctalDigit(digit0) {
		t.consumeChar() // '\'
		t.consumeChar() // digit
		return token.NewInvalid("bad escape in character class")
	}
	return t.consumeOctalEscape()
}

func (t *Tokenizer) consumeDigitEscapeOutsideCharacterClass() token.Token {
	t.consumeChar() // '\'

	digit0 := t.peekChar()
	if digit0 == '0' || t.nextThreeAreOctalDigits() {
		t.pushBackChar()
		return t.consumeOctalEscape()
	}

	t.consumeChar()
	return token.NewBackreference(uint(utils.DigitToInt(digit0)))
}

// consumeOctalEscape is entered with the cursor on '\' followed by an
// octal digit. It consumes one to three octal digits, stopping early at a
// non-octal byte or end of input.
func (t *Tokenizer) consumeOctalEscape() token.Token {
	t.consumeChar() // '\'
	digit0 := t.consumeChar()
	value := utils.DigitToInt(digit0)

	if t.atEnd() || !utils.IsOctalDigit(t.peekChar()) {
		return token.NewSingleCharacter(byte(value))
	}

	digit1 := t.consumeChar()
	value = 8*value + utils.DigitToInt(digit1)

	if t.atEnd() || !utils.IsOctalDigit(t.peekChar()) {
		return token.NewSingleCharacter(byte(value))
	}

	digit2 := t.consumeChar()
	value = 8*value + utils.DigitToInt(digit2)

	if value >= 256 {
		return token.NewInvalid("octal escape value out of range")
	}
	return token.NewSingleCharacter(byte(value))
}
