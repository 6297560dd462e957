package utils

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartsWith(t *testing.T) {
	assert.True(t, StartsWith("hello", "he"))
	assert.True(t, StartsWith("hello", ""))
	assert.False(t, StartsWith("hello", "world"))
	assert.False(t, StartsWith("he", "hello"))
}

func TestHasOnlyWhitespace(t *testing.T) {
	assert.True(t, HasOnlyWhitespace(""))
	assert.True(t, HasOnlyWhitespace("   \t\n"))
	assert.False(t, HasOnlyWhitespace(" a "))
}

func TestIsASCIILetter(t *testing.T) {
	assert.True(t, IsASCIILetter('a'))
	assert.True(t, IsASCIILetter('Z'))
	assert.False(t, IsASCIILetter('0'))
	assert.False(t, IsASCIILetter('_'))
}

func TestIsOctalDigit(t *testing.T) {
	for c := byte('0'); c <= '7'; c++ {
		assert.True(t, IsOctalDigit(c))
	}
	assert.False(t, IsOctalDigit('8'))
	assert.False(t, IsOctalDigit('9'))
	assert.False(t, IsOctalDigit('a'))
}

func TestDigitToInt(t *testing.T) {
	assert.Equal(t, 0, DigitToInt('0'))
	assert.Equal(t, 9, DigitToInt('9'))
}

func TestHexDigitToInt(t *testing.T) {
	assert.Equal(t, 0, HexDigitToInt('0'))
	assert.Equal(t, 9, HexDigitToInt('9'))
	assert.Equal(t, 10, HexDigitToInt('a'))
	assert.Equal(t, 15, HexDigitToInt('f'))
	assert.Equal(t, 10, HexDigitToInt('A'))
	assert.Equal(t, 15, HexDigitToInt('F'))
}

func TestQuoted(t *testing.T) {
	assert.Equal(t, "'abc'", Quoted("abc"))
	assert.Equal(t, "''", Quoted(""))
}

func TestSplitIntoLines(t *testing.T) {
	assert.Nil(t, SplitIntoLines(""))
	assert.Equal(t, []string{"a"}, SplitIntoLines("a"))
	assert.Equal(t, []string{"a"}, SplitIntoLines("a\n"))
	assert.Equal(t, []string{"a", "b"}, SplitIntoLines("a\nb"))
	assert.Equal(t, []string{"a", "b"}, SplitIntoLines("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, SplitIntoLines("a\n\nb"))
}

func TestStringToUnsignedValid(t *testing.T) {
	n, err := StringToUnsigned[uint]("0")
	require.NoError(t, err)
	assert.Equal(t, uint(0), n)

	n, err = StringToUnsigned[uint]("00042")
	require.NoError(t, err)
	assert.Equal(t, uint(42), n)

	n8, err := StringToUnsigned[uint8]("255")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), n8)
}

func TestStringToUnsignedErrors(t *testing.T) {
	_, err := StringToUnsigned[uint]("")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = StringToUnsigned[uint](" 1")
	assert.ErrorIs(t, err, ErrLeadingWhitespace)

	_, err = StringToUnsigned[uint]("-1")
	assert.ErrorIs(t, err, ErrNegative)

	_, err = StringToUnsigned[uint]("12x")
	assert.ErrorIs(t, err, ErrTrailingGarbage)

	_, err = StringToUnsigned[uint8]("256")
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = StringToUnsigned[uint8]("999")
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestStringToUnsignedBoundary(t *testing.T) {
	n, err := StringToUnsigned[uint8]("255")
	require.NoError(t, err)
	assert.Equal(t, uint8(math.MaxUint8), n)

	_, err = StringToUnsigned[uint8]("256")
	assert.ErrorIs(t, err, ErrOverflow)

	n64, err := StringToUnsigned[uint64]("18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), n64)

	_, err = StringToUnsigned[uint64]("18446744073709551616")
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestFilesystemEntityExists(t *testing.T) {
	assert.True(t, FilesystemEntityExists("utils.go"))
	assert.False(t, FilesystemEntityExists("does-not-exist.go"))
}

func TestPrintVerboseMessage(t *testing.T) {
	var buf bytes.Buffer

	PrintVerboseMessage(&buf, false, "hidden")
	assert.Empty(t, buf.String())

	PrintVerboseMessage(&buf, true, "shown")
	assert.Equal(t, "shown\n", buf.String())
}
