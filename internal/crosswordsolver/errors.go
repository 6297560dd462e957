// Package crosswordsolver defines the structured error taxonomy shared by
// the command-line layer, the input-file reader, and the regex parser that
// sits above the tokenizer. Every concrete error kind formats a
// multi-line, indented message beginning with "ERROR:\n" and never ending
// in a newline, matching the presentation rules of the module this
// taxonomy is grounded on (regex_crossword_solver_exception.cpp).
package crosswordsolver

import (
	"strconv"
	"strings"

	"github.com/antoine-trux/regexcrossword-tokenizer/internal/utils"
)

const indentation = "    "

func indent(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = indentation + line
	}
	return out
}

func withoutTrailingNewline(s string) string {
	return strings.TrimSuffix(s, "\n")
}

func combine(lines []string) string {
	return withoutTrailingNewline(strings.Join(lines, "\n") + "\n")
}

func base(message string) string {
	return "ERROR:\n" + combine(indent(utils.SplitIntoLines(message)))
}

// AlphabetError reports a problem with a grid's declared alphabet.
type AlphabetError struct {
	message string
}

// NewAlphabetError returns an AlphabetError carrying message.
func NewAlphabetError(message string) *AlphabetError {
	return &AlphabetError{message: message}
}

func (e *AlphabetError) Error() string { return base(e.message) }

// GridStructureError reports a structural problem with a crossword grid.
type GridStructureError struct {
	message string
}

// NewGridStructureError returns a GridStructureError carrying message.
func NewGridStructureError(message string) *GridStructureError {
	return &GridStructureError{message: message}
}

func (e *GridStructureError) Error() string { return base(e.message) }

// RegexStructureError reports a structural problem found by the parser
// that consumes the tokenizer's output (e.g. unbalanced groups).
type RegexStructureError struct {
	message string
}

// NewRegexStructureError returns a RegexStructureError carrying message.
func NewRegexStructureError(message string) *RegexStructureError {
	return &RegexStructureError{message: message}
}

func (e *RegexStructureError) Error() string { return base(e.message) }

// InputFileError reports a problem reading an input file, optionally
// pinpointing the offending line.
type InputFileError struct {
	message  string
	filepath string
	line     string
	lineNum  int
	hasLine  bool
}

// NewInputFileError returns a plain, message-only InputFileError.
func NewInputFileError(message string) *InputFileError {
	return &InputFileError{message: message}
}

// NewInputFileLineError returns an InputFileError that pinpoints line
// lineNum (1-based) of filepath, whose text is line.
func NewInputFileLineError(filepath string, lineNum int, line, message string) *InputFileError {
	return &InputFileError{
		message:  message,
		filepath: filepath,
		line:     line,
		lineNum:  lineNum,
		hasLine:  true,
	}
}

func (e *InputFileError) Error() string {
	if !e.hasLine {
		return base(e.message)
	}

	lines := []string{
		"in " + utils.Quoted(e.filepath) + ", line " + strconv.Itoa(e.lineNum) + ":",
		indentation + utils.Quoted(e.line),
		e.message,
	}
	return "ERROR:\n" + combine(indent(lines))
}

// RegexParseError reports a malformed regex construct surfaced from the
// tokenizer's Invalid tokens, with a caret-underlined excerpt.
type RegexParseError struct {
	message  string
	regex    string
	errorPos int
}

// NewRegexParseError returns a RegexParseError for regex, with message
// describing the problem found at byte offset errorPos (0 <= errorPos <=
// len(regex)).
func NewRegexParseError(message, regex string, errorPos int) *RegexParseError {
	return &RegexParseError{message: message, regex: regex, errorPos: errorPos}
}

func (e *RegexParseError) Error() string {
	// The extra leading space accounts for the opening quote mark that
	// utils.Quoted adds before regex[0] on the line above.
	caret := " " + strings.Repeat(" ", e.errorPos) + "^"
	lines := []string{
		e.message + ":",
		indentation + utils.Quoted(e.regex),
		indentation + caret,
	}
	return "ERROR:\n" + combine(indent(lines))
}

// CommandLineError reports a problem parsing the command line. metaUsage
// is appended, un-indented, after a blank line.
type CommandLineError struct {
	message   string
	metaUsage string
}

// NewCommandLineError returns a CommandLineError carrying message, with
// metaUsage appended verbatim as a usage hint.
func NewCommandLineError(message, metaUsage string) *CommandLineError {
	return &CommandLineError{message: message, metaUsage: metaUsage}
}

func (e *CommandLineError) Error() string {
	body := combine(indent(utils.SplitIntoLines(e.message)))
	return withoutTrailingNewline("ERROR:\n" + body + "\n\n" + e.metaUsage)
}
