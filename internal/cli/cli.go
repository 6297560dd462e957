// Package cli parses the command line accepted by the debug CLI, in the
// style of the command-line layer this package is grounded on
// (command_line.cpp/hpp): a small hand-written option scanner rather than
// a flag-package-driven one, since the option grammar mixes bare
// booleans, '--opt=value' options, and a positional regex argument that
// the standard flag package does not model well.
package cli

import (
	"math"

	"github.com/antoine-trux/regexcrossword-tokenizer/internal/crosswordsolver"
	"github.com/antoine-trux/regexcrossword-tokenizer/internal/optim"
	"github.com/antoine-trux/regexcrossword-tokenizer/internal/utils"
)

const metaUsage = "For information on command line usage:\n    tokenredump --help"

// DefaultNumSolutionsToFind is the --stop-after default: enough to prove
// a grid has a unique solution without risking a long search when it
// doesn't, per the original module's rationale for a default of 2.
const DefaultNumSolutionsToFind = 2

// Settings holds the result of parsing a command line. Unlike the module
// this package is grounded on, Settings has an explicit owner: callers
// receive a *Settings from Parse rather than reading package-level
// globals, so a process can parse more than one command line safely.
type Settings struct {
	ProgramPath        string
	Regex              string
	LogFilepath        string
	HelpRequested      bool
	VersionRequested   bool
	Verbose            bool
	NumSolutionsToFind uint
	Optimizations      optim.Flags
}

// DefaultSettings returns the Settings a process starts with before any
// command-line argument has been parsed.
func DefaultSettings() *Settings {
	return &Settings{
		NumSolutionsToFind: DefaultNumSolutionsToFind,
		Optimizations:      optim.All(),
	}
}

// Parse parses args, which must begin with the program's own path
// (mirroring argv in the module this package is grounded on). It returns
// a *crosswordsolver.CommandLineError on any malformed input.
func Parse(args []string) (*Settings, error) {
	s := DefaultSettings()

	if len(args) == 0 {
		return nil, crosswordsolver.NewCommandLineError("missing program path", metaUsage)
	}
	s.ProgramPath = args[0]
	rest := args[1:]

	i, err := parseOptions(s, rest)
	if err != nil {
		return nil, err
	}

	if !s.HelpRequested && !s.VersionRequested {
		if i >= len(rest) {
			return nil, crosswordsolver.NewCommandLineError("missing arguments", metaUsage)
		}
		s.Regex = rest[i]
		i++
	}

	if i != len(rest) {
		return nil, crosswordsolver.NewCommandLineError("extra arguments", metaUsage)
	}

	return s, nil
}

func parseOptions(s *Settings, args []string) (int, error) {
	i := 0

	if i < len(args) {
		if isHelpOption(args[i]) {
			s.HelpRequested = true
			return i + 1, nil
		}
		if isVersionOption(args[i]) {
			s.VersionRequested = true
			return i + 1, nil
		}
	}

	for i < len(args) && isOption(args[i]) {
		if err := parseNormalOption(s, args[i]); err != nil {
			return 0, err
		}
		i++
	}

	return i, nil
}

func isHelpOption(arg string) bool {
	return arg == "--help" || arg == "-h"
}

func isVersionOption(arg string) bool {
	return arg == "--version"
}

func isOption(arg string) bool {
	return utils.StartsWith(arg, "-")
}

func parseNormalOption(s *Settings, option string) error {
	switch {
	case utils.StartsWith(option, "--log"):
		return parseLogOption(s, option)

	case option == "--no-concat-optim":
		s.Optimizations = s.Optimizations.With(optim.Concatenations, false)
		return nil

	case option == "--no-group-optim":
		s.Optimizations = s.Optimizations.With(optim.Groups, false)
		return nil

	case option == "--no-union-optim":
		s.Optimizations = s.Optimizations.With(optim.Unions, false)
		return nil

	case option == "--no-optim":
		s.Optimizations = optim.None()
		return nil

	case utils.StartsWith(option, "--stop-after"):
		return parseStopAfterOption(s, option)

	case option == "--verbose" || option == "-v":
		s.Verbose = true
		return nil

	default:
		return crosswordsolver.NewCommandLineError("unrecognized option: "+utils.Quoted(option), metaUsage)
	}
}

func parseValueOption(option, specifier string) (string, error) {
	if len(option) == len(specifier) || option[len(specifier)] != '=' {
		return "", crosswordsolver.NewCommandLineError("missing '=' after "+utils.Quoted(specifier), metaUsage)
	}
	value := option[len(specifier)+1:]
	if value == "" {
		return "", crosswordsolver.NewCommandLineError("missing value after "+utils.Quoted(specifier+"="), metaUsage)
	}
	return value, nil
}

func parseLogOption(s *Settings, option string) error {
	value, err := parseValueOption(option, "--log")
	if err != nil {
		return err
	}
	s.LogFilepath = value
	return checkLogOption(s)
}

func parseStopAfterOption(s *Settings, option string) error {
	const specifier = "--stop-after"

	value, err := parseValueOption(option, specifier)
	if err != nil {
		return err
	}

	if value == "-1" {
		s.NumSolutionsToFind = math.MaxUint32
		return nil
	}

	n, convErr := utils.StringToUnsigned[uint](value)
	if convErr != nil {
		return crosswordsolver.NewCommandLineError("invalid value for "+utils.Quoted(specifier), metaUsage)
	}
	if n == 0 {
		return crosswordsolver.NewCommandLineError("value for "+utils.Quoted(specifier)+" must not be 0", metaUsage)
	}
	s.NumSolutionsToFind = n
	return nil
}
