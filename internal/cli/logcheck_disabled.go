//go:build !logging

package cli

import "github.com/antoine-trux/regexcrossword-tokenizer/internal/crosswordsolver"

// checkLogOption rejects --log=<path> outright in builds without the
// "logging" tag, since there is nothing for it to configure.
func checkLogOption(s *Settings) error {
	return crosswordsolver.NewCommandLineError(
		"logging is not enabled\n"+
			"rebuild with '-tags logging' in order to use option '--log'",
		metaUsage,
	)
}
