//go:build logging

package cli

import (
	"github.com/antoine-trux/regexcrossword-tokenizer/internal/crosswordsolver"
	"github.com/antoine-trux/regexcrossword-tokenizer/internal/utils"
)

// checkLogOption validates --log=<path> in builds compiled with the
// "logging" tag: the path must be "-" (meaning standard error) or must not
// already exist, so a run never silently overwrites a previous trace.
func checkLogOption(s *Settings) error {
	if s.LogFilepath != "-" && utils.FilesystemEntityExists(s.LogFilepath) {
		return crosswordsolver.NewCommandLineError(
			"log file "+utils.Quoted(s.LogFilepath)+" already exists",
			metaUsage,
		)
	}
	return nil
}
