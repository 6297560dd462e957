// Command tokenredump tokenizes a regex argument and dumps the resulting
// token stream, one struct per token, for debugging the tokenizer in
// isolation from the (out-of-scope) parser and solver that would
// otherwise consume its output.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"

	"github.com/antoine-trux/regexcrossword-tokenizer/internal/cli"
	"github.com/antoine-trux/regexcrossword-tokenizer/internal/logging"
	"github.com/antoine-trux/regexcrossword-tokenizer/token"
	"github.com/antoine-trux/regexcrossword-tokenizer/tokenizer"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	settings, err := cli.Parse(args)
	if err != nil {
		return err
	}

	if settings.HelpRequested {
		cli.PrintUsage(os.Stdout, settings)
		return nil
	}
	if settings.VersionRequested {
		cli.PrintVersion(os.Stdout)
		return nil
	}

	if settings.LogFilepath != "" {
		if err := logging.SetLogFilepath(settings.LogFilepath); err != nil {
			return err
		}
	}

	dumpTokens(os.Stdout, settings.Regex, settings.Verbose)
	return nil
}

func dumpTokens(w io.Writer, regex string, verbose bool) {
	t := tokenizer.New(regex)

	logging.IncrementIndentationLevel()
	defer logging.DecrementIndentationLevel()

	for {
		logging.Log("scanning next token at position " + fmt.Sprint(t.Position()))

		tok := t.Consume()
		if verbose {
			fmt.Fprintf(w, "%d: ", t.Position())
		}
		fmt.Fprintln(w, repr.String(tok))

		if tok.Type == token.End {
			return
		}
	}
}
