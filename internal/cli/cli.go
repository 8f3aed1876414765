// Package cli parses command-line arguments into run options and handles
// process-level concerns like usage text and exit codes.
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/stargazer-dev/stargazer/internal/app"
)

// DefaultCommitMessage is used when pushing the readme without -message.
const DefaultCommitMessage = "Update stars"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments into run options. It returns the
// options, a boolean indicating the program should exit cleanly (help or
// version was requested), or an ExitError. Cross-field validation of the
// options is left to the pipeline.
func Parse(args []string, output io.Writer, version string) (app.Options, bool, error) {
	flagSet := flag.NewFlagSet("stargazer", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
stargazer - generate a readme from the repositories a github user has starred.

Usage:
  stargazer -u USERNAME [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	var opts app.Options
	flagSet.StringVar(&opts.Username, "username", "", "Github username whose stars are listed.")
	flagSet.StringVar(&opts.Username, "u", "", "Github username (shorthand).")
	flagSet.StringVar(&opts.Token, "token", "", "Github api token. Optional, required with -repo.")
	flagSet.StringVar(&opts.Token, "t", "", "Github api token (shorthand).")
	flagSet.StringVar(&opts.Repo, "repo", "", "Repository the generated readme is pushed to.")
	flagSet.StringVar(&opts.Repo, "r", "", "Repository (shorthand).")
	flagSet.StringVar(&opts.Message, "message", DefaultCommitMessage, "Commit message used when pushing the readme.")
	flagSet.StringVar(&opts.Message, "m", DefaultCommitMessage, "Commit message (shorthand).")
	flagSet.BoolVar(&opts.Sort, "sort", false, "Sort the language index. Not implemented yet.")
	flagSet.BoolVar(&opts.Sort, "s", false, "Sort (shorthand).")
	showVersion := flagSet.Bool("version", false, "Print version and exit.")
	flagSet.BoolVar(showVersion, "v", false, "Print version (shorthand).")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return app.Options{}, true, nil
		}
		return app.Options{}, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *showVersion {
		fmt.Fprintf(output, "stargazer %s\n", version)
		return app.Options{}, true, nil
	}

	if len(args) == 0 {
		flagSet.Usage()
		return app.Options{}, true, nil
	}

	return opts, false, nil
}
