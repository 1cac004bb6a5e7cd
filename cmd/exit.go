package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/VoxDroid/gitexplore/internal/options"
	"github.com/VoxDroid/gitexplore/internal/query"
)

// Process exit codes, following sysexits(3) and the shell's 128+SIGINT.
const (
	ExitOK        = 0
	ExitUsage     = 64
	ExitSoftware  = 70
	ExitInterrupt = 130
)

// usageError marks errors caused by how the command was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	var ue usageError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, query.ErrEmptyQuery), errors.As(err, &ue):
		return ExitUsage
	default:
		return ExitSoftware
	}
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}
	code := exitCode(err)
	switch {
	case code == ExitUsage:
		fmt.Fprintf(os.Stderr, "Problem parsing arguments: %v\nRun 'gitexplore --help' for usage.\n", err)
	case errors.Is(err, options.ErrDataCorrupt):
		fmt.Fprintf(os.Stderr, "Internal data corrupted: %v\nExiting...\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
	}
	return code
}
