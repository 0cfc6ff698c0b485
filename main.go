package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const usage = `
vinom-jumpmaze - solves jumping mazes with depth-first and uniform-cost search.

Usage:
  vinom-jumpmaze solve [-render] [-log-level LEVEL] [FILE]
  vinom-jumpmaze serve [-addr ADDR] [-jwt-secret SECRET]
  vinom-jumpmaze token -subject NAME [-ttl DURATION]

Run a command with -h for its options.
`

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run dispatches to a command and returns instead of exiting, so it can be tested.
func run(out io.Writer, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return &ExitError{Code: 2, Message: "no command given"}
	}

	switch args[0] {
	case "solve":
		return runSolve(out, args[1:])
	case "serve":
		return runServe(out, args[1:])
	case "token":
		return runToken(out, args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return nil
	default:
		fmt.Fprint(out, usage)
		return &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", args[0])}
	}
}
