package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/beka-birhanu/vinom-jumpmaze/config"
	"github.com/beka-birhanu/vinom-jumpmaze/infrastruture/logger"
	"github.com/beka-birhanu/vinom-jumpmaze/infrastruture/mazefile"
	"github.com/beka-birhanu/vinom-jumpmaze/service"
)

// runSolve reads a maze file, solves every maze and prints the results.
func runSolve(out io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("solve", flag.ContinueOnError)
	flagSet.SetOutput(out)
	render := flagSet.Bool("render", false, "Print each maze grid after its results.")
	logLevel := flagSet.String("log-level", "warn", "Logging level: 'debug', 'info', 'warn' or 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}

	path := config.Envs.MazeFile
	if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	solverLogger, err := logger.New("SOLVER", config.ColorCyan, os.Stderr)
	if err != nil {
		return err
	}
	if err := solverLogger.SetLevel(*logLevel); err != nil {
		return &ExitError{Code: 2, Message: fmt.Sprintf("invalid log-level: %s", *logLevel)}
	}

	mazes, err := mazefile.NewReader(solverLogger).ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &ExitError{Code: 1, Message: fmt.Sprintf("Error: maze file %s not found", path)}
		}
		return err
	}

	solver, err := service.NewSolver(solverLogger)
	if err != nil {
		return err
	}

	reports := solver.SolveAll(mazes)
	for k, report := range reports {
		fmt.Fprintf(out, "\nMaze #%d\n", k+1)
		fmt.Fprintf(out, "DFS: %s\n", report.DFS)
		fmt.Fprintf(out, "Uniform cost: %s\n", report.UniformCost)
		if *render {
			fmt.Fprint(out, mazes[k])
		}
	}

	fmt.Fprintln(out, "\nFinal results:")
	for _, line := range service.Summary(reports) {
		fmt.Fprintln(out, line)
	}
	return nil
}
