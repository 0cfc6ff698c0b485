/*
Package mazefile reads batches of mazes from the plain text format.

Each maze starts with a header line holding six integers:

	rows cols startRow startCol goalRow goalCol

followed by rows lines of cols jump distances. Reading stops at end of input or at a header
line consisting of the single value 0. Header lines with a field count other than six, blank
lines included, are ignored. A header declaring more than 10000 rows or columns is skipped
without consuming the lines after it. A maze whose numbers do not parse or do not form a valid maze is
skipped with a warning so that only well-formed mazes reach the solver.
*/
package mazefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beka-birhanu/vinom-jumpmaze/maze"
	"github.com/beka-birhanu/vinom-jumpmaze/service/i"
)

const (
	headerFields = 6
	terminator   = "0"

	// maxDimension bounds rows and cols read from a header.
	maxDimension = 10_000
)

var ErrTruncated = errors.New("input ended inside a maze")

// Reader turns maze files into validated mazes.
type Reader struct {
	logger i.Logger
}

// NewReader creates a Reader reporting skipped mazes through logger.
func NewReader(logger i.Logger) *Reader {
	return &Reader{logger: logger}
}

// ReadFile reads every maze in the file at path.
func (r *Reader) ReadFile(path string) ([]*maze.Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return r.Read(f)
}

// Read reads mazes from src until the terminator or end of input.
// Only I/O failures are returned; malformed mazes are logged and skipped.
func (r *Reader) Read(src io.Reader) ([]*maze.Maze, error) {
	scanner := bufio.NewScanner(src)
	var (
		mazes  []*maze.Maze
		lineNo int
	)

	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimSpace(scanner.Text()), true
	}

	for {
		line, ok := next()
		if !ok || line == terminator {
			break
		}

		fields := strings.Fields(line)
		if len(fields) != headerFields {
			continue
		}

		headerLine := lineNo
		header, err := parseInts(fields)
		if err != nil {
			r.logger.Warning(fmt.Sprintf("Skipping maze at line %d: header: %s", headerLine, err))
			continue
		}

		// An implausible header is dropped on its own; the lines after it are read as headers again.
		rows, cols := header[0], header[1]
		if rows < 0 || rows > maxDimension || cols > maxDimension {
			r.logger.Warning(fmt.Sprintf("Skipping maze at line %d: %s: %dx%d", headerLine, maze.ErrInvalidDimensions, rows, cols))
			continue
		}

		// Consume every row even when one is bad, so the next header lines up.
		var cells [][]int
		var rowErr error
		for k := 0; k < rows; k++ {
			rowLine, ok := next()
			if !ok {
				rowErr = ErrTruncated
				break
			}
			row, err := parseInts(strings.Fields(rowLine))
			if err != nil && rowErr == nil {
				rowErr = fmt.Errorf("line %d: %w", lineNo, err)
			}
			cells = append(cells, row)
		}

		if rowErr != nil {
			r.logger.Warning(fmt.Sprintf("Skipping maze at line %d: %s", headerLine, rowErr))
			if errors.Is(rowErr, ErrTruncated) {
				break
			}
			continue
		}

		m, err := maze.New(
			rows, cols,
			maze.Coordinate{Row: header[2], Col: header[3]},
			maze.Coordinate{Row: header[4], Col: header[5]},
			cells,
		)
		if err != nil {
			r.logger.Warning(fmt.Sprintf("Skipping maze at line %d: %s", headerLine, err))
			continue
		}

		mazes = append(mazes, m)
	}

	if err := scanner.Err(); err != nil {
		return mazes, fmt.Errorf("reading mazes: %w", err)
	}
	return mazes, nil
}

func parseInts(fields []string) ([]int, error) {
	values := make([]int, len(fields))
	for k, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		values[k] = v
	}
	return values, nil
}
