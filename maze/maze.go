/*
Package maze models the jumping maze puzzle.

A Maze is a rectangular grid where every cell stores a jump distance. From a cell the only legal
moves are jumps of exactly that distance up, down, left or right. Edges are never stored: they are
computed on demand by ValidMoves from the cell value and the grid bounds.

A Maze is immutable once built by New and may be shared between searches.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrRaggedGrid        = errors.New("grid does not match the declared dimensions")
	ErrOutOfBounds       = errors.New("coordinate is out of the maze")
	ErrNegativeJump      = errors.New("jump distance must not be negative")
)

// Maze represents a rectangular grid of jump distances with a start and a goal cell.
type Maze struct {
	rows  int
	cols  int
	start Coordinate
	goal  Coordinate
	cells [][]int
}

// New validates the given layout and returns a Maze owning a copy of cells.
func New(rows, cols int, start, goal Coordinate, cells [][]int) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	if len(cells) != rows {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrRaggedGrid, rows, len(cells))
	}

	grid := make([][]int, rows)
	for i, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedGrid, i, len(row), cols)
		}
		for j, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell %v holds %d", ErrNegativeJump, Coordinate{Row: i, Col: j}, v)
			}
		}
		grid[i] = append([]int(nil), row...)
	}

	m := &Maze{
		rows:  rows,
		cols:  cols,
		start: start,
		goal:  goal,
		cells: grid,
	}

	if !m.InBound(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !m.InBound(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrOutOfBounds, goal)
	}

	return m, nil
}

// Rows returns the number of grid rows.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the number of grid columns.
func (m *Maze) Cols() int { return m.cols }

// Start returns the start coordinate.
func (m *Maze) Start() Coordinate { return m.start }

// Goal returns the goal coordinate.
func (m *Maze) Goal() Coordinate { return m.goal }

// InBound reports whether pos lies inside the grid.
func (m *Maze) InBound(pos Coordinate) bool {
	return pos.Row >= 0 && pos.Row < m.rows && pos.Col >= 0 && pos.Col < m.cols
}

// Cell returns the jump distance stored at pos. The boolean is false when pos is outside the grid.
func (m *Maze) Cell(pos Coordinate) (int, bool) {
	if !m.InBound(pos) || pos.Row >= len(m.cells) || pos.Col >= len(m.cells[pos.Row]) {
		return 0, false
	}
	return m.cells[pos.Row][pos.Col], true
}

// Cells returns a copy of the grid.
func (m *Maze) Cells() [][]int {
	grid := make([][]int, len(m.cells))
	for i, row := range m.cells {
		grid[i] = append([]int(nil), row...)
	}
	return grid
}

// ValidMoves returns the in-bound destinations reachable with a single jump from pos,
// always in the order up, down, left, right.
//
// Positions outside the grid have no moves. Revisits are not filtered here, so a cell
// holding 0 yields itself once per direction.
func (m *Maze) ValidMoves(pos Coordinate) []Coordinate {
	d, ok := m.Cell(pos)
	if !ok {
		return nil
	}

	offsets := [4]Coordinate{
		{Row: -d, Col: 0},
		{Row: d, Col: 0},
		{Row: 0, Col: -d},
		{Row: 0, Col: d},
	}

	moves := make([]Coordinate, 0, len(offsets))
	for _, off := range offsets {
		next := Coordinate{Row: pos.Row + off.Row, Col: pos.Col + off.Col}
		if m.InBound(next) {
			moves = append(moves, next)
		}
	}
	return moves
}

// IsGoal reports whether pos is the goal cell.
func (m *Maze) IsGoal(pos Coordinate) bool {
	return pos == m.goal
}

// String renders the grid as text. The start cell is prefixed with S and the goal cell shows G.
func (m *Maze) String() string {
	width := 1
	for _, row := range m.cells {
		for _, v := range row {
			width = max(width, len(fmt.Sprint(v))+1)
		}
	}

	var output strings.Builder

	// Top boundary
	border := "+" + strings.Repeat(strings.Repeat("-", width+2)+"+", m.cols) + "\n"
	output.WriteString(border)

	for i, row := range m.cells {
		output.WriteString("|")
		for j, v := range row {
			pos := Coordinate{Row: i, Col: j}
			label := fmt.Sprint(v)
			switch {
			case pos == m.goal:
				label = "G"
			case pos == m.start:
				label = "S" + label
			}
			output.WriteString(fmt.Sprintf(" %*s |", width, label))
		}
		output.WriteString("\n")
		output.WriteString(border)
	}

	return output.String()
}
