package maze

import "fmt"

// Coordinate represents the position of a cell in the maze grid.
type Coordinate struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Compare orders coordinates row-major. It returns -1, 0 or +1.
func (c Coordinate) Compare(other Coordinate) int {
	switch {
	case c.Row < other.Row:
		return -1
	case c.Row > other.Row:
		return 1
	case c.Col < other.Col:
		return -1
	case c.Col > other.Col:
		return 1
	default:
		return 0
	}
}

// Less reports whether c sorts before other in row-major order.
func (c Coordinate) Less(other Coordinate) bool {
	return c.Compare(other) < 0
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
