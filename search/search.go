// Package search implements the two strategies used to solve a jumping maze: an unvisited-first
// depth-first traversal and a uniform-cost (Dijkstra) search with unit edge weights.
//
// Both engines walk an implicit graph. Neighbours are requested from the Graph on demand and
// never materialised. Neither engine mutates the graph, so one maze can be searched any number
// of times, concurrently or not.
package search

import (
	"strconv"

	"github.com/beka-birhanu/vinom-jumpmaze/maze"
)

// NoSolutionText is how an unsolved Result prints.
const NoSolutionText = "No solution"

// Graph is the move-generation contract the engines consume. *maze.Maze satisfies it.
type Graph interface {
	Start() maze.Coordinate
	IsGoal(maze.Coordinate) bool
	ValidMoves(maze.Coordinate) []maze.Coordinate
}

// Result is the outcome of a single search.
//
// An unreachable goal is not an error: it is reported as a Result whose Solved field is false.
type Result struct {
	Steps       int  // Number of jumps from start to goal. Meaningless unless Solved.
	Solved      bool // Whether a path was found.
	Expanded    int  // Coordinates expanded (DFS) or finalized (uniform cost).
	MaxFrontier int  // Largest stack or open set length seen during the search.
}

// NoSolution is the sentinel returned when the goal cannot be reached.
func NoSolution(expanded, maxFrontier int) Result {
	return Result{Expanded: expanded, MaxFrontier: maxFrontier}
}

// StepsOrNil returns a pointer to Steps, or nil when the search found no path.
func (r Result) StepsOrNil() *int {
	if !r.Solved {
		return nil
	}
	steps := r.Steps
	return &steps
}

func (r Result) String() string {
	if !r.Solved {
		return NoSolutionText
	}
	return strconv.Itoa(r.Steps)
}
