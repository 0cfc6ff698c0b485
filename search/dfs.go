package search

import "github.com/beka-birhanu/vinom-jumpmaze/maze"

// frame is a stack entry: a coordinate and the path that led to it, both ends included.
type frame struct {
	pos  maze.Coordinate
	path []maze.Coordinate
}

// DFS runs a stack-based depth-first traversal that never expands a coordinate twice.
//
// The returned length is that of the first path reaching the goal, which is not necessarily the
// shortest one. Moves are pushed in the order ValidMoves returns them, so the last move (right) is
// explored first. A coordinate may sit on the stack several times; duplicates are dropped when
// popped.
func DFS(g Graph) Result {
	start := g.Start()
	stack := []frame{{pos: start, path: []maze.Coordinate{start}}}
	visited := make(map[maze.Coordinate]struct{})
	maxFrontier := len(stack)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if g.IsGoal(top.pos) {
			return Result{
				Steps:       len(top.path) - 1,
				Solved:      true,
				Expanded:    len(visited),
				MaxFrontier: maxFrontier,
			}
		}

		if _, seen := visited[top.pos]; seen {
			continue
		}
		visited[top.pos] = struct{}{}

		for _, next := range g.ValidMoves(top.pos) {
			if _, seen := visited[next]; seen {
				continue
			}
			path := make([]maze.Coordinate, len(top.path), len(top.path)+1)
			copy(path, top.path)
			stack = append(stack, frame{pos: next, path: append(path, next)})
		}
		maxFrontier = max(maxFrontier, len(stack))
	}

	return NoSolution(len(visited), maxFrontier)
}
