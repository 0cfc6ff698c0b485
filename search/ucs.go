package search

import "github.com/beka-birhanu/vinom-jumpmaze/maze"

// moveCost is the weight of every jump.
const moveCost = 1

// UniformCost returns the minimum number of jumps from start to goal.
//
// It is Dijkstra over unit weights without decrease-key: every neighbour is pushed
// unconditionally and outdated entries are discarded when they reach the top of the open set.
// Ties between equal costs are broken by row-major coordinate order, which keeps the run
// deterministic.
func UniformCost(g Graph) Result {
	open := &openSet{}
	open.push(0, g.Start())
	finalized := make(map[maze.Coordinate]int)
	maxFrontier := open.Len()

	for open.Len() > 0 {
		cur := open.pop()

		if g.IsGoal(cur.pos) {
			return Result{
				Steps:       cur.cost,
				Solved:      true,
				Expanded:    len(finalized),
				MaxFrontier: maxFrontier,
			}
		}

		if best, ok := finalized[cur.pos]; ok && best <= cur.cost {
			continue
		}
		finalized[cur.pos] = cur.cost

		for _, next := range g.ValidMoves(cur.pos) {
			open.push(cur.cost+moveCost, next)
		}
		maxFrontier = max(maxFrontier, open.Len())
	}

	return NoSolution(len(finalized), maxFrontier)
}
