package service

import (
	"fmt"

	"github.com/beka-birhanu/vinom-jumpmaze/maze"
	"github.com/beka-birhanu/vinom-jumpmaze/search"
	"github.com/beka-birhanu/vinom-jumpmaze/service/i"
	"github.com/google/uuid"
)

// Solver runs both search engines over each maze it is given.
type Solver struct {
	logger i.Logger
}

// NewSolver creates a Solver that logs through logger.
func NewSolver(logger i.Logger) (*Solver, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	return &Solver{logger: logger}, nil
}

// Solve runs the depth-first and uniform-cost searches over m. The maze is never modified.
func (s *Solver) Solve(id uuid.UUID, m *maze.Maze) i.Report {
	report := i.Report{
		ID:          id,
		DFS:         search.DFS(m),
		UniformCost: search.UniformCost(m),
	}

	s.logger.Debug(fmt.Sprintf(
		"Solved maze %s (%dx%d): dfs=%s expanded=%d, uniform_cost=%s expanded=%d",
		id, m.Rows(), m.Cols(),
		report.DFS, report.DFS.Expanded,
		report.UniformCost, report.UniformCost.Expanded,
	))
	return report
}

// SolveAll solves the mazes one after another, preserving their order.
func (s *Solver) SolveAll(mazes []*maze.Maze) []i.Report {
	reports := make([]i.Report, 0, len(mazes))
	for _, m := range mazes {
		reports = append(reports, s.Solve(uuid.New(), m))
	}
	return reports
}

// Summary lists the uniform-cost outcome of each report, one line per maze.
func Summary(reports []i.Report) []string {
	lines := make([]string, 0, len(reports))
	for _, r := range reports {
		lines = append(lines, r.UniformCost.String())
	}
	return lines
}
