package i

import (
	"context"

	"github.com/beka-birhanu/vinom-jumpmaze/maze"
	"github.com/beka-birhanu/vinom-jumpmaze/search"
	"github.com/google/uuid"
)

// Report carries both search outcomes for one maze.
type Report struct {
	ID          uuid.UUID
	DFS         search.Result
	UniformCost search.Result
}

// MazeSolver runs every search engine over a maze.
type MazeSolver interface {
	Solve(id uuid.UUID, m *maze.Maze) Report
}

// BatchSubmitter queues stored mazes for asynchronous solving.
type BatchSubmitter interface {
	Submit(ctx context.Context, id uuid.UUID) error
}
