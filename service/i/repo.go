package i

import (
	"context"
	"errors"

	"github.com/beka-birhanu/vinom-jumpmaze/maze"
	"github.com/google/uuid"
)

// ErrMazeNotFound is returned by a MazeRepo when no maze is stored under an ID.
var ErrMazeNotFound = errors.New("maze not found")

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or replaces the maze stored under id.
	Save(ctx context.Context, id uuid.UUID, m *maze.Maze) error

	// ByID retrieves a maze by its unique ID.
	// Returns ErrMazeNotFound if the maze is not found, or another error on unexpected failures.
	ByID(ctx context.Context, id uuid.UUID) (*maze.Maze, error)
}
