// Package mazeapi exposes the solver over HTTP.
package mazeapi

import (
	"github.com/beka-birhanu/vinom-jumpmaze/maze"
	"github.com/beka-birhanu/vinom-jumpmaze/service/i"
)

// CoordinateDTO is a cell position on the wire.
type CoordinateDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c CoordinateDTO) toCoordinate() maze.Coordinate {
	return maze.Coordinate{Row: c.Row, Col: c.Col}
}

// MazeRequest describes a maze to solve or store.
type MazeRequest struct {
	Rows  int            `json:"rows" binding:"required,min=1"`
	Cols  int            `json:"cols" binding:"required,min=1"`
	Start *CoordinateDTO `json:"start" binding:"required"`
	Goal  *CoordinateDTO `json:"goal" binding:"required"`
	Cells [][]int        `json:"cells" binding:"required"`
}

func (r *MazeRequest) toMaze() (*maze.Maze, error) {
	return maze.New(r.Rows, r.Cols, r.Start.toCoordinate(), r.Goal.toCoordinate(), r.Cells)
}

// SolveResponse carries both search outcomes. A null length means the goal is unreachable.
type SolveResponse struct {
	ID                  string `json:"id"`
	DFS                 *int   `json:"dfs"`
	DFSExpanded         int    `json:"dfs_expanded"`
	UniformCost         *int   `json:"uniform_cost"`
	UniformCostExpanded int    `json:"uniform_cost_expanded"`
}

func newSolveResponse(r i.Report) *SolveResponse {
	return &SolveResponse{
		ID:                  r.ID.String(),
		DFS:                 r.DFS.StepsOrNil(),
		DFSExpanded:         r.DFS.Expanded,
		UniformCost:         r.UniformCost.StepsOrNil(),
		UniformCostExpanded: r.UniformCost.Expanded,
	}
}

// StoreResponse identifies a stored maze.
type StoreResponse struct {
	ID     string `json:"id"`
	Queued bool   `json:"queued"`
}
