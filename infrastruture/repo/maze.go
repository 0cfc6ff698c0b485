// Package repo persists submitted mazes in MongoDB.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-jumpmaze/maze"
	"github.com/beka-birhanu/vinom-jumpmaze/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrCorruptMaze = errors.New("stored maze is corrupt")

const (
	writeTimeout = time.Second
	readTimeout  = 2 * time.Second
)

// mazeDocument is the BSON form of a maze.
type mazeDocument struct {
	ID        uuid.UUID `bson:"_id"`
	Rows      int       `bson:"rows"`
	Cols      int       `bson:"cols"`
	Start     [2]int    `bson:"start"`
	Goal      [2]int    `bson:"goal"`
	Cells     [][]int   `bson:"cells"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func toDocument(id uuid.UUID, m *maze.Maze) mazeDocument {
	return mazeDocument{
		ID:    id,
		Rows:  m.Rows(),
		Cols:  m.Cols(),
		Start: [2]int{m.Start().Row, m.Start().Col},
		Goal:  [2]int{m.Goal().Row, m.Goal().Col},
		Cells: m.Cells(),
	}
}

// toMaze rebuilds the maze, running the same validation as any other input.
func (d mazeDocument) toMaze() (*maze.Maze, error) {
	m, err := maze.New(
		d.Rows, d.Cols,
		maze.Coordinate{Row: d.Start[0], Col: d.Start[1]},
		maze.Coordinate{Row: d.Goal[0], Col: d.Goal[1]},
		d.Cells,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptMaze, err)
	}
	return m, nil
}

// MazeRepo handles the persistence of mazes.
type MazeRepo struct {
	collection *mongo.Collection
}

var _ i.MazeRepo = (*MazeRepo)(nil)

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	return &MazeRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// Save inserts the maze or replaces the one already stored under id.
func (r *MazeRepo) Save(ctx context.Context, id uuid.UUID, m *maze.Maze) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	doc := toDocument(id, m)
	doc.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a maze by its ID.
// Returns i.ErrMazeNotFound if no maze is stored under id.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*maze.Maze, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var doc mazeDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, i.ErrMazeNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}

	return doc.toMaze()
}
