package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-jumpmaze/service/i"
	"github.com/google/uuid"
)

const (
	defaultPrefix    = "jumpmaze"
	defaultBatchSize = 4
	queueKeyFmt      = "%s:queue:solve"
)

var (
	ErrNilLogger = errors.New("logger is required")
	ErrNilQueue  = errors.New("sorted queue is required")
	ErrNilRepo   = errors.New("maze repository is required")
	ErrNilSolver = errors.New("maze solver is required")
)

type batchHandlerFunc func(reports []i.Report)

// BatchOptions tunes a BatchSolver.
type BatchOptions struct {
	Prefix    string
	BatchSize int64
	Handler   batchHandlerFunc
}

// BatchSolver queues stored mazes and solves them in batches once enough have accumulated.
type BatchSolver struct {
	sortedQueue i.SortedQueue
	repo        i.MazeRepo
	solver      i.MazeSolver
	logger      i.Logger
	opts        *BatchOptions
}

// NewBatchSolver wires a BatchSolver. A nil opts selects the defaults.
func NewBatchSolver(q i.SortedQueue, repo i.MazeRepo, solver i.MazeSolver, logger i.Logger, opts *BatchOptions) (*BatchSolver, error) {
	switch {
	case q == nil:
		return nil, ErrNilQueue
	case repo == nil:
		return nil, ErrNilRepo
	case solver == nil:
		return nil, ErrNilSolver
	case logger == nil:
		return nil, ErrNilLogger
	}

	if opts == nil {
		opts = &BatchOptions{}
	}

	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}

	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}

	return &BatchSolver{
		sortedQueue: q,
		repo:        repo,
		solver:      solver,
		logger:      logger,
		opts:        opts,
	}, nil
}

// Submit queues the maze stored under id, scored by submission time.
// A batch is drained in the background once the queue is full enough. The drain does not
// inherit ctx, which may belong to a request that is over by then.
func (bs *BatchSolver) Submit(ctx context.Context, id uuid.UUID) error {
	bs.logger.Info(fmt.Sprintf("Queueing maze for batch solving: ID=%s", id))

	score := float64(time.Now().UnixNano())
	if err := bs.sortedQueue.Enqueue(ctx, bs.queueKey(), score, id.String()); err != nil {
		bs.logger.Error(fmt.Sprintf("Failed to enqueue maze: %s", err))
		return err
	}

	go bs.Drain(context.Background())
	return nil
}

// Drain solves one batch if the queue holds at least BatchSize mazes and returns its reports.
func (bs *BatchSolver) Drain(ctx context.Context) []i.Report {
	queueKey := bs.queueKey()
	if bs.sortedQueue.Count(ctx, queueKey) < bs.opts.BatchSize {
		return nil
	}

	rawIDs, err := bs.sortedQueue.DequeTops(ctx, queueKey, bs.opts.BatchSize)
	if err != nil {
		bs.logger.Error(fmt.Sprintf("Dequeuing batch: %s", err))
		return nil
	}

	var reports []i.Report
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			bs.logger.Warning(fmt.Sprintf("Non-UUID value in queue: %s", raw))
			continue
		}

		m, err := bs.repo.ByID(ctx, id)
		if err != nil {
			bs.logger.Warning(fmt.Sprintf("Loading queued maze %s: %s", id, err))
			continue
		}

		reports = append(reports, bs.solver.Solve(id, m))
	}

	if len(reports) > 0 && bs.opts.Handler != nil {
		bs.logger.Info(fmt.Sprintf("Batch solved: %d mazes", len(reports)))
		bs.opts.Handler(reports)
	}
	return reports
}

// SetBatchHandler sets the function receiving every solved batch.
func (bs *BatchSolver) SetBatchHandler(f func([]i.Report)) {
	bs.opts.Handler = f
}

func (bs *BatchSolver) queueKey() string {
	return fmt.Sprintf(queueKeyFmt, bs.opts.Prefix)
}
