package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-jumpmaze/maze"
	"github.com/beka-birhanu/vinom-jumpmaze/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBatchFixture(t *testing.T, size int64) (*BatchSolver, *memoryQueue, *memoryRepo, *recordingLogger) {
	t.Helper()
	logger := &recordingLogger{}
	solver, err := NewSolver(logger)
	require.NoError(t, err)

	q := newMemoryQueue()
	repo := newMemoryRepo()
	bs, err := NewBatchSolver(q, repo, solver, logger, &BatchOptions{BatchSize: size})
	require.NoError(t, err)
	return bs, q, repo, logger
}

func TestNewBatchSolver(t *testing.T) {
	logger := &recordingLogger{}
	solver, err := NewSolver(logger)
	require.NoError(t, err)
	q, repo := newMemoryQueue(), newMemoryRepo()

	_, err = NewBatchSolver(nil, repo, solver, logger, nil)
	assert.ErrorIs(t, err, ErrNilQueue)
	_, err = NewBatchSolver(q, nil, solver, logger, nil)
	assert.ErrorIs(t, err, ErrNilRepo)
	_, err = NewBatchSolver(q, repo, nil, logger, nil)
	assert.ErrorIs(t, err, ErrNilSolver)
	_, err = NewBatchSolver(q, repo, solver, nil, nil)
	assert.ErrorIs(t, err, ErrNilLogger)

	bs, err := NewBatchSolver(q, repo, solver, logger, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(defaultBatchSize), bs.opts.BatchSize)
	assert.Equal(t, defaultPrefix, bs.opts.Prefix)
	assert.Equal(t, "jumpmaze:queue:solve", bs.queueKey())
}

func TestBatchSolverDrain(t *testing.T) {
	ctx := context.Background()

	t.Run("Waits for a full batch", func(t *testing.T) {
		bs, q, repo, _ := newBatchFixture(t, 2)
		id := uuid.New()
		require.NoError(t, repo.Save(ctx, id, buildMaze(t, maze.Coordinate{}, maze.Coordinate{}, [][]int{{1}})))
		require.NoError(t, q.Enqueue(ctx, bs.queueKey(), 1, id.String()))

		assert.Nil(t, bs.Drain(ctx))
		assert.Equal(t, int64(1), q.Count(ctx, bs.queueKey()))
	})

	t.Run("Solves in submission order and calls the handler", func(t *testing.T) {
		bs, q, repo, _ := newBatchFixture(t, 2)

		first, second := uuid.New(), uuid.New()
		require.NoError(t, repo.Save(ctx, first, buildMaze(t, maze.Coordinate{}, maze.Coordinate{}, [][]int{{1}})))
		require.NoError(t, repo.Save(ctx, second, buildMaze(t, maze.Coordinate{}, maze.Coordinate{Row: 0, Col: 1}, [][]int{{1, 1}})))
		require.NoError(t, q.Enqueue(ctx, bs.queueKey(), 2, second.String()))
		require.NoError(t, q.Enqueue(ctx, bs.queueKey(), 1, first.String()))

		var handled []i.Report
		bs.SetBatchHandler(func(r []i.Report) { handled = r })

		reports := bs.Drain(ctx)
		require.Len(t, reports, 2)
		assert.Equal(t, first, reports[0].ID)
		assert.Equal(t, 0, reports[0].UniformCost.Steps)
		assert.Equal(t, second, reports[1].ID)
		assert.Equal(t, 1, reports[1].UniformCost.Steps)
		assert.Equal(t, reports, handled)
		assert.Zero(t, q.Count(ctx, bs.queueKey()))
	})

	t.Run("Skips unknown and malformed members", func(t *testing.T) {
		bs, q, repo, logger := newBatchFixture(t, 3)

		stored := uuid.New()
		require.NoError(t, repo.Save(ctx, stored, buildMaze(t, maze.Coordinate{}, maze.Coordinate{}, [][]int{{1}})))
		require.NoError(t, q.Enqueue(ctx, bs.queueKey(), 1, "not-a-uuid"))
		require.NoError(t, q.Enqueue(ctx, bs.queueKey(), 2, uuid.New().String()))
		require.NoError(t, q.Enqueue(ctx, bs.queueKey(), 3, stored.String()))

		reports := bs.Drain(ctx)
		require.Len(t, reports, 1)
		assert.Equal(t, stored, reports[0].ID)

		logger.Lock()
		defer logger.Unlock()
		warnings := 0
		for _, line := range logger.lines {
			if len(line) > 8 && line[:8] == "warning:" {
				warnings++
			}
		}
		assert.Equal(t, 2, warnings)
	})
}

func TestBatchSolverSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Full batch is drained in the background", func(t *testing.T) {
		bs, _, repo, _ := newBatchFixture(t, 1)

		done := make(chan []i.Report, 1)
		bs.SetBatchHandler(func(r []i.Report) { done <- r })

		id := uuid.New()
		require.NoError(t, repo.Save(ctx, id, buildMaze(t, maze.Coordinate{}, maze.Coordinate{}, [][]int{{2}})))
		require.NoError(t, bs.Submit(ctx, id))

		select {
		case reports := <-done:
			require.Len(t, reports, 1)
			assert.Equal(t, id, reports[0].ID)
		case <-time.After(2 * time.Second):
			t.Fatal("batch was not drained")
		}
	})

	t.Run("Background drain does not inherit the submit context", func(t *testing.T) {
		bs, q, repo, _ := newBatchFixture(t, 1)

		done := make(chan struct{}, 1)
		bs.SetBatchHandler(func([]i.Report) { done <- struct{}{} })

		id := uuid.New()
		require.NoError(t, repo.Save(ctx, id, buildMaze(t, maze.Coordinate{}, maze.Coordinate{}, [][]int{{1}})))

		type requestKey struct{}
		requestCtx, cancel := context.WithCancel(context.WithValue(ctx, requestKey{}, "request"))
		require.NoError(t, bs.Submit(requestCtx, id))
		cancel()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("batch was not drained")
		}

		q.Lock()
		defer q.Unlock()
		require.NotEmpty(t, q.countCtxs)
		for _, c := range q.countCtxs {
			assert.Nil(t, c.Value(requestKey{}))
			assert.NoError(t, c.Err())
		}
	})

	t.Run("Enqueue failure is returned", func(t *testing.T) {
		bs, q, _, _ := newBatchFixture(t, 1)
		q.enqueueErr = errors.New("redis down")

		err := bs.Submit(ctx, uuid.New())
		assert.EqualError(t, err, "redis down")
	})
}
