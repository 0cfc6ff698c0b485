package service

import (
	"context"
	"sort"
	"sync"

	"github.com/beka-birhanu/vinom-jumpmaze/maze"
	"github.com/beka-birhanu/vinom-jumpmaze/service/i"
	"github.com/google/uuid"
)

type recordingLogger struct {
	sync.Mutex
	lines []string
}

func (l *recordingLogger) record(level, msg string) {
	l.Lock()
	defer l.Unlock()
	l.lines = append(l.lines, level+": "+msg)
}

func (l *recordingLogger) Debug(msg string)   { l.record("debug", msg) }
func (l *recordingLogger) Info(msg string)    { l.record("info", msg) }
func (l *recordingLogger) Warning(msg string) { l.record("warning", msg) }
func (l *recordingLogger) Error(msg string)   { l.record("error", msg) }

type queued struct {
	score  float64
	member string
}

type memoryQueue struct {
	sync.Mutex
	queues     map[string][]queued
	enqueueErr error
	countCtxs  []context.Context
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{queues: make(map[string][]queued)}
}

func (q *memoryQueue) Enqueue(_ context.Context, key string, score float64, member string) error {
	q.Lock()
	defer q.Unlock()
	if q.enqueueErr != nil {
		return q.enqueueErr
	}
	q.queues[key] = append(q.queues[key], queued{score: score, member: member})
	sort.SliceStable(q.queues[key], func(a, b int) bool { return q.queues[key][a].score < q.queues[key][b].score })
	return nil
}

func (q *memoryQueue) DequeTops(_ context.Context, key string, amount int64) ([]string, error) {
	q.Lock()
	defer q.Unlock()
	if int64(len(q.queues[key])) < amount {
		return nil, nil
	}
	var members []string
	for _, e := range q.queues[key][:amount] {
		members = append(members, e.member)
	}
	q.queues[key] = q.queues[key][amount:]
	return members, nil
}

func (q *memoryQueue) Count(ctx context.Context, key string) int64 {
	q.Lock()
	defer q.Unlock()
	q.countCtxs = append(q.countCtxs, ctx)
	return int64(len(q.queues[key]))
}


type memoryRepo struct {
	sync.Mutex
	mazes map[uuid.UUID]*maze.Maze
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{mazes: make(map[uuid.UUID]*maze.Maze)}
}

func (r *memoryRepo) Save(_ context.Context, id uuid.UUID, m *maze.Maze) error {
	r.Lock()
	defer r.Unlock()
	r.mazes[id] = m
	return nil
}

func (r *memoryRepo) ByID(_ context.Context, id uuid.UUID) (*maze.Maze, error) {
	r.Lock()
	defer r.Unlock()
	m, ok := r.mazes[id]
	if !ok {
		return nil, i.ErrMazeNotFound
	}
	return m, nil
}
