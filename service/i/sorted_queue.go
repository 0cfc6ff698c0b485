package i

import "context"

// SortedQueue is a score-ordered queue shared between processes.
type SortedQueue interface {
	// Enqueue adds member with the given score.
	Enqueue(ctx context.Context, queueKey string, score float64, member string) error

	// DequeTops removes and returns exactly amount lowest-scored members, or nothing when fewer are queued.
	DequeTops(ctx context.Context, queueKey string, amount int64) ([]string, error)

	// Count returns the number of queued members.
	Count(ctx context.Context, queueKey string) int64
}
