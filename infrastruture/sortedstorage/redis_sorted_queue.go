// Package sortedstorage implements i.SortedQueue on Redis sorted sets.
package sortedstorage

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-jumpmaze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL    = time.Hour
	lockKeyFmt    = "%s:dequeue_lock"
	noExpiryTTL   = -1
	lockRetries   = 8
	lockRetryWait = 50 * time.Millisecond
)

// RedisSortedQueue keeps queued members in a Redis sorted set that expires when idle.
type RedisSortedQueue struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

var _ i.SortedQueue = (*RedisSortedQueue)(nil)

// NewRedisSortedQueue creates a queue on client. A non-positive ttlSeconds selects one hour.
func NewRedisSortedQueue(client *redis.Client, ttlSeconds int) (*RedisSortedQueue, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}

	ttl := time.Duration(ttlSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &RedisSortedQueue{
		client: client,
		locker: redsync.New(goredis.NewPool(client)),
		ttl:    ttl,
	}, nil
}

// Enqueue adds member with score and starts the expiry clock on a fresh queue.
func (rsq *RedisSortedQueue) Enqueue(ctx context.Context, queueKey string, score float64, member string) error {
	if err := rsq.client.ZAdd(ctx, queueKey, redis.Z{Score: score, Member: member}).Err(); err != nil {
		return fmt.Errorf("enqueue %s: %w", queueKey, err)
	}

	ttl, err := rsq.client.TTL(ctx, queueKey).Result()
	if err == nil && ttl == noExpiryTTL {
		_ = rsq.client.Expire(ctx, queueKey, rsq.ttl).Err()
	}

	return nil
}

// DequeTops pops the amount lowest-scored members under a distributed lock.
// Nothing is removed when fewer than amount members are queued.
func (rsq *RedisSortedQueue) DequeTops(ctx context.Context, queueKey string, amount int64) ([]string, error) {
	mutex := rsq.locker.NewMutex(
		fmt.Sprintf(lockKeyFmt, queueKey),
		redsync.WithTries(lockRetries),
		redsync.WithRetryDelay(lockRetryWait),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("lock %s: %w", queueKey, err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	size, err := rsq.client.ZCard(ctx, queueKey).Result()
	if err != nil {
		return nil, fmt.Errorf("count %s: %w", queueKey, err)
	}
	if size < amount {
		return nil, nil
	}

	popped, err := rsq.client.ZPopMin(ctx, queueKey, amount).Result()
	if err != nil {
		return nil, fmt.Errorf("pop %s: %w", queueKey, err)
	}

	members := make([]string, 0, len(popped))
	for _, z := range popped {
		if member, ok := z.Member.(string); ok {
			members = append(members, member)
		}
	}
	return members, nil
}

// Count returns the number of queued members, or 0 when Redis cannot be reached.
func (rsq *RedisSortedQueue) Count(ctx context.Context, queueKey string) int64 {
	return rsq.client.ZCard(ctx, queueKey).Val()
}
