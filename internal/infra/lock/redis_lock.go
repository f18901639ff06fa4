// Package lock provides the redis-backed dispatch cycle lock.
package lock

import (
	"context"
	"time"

	"minaret/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const lockKey = "minaret:dispatch:cycle-lock"

// releaseScript deletes the lock only when this instance still holds it, so a
// slow cycle whose lock expired cannot release a newer holder's lock.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

type redisCycleLock struct {
	client     *redis.Client
	ttl        time.Duration
	instanceID string
}

// NewRedisCycleLock creates a cross-instance dispatch cycle lock with the
// given expiry. The TTL must exceed the expected cycle duration.
func NewRedisCycleLock(client *redis.Client, ttl time.Duration) service.CycleLock {
	return &redisCycleLock{
		client:     client,
		ttl:        ttl,
		instanceID: uuid.New().String(),
	}
}

// TryAcquire attempts a SET NX with expiry. Returns false when another
// instance holds the lock.
func (l *redisCycleLock) TryAcquire(ctx context.Context) (bool, error) {
	acquired, err := l.client.SetNX(ctx, lockKey, l.instanceID, l.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to acquire cycle lock")
	}

	return acquired, nil
}

// Release deletes the lock if this instance still holds it.
func (l *redisCycleLock) Release(ctx context.Context) error {
	if err := releaseScript.Run(ctx, l.client, []string{lockKey}, l.instanceID).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return errors.Wrap(err, "failed to release cycle lock")
	}

	return nil
}
