package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLockClient(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestRedisCycleLock_SingleHolder(t *testing.T) {
	ctx := context.Background()
	client := newTestLockClient(t)

	first := NewRedisCycleLock(client, time.Minute)
	second := NewRedisCycleLock(client, time.Minute)

	acquired, err := first.TryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = second.TryAcquire(ctx)
	require.NoError(t, err)
	assert.False(t, acquired, "second instance must not acquire a held lock")

	require.NoError(t, first.Release(ctx))

	acquired, err = second.TryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, acquired, "lock must be acquirable after release")
}

func TestRedisCycleLock_ReleaseOnlyOwnLock(t *testing.T) {
	ctx := context.Background()
	client := newTestLockClient(t)

	holder := NewRedisCycleLock(client, time.Minute)
	stranger := NewRedisCycleLock(client, time.Minute)

	acquired, err := holder.TryAcquire(ctx)
	require.NoError(t, err)
	require.True(t, acquired)

	// A non-holder release must not free the holder's lock.
	require.NoError(t, stranger.Release(ctx))

	acquired, err = stranger.TryAcquire(ctx)
	require.NoError(t, err)
	assert.False(t, acquired)
}

func TestRedisCycleLock_Reentry(t *testing.T) {
	ctx := context.Background()
	client := newTestLockClient(t)

	lock := NewRedisCycleLock(client, time.Minute)

	acquired, err := lock.TryAcquire(ctx)
	require.NoError(t, err)
	require.True(t, acquired)

	// The same instance polling again before release does not reacquire.
	acquired, err = lock.TryAcquire(ctx)
	require.NoError(t, err)
	assert.False(t, acquired)
}
