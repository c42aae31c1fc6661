package locker

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testLockKey = "digest:scheduler:lock"

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func TestRedisLocker_Acquire_Success(t *testing.T) {
	client := setupTestRedis(t)
	locker := NewRedisLocker(client, zap.NewNop())

	acquired, err := locker.Acquire(context.Background(), testLockKey, 5*time.Second)
	require.NoError(t, err)
	assert.True(t, acquired, "first acquisition should succeed")
}

func TestRedisLocker_Acquire_AlreadyHeld(t *testing.T) {
	client := setupTestRedis(t)
	locker1 := NewRedisLocker(client, zap.NewNop())
	locker2 := NewRedisLocker(client, zap.NewNop())

	ctx := context.Background()
	ttl := 5 * time.Second

	acquired1, err := locker1.Acquire(ctx, testLockKey, ttl)
	require.NoError(t, err)
	assert.True(t, acquired1)

	acquired2, _ := locker2.Acquire(ctx, testLockKey, ttl)
	assert.False(t, acquired2, "second acquisition should fail while lock is held")
}

func TestRedisLocker_Release_Success(t *testing.T) {
	client := setupTestRedis(t)
	locker := NewRedisLocker(client, zap.NewNop())

	ctx := context.Background()
	ttl := 5 * time.Second

	acquired, err := locker.Acquire(ctx, testLockKey, ttl)
	require.NoError(t, err)
	require.True(t, acquired)

	require.NoError(t, locker.Release(ctx, testLockKey))

	acquired2, err := locker.Acquire(ctx, testLockKey, ttl)
	require.NoError(t, err)
	assert.True(t, acquired2, "should be able to acquire after release")
}

func TestRedisLocker_Release_NotOwned(t *testing.T) {
	client := setupTestRedis(t)
	locker1 := NewRedisLocker(client, zap.NewNop())
	locker2 := NewRedisLocker(client, zap.NewNop())

	ctx := context.Background()

	acquired, err := locker1.Acquire(ctx, testLockKey, 5*time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	// A non-owner release is a no-op, not an error
	require.NoError(t, locker2.Release(ctx, testLockKey))

	// The owner can still release
	require.NoError(t, locker1.Release(ctx, testLockKey))
}

func TestRedisLocker_ConcurrentAcquisition(t *testing.T) {
	client := setupTestRedis(t)

	const numInstances = 5
	results := make(chan bool, numInstances)
	ctx := context.Background()

	for i := 0; i < numInstances; i++ {
		go func() {
			locker := NewRedisLocker(client, zap.NewNop())
			acquired, _ := locker.Acquire(ctx, testLockKey, 2*time.Second)
			results <- acquired
		}()
	}

	successCount := 0
	for i := 0; i < numInstances; i++ {
		if <-results {
			successCount++
		}
	}

	assert.Equal(t, 1, successCount, "exactly one instance should acquire the lock")
}

func TestRedisLocker_ContextCancellation(t *testing.T) {
	client := setupTestRedis(t)
	locker := NewRedisLocker(client, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	acquired, err := locker.Acquire(ctx, testLockKey, 5*time.Second)
	assert.Error(t, err)
	assert.False(t, acquired)
}
