// Package locker provides distributed locking for work that must run on
// at most one service instance at a time, such as the digest job.
package locker

import (
	"context"
	"time"
)

// DistributedLocker coordinates exclusive work across instances.
// Implementations must be safe for concurrent use.
//
// Typical usage:
//
//	acquired, err := locker.Acquire(ctx, "digest:scheduler:lock", interval)
//	if err != nil {
//	    return err
//	}
//	if !acquired {
//	    // Another instance holds the lock
//	    return nil
//	}
//
//	// Perform work; release early or let the TTL expire as a cooldown
type DistributedLocker interface {
	// Acquire attempts to take the lock for key. It returns true when the
	// lock was taken and false when another instance already holds it.
	// The lock expires after ttl if never released.
	//
	// Choose the ttl for the lock's purpose: an operation timeout for
	// plain mutual exclusion, or the desired cooldown period when the
	// expiry itself is the rate limit.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release releases the lock identified by key. Calling it for a lock
	// this instance does not own is a no-op.
	Release(ctx context.Context, key string) error
}
