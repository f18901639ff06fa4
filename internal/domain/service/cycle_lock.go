package service

import "context"

// CycleLock coordinates dispatch cycles across worker instances so only one
// instance drives a cycle at a time. The per-record claim stays the
// correctness guarantee; the lock just avoids wasted duplicate polling.
type CycleLock interface {
	// TryAcquire attempts to take the lock. Returns false when another
	// instance holds it.
	TryAcquire(ctx context.Context) (bool, error)

	// Release gives the lock back. Safe to call only by the holder.
	Release(ctx context.Context) error
}
