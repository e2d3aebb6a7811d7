// Package lock guarantees at most one pipeline run at a time.
package lock

import (
	"context"
	"sync"
)

// ReleaseFunc gives the lock back.
type ReleaseFunc func(ctx context.Context) error

// RunLock is a non-blocking mutual exclusion primitive. TryAcquire returns
// ok=false without error when another holder owns the lock.
type RunLock interface {
	TryAcquire(ctx context.Context) (release ReleaseFunc, ok bool, err error)
}

// MemoryLock serializes runs inside one process.
type MemoryLock struct {
	mu sync.Mutex
}

func NewMemoryLock() *MemoryLock { return &MemoryLock{} }

func (l *MemoryLock) TryAcquire(context.Context) (ReleaseFunc, bool, error) {
	if !l.mu.TryLock() {
		return nil, false, nil
	}
	var once sync.Once
	return func(context.Context) error {
		once.Do(l.mu.Unlock)
		return nil
	}, true, nil
}
