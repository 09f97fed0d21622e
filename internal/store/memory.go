package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memStore holds the state shared by the in-memory implementations:
// the simulated latency and the mutex guarding the collection. A zero
// delay makes the store complete synchronously, which is what tests use.
type memStore struct {
	mu    sync.Mutex
	delay time.Duration
}

// wait blocks for the simulated latency or until ctx is cancelled.
func (s *memStore) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// newID returns a fresh unique record id.
func newID() string {
	return uuid.NewString()
}
