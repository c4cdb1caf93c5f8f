package core

import (
	"context"
	"sync"

	"github.com/daygo-app/daygo/pkg/safe"
)

func NewSingleLock() *SingleLock {
	return &SingleLock{
		locks: make(map[string]bool),
	}
}

// SingleLock is a process-local mutex set, used to keep background
// jobs from running twice inside one instance.
type SingleLock struct {
	mu    sync.Mutex
	locks map[string]bool
}

// TryLock acquires key until ctx is done.
func (s *SingleLock) TryLock(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks[key] {
		return false, nil
	}
	s.locks[key] = true
	go safe.Run(func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.locks, key)
	})
	return true, nil
}

func (s *Core) TryLock(ctx context.Context, key string) (bool, error) {
	return s.singleLock.TryLock(ctx, key)
}
