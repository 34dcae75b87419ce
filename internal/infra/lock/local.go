package lock

import (
	"context"
	"sync"
	"time"

	"decor-booking/internal/pkg/clock"
	"decor-booking/internal/usecase/commands"
)

// LocalLocker is an in-process Locker for single-instance deployments and tests.
type LocalLocker struct {
	mu     sync.Mutex
	held   map[string]localLease
	clock  clock.Clock
	nextID uint64
}

type localLease struct {
	id        uint64
	expiresAt time.Time
}

func NewLocalLocker(clk clock.Clock) *LocalLocker {
	return &LocalLocker{
		held:  make(map[string]localLease),
		clock: clk,
	}
}

func (l *LocalLocker) TryLock(_ context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	if lease, ok := l.held[key]; ok && now.Before(lease.expiresAt) {
		return nil, commands.ErrLockNotAcquired
	}

	l.nextID++
	id := l.nextID
	l.held[key] = localLease{id: id, expiresAt: now.Add(ttl)}

	release := func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if lease, ok := l.held[key]; ok && lease.id == id {
			delete(l.held, key)
		}
		return nil
	}
	return release, nil
}
