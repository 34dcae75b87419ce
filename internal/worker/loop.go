package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Loop runs tick every interval until Stop is called.
type Loop struct {
	name     string
	interval time.Duration
	tick     func(ctx context.Context) error

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newLoop(name string, interval time.Duration, tick func(ctx context.Context) error) *Loop {
	return &Loop{name: name, interval: interval, tick: tick}
}

func (l *Loop) Start(_ context.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()

		slog.Info("worker started", "worker", l.name, "interval", l.interval.String())
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := l.tick(ctx); err != nil && ctx.Err() == nil {
					slog.Error("worker tick failed", "worker", l.name, "error", err.Error())
				}
			}
		}
	}()
	return nil
}

// Stop waits for the running tick to return or ctx to expire.
func (l *Loop) Stop(ctx context.Context) error {
	if l.cancel == nil {
		return nil
	}
	l.cancel()

	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("worker stopped", "worker", l.name)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
