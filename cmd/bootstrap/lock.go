package bootstrap

import (
	"context"
	"log/slog"

	"decor-booking/internal/infra/lock"
	"decor-booking/internal/pkg/clock"
	"decor-booking/internal/pkg/config"
	"decor-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var LockModule = fx.Module("lock",
	fx.Provide(
		NewLocker,
	),
)

// NewLocker uses Redis when REDIS_ADDR is set and an in-process locker otherwise.
func NewLocker(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) commands.Locker {
	if cfg.Redis.Addr == "" {
		slog.Info("REDIS_ADDR not set, payment confirmation lock is process local")
		return lock.NewLocalLocker(clk)
	}

	client := lock.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return lock.NewRedisLocker(client)
}
