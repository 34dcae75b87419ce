package bootstrap

import (
	"context"
	"log/slog"

	"decor-booking/internal/infra/messaging"
	"decor-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher falls back to logging events when AMQP_URL is not set.
func NewPublisher(lc fx.Lifecycle, cfg config.Config) (messaging.Publisher, error) {
	if cfg.Messaging.AMQPURL == "" {
		slog.Info("AMQP_URL not set, outbox events are logged only")
		return messaging.NewLogPublisher(), nil
	}

	pub, err := messaging.NewRabbitPublisher(cfg.Messaging.AMQPURL, cfg.Messaging.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
