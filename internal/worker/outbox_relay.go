package worker

import (
	"context"
	"log/slog"

	"decor-booking/internal/infra/messaging"
	"decor-booking/internal/pkg/clock"
	"decor-booking/internal/pkg/config"
	"decor-booking/internal/usecase/shared"
)

type Publisher interface {
	Publish(ctx context.Context, msg messaging.Message) error
}

// OutboxRelay delivers committed outbox events to the message broker.
// Events are claimed with SKIP LOCKED so several relays can run side by side.
type OutboxRelay struct {
	*Loop
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	cfg       config.OutboxConfig
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, cfg config.OutboxConfig) *OutboxRelay {
	r := &OutboxRelay{uow: uow, publisher: publisher, clock: clk, cfg: cfg}
	r.Loop = newLoop("outbox-relay", cfg.PollInterval, func(ctx context.Context) error {
		_, err := r.RelayOnce(ctx)
		return err
	})
	return r
}

// RelayOnce publishes one batch and returns the number of delivered events.
func (r *OutboxRelay) RelayOnce(ctx context.Context) (int, error) {
	published := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		events, err := tx.Outbox().ClaimPending(ctx, tx.DB(), r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, ev := range events {
			msg := messaging.Message{
				ID:         ev.ID.String(),
				RoutingKey: ev.EventType,
				Body:       ev.Payload,
				OccurredAt: ev.CreatedAt,
			}
			if pubErr := r.publisher.Publish(ctx, msg); pubErr != nil {
				slog.Warn("outbox publish failed",
					"event_id", ev.ID.String(),
					"event_type", ev.EventType,
					"attempts", ev.Attempts+1,
					"error", pubErr.Error())
				if err = tx.Outbox().MarkFailed(ctx, tx.DB(), ev.ID, pubErr.Error(), r.cfg.MaxAttempts); err != nil {
					return err
				}
				continue
			}
			if err = tx.Outbox().MarkPublished(ctx, tx.DB(), ev.ID, r.clock.Now()); err != nil {
				return err
			}
			published++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if published > 0 {
		slog.Debug("outbox events published", "count", published)
	}
	return published, nil
}
