package components

import (
	"decor-booking/internal/infra/messaging"
	"decor-booking/internal/pkg/clock"
	"decor-booking/internal/pkg/config"
	"decor-booking/internal/usecase/commands"
	"decor-booking/internal/usecase/shared"
	"decor-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewOutboxRelay,
		NewPaymentSweeper,
	),
	fx.Invoke(registerWorkers),
)

func NewOutboxRelay(uow shared.UnitOfWork, publisher messaging.Publisher, clk clock.Clock, cfg config.Config) *worker.OutboxRelay {
	return worker.NewOutboxRelay(uow, publisher, clk, cfg.Outbox)
}

func NewPaymentSweeper(payments commands.PaymentCommands, cfg config.Config) *worker.PaymentSweeper {
	return worker.NewPaymentSweeper(payments, cfg.Reconcile)
}

func registerWorkers(lc fx.Lifecycle, relay *worker.OutboxRelay, sweeper *worker.PaymentSweeper) {
	lc.Append(fx.Hook{OnStart: relay.Start, OnStop: relay.Stop})
	lc.Append(fx.Hook{OnStart: sweeper.Start, OnStop: sweeper.Stop})
}
