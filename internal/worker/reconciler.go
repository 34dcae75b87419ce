package worker

import (
	"context"
	"log/slog"

	"decor-booking/internal/pkg/config"
)

type OrphanReconciler interface {
	ReconcileOrphans(ctx context.Context, limit int32) (int, error)
}

// PaymentSweeper periodically repairs bookings that carry a transaction id
// but have no payment row.
type PaymentSweeper struct {
	*Loop
	reconciler OrphanReconciler
	cfg        config.ReconcileConfig
}

func NewPaymentSweeper(reconciler OrphanReconciler, cfg config.ReconcileConfig) *PaymentSweeper {
	s := &PaymentSweeper{reconciler: reconciler, cfg: cfg}
	s.Loop = newLoop("payment-sweeper", cfg.Interval, s.sweep)
	return s
}

func (s *PaymentSweeper) sweep(ctx context.Context) error {
	repaired, err := s.reconciler.ReconcileOrphans(ctx, s.cfg.BatchSize)
	if err != nil {
		return err
	}
	if repaired > 0 {
		slog.Info("orphan payments reconciled", "count", repaired)
	}
	return nil
}
