package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// OverdueSweeper is satisfied by the overdue usecase.
type OverdueSweeper interface {
	Sweep(ctx context.Context) (int64, error)
}

// SweepLoop drives the overdue sweep on a fixed interval. A single goroutine
// runs it, so invocations never overlap; cancel the context to stop.
type SweepLoop struct {
	sweeper  OverdueSweeper
	interval time.Duration
	logger   *zap.Logger
}

func NewSweepLoop(sweeper OverdueSweeper, interval time.Duration, logger *zap.Logger) *SweepLoop {
	return &SweepLoop{sweeper: sweeper, interval: interval, logger: logger}
}

// Run sweeps once immediately, then on every tick until ctx is done.
func (w *SweepLoop) Run(ctx context.Context) {
	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("overdue sweep loop stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *SweepLoop) sweep(ctx context.Context) {
	start := time.Now()
	flagged, err := w.sweeper.Sweep(ctx)
	if err != nil {
		w.logger.Error("overdue sweep failed", zap.Error(err))
		return
	}
	w.logger.Info("overdue sweep finished",
		zap.Int64("flagged", flagged),
		zap.Duration("took", time.Since(start)),
	)
}
