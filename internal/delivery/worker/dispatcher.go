package worker

import (
	"context"
	"log/slog"
	"time"

	"minaret/config"
	"minaret/internal/delivery"
	"minaret/internal/usecase"

	"go.uber.org/fx"
)

// dispatcher is the periodic driver of the dispatch pipeline. Each tick runs
// one bounded cycle; a slow cycle simply delays the next tick rather than
// overlapping it.
type dispatcher struct {
	cfg         *config.Config
	logger      *slog.Logger
	dispatchSvc usecase.DispatchUsecase
	stop        chan struct{}
	done        chan struct{}
}

// DispatcherParams holds dependencies for the dispatch loop
type DispatcherParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	DispatchSvc usecase.DispatchUsecase
}

// NewDispatcher creates the ticker-driven dispatch loop
func NewDispatcher(params DispatcherParams) delivery.Delivery {
	d := &dispatcher{
		cfg:         params.Cfg,
		logger:      params.Logger,
		dispatchSvc: params.DispatchSvc,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			close(d.stop)
			select {
			case <-d.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})

	return d
}

// Serve runs the dispatch loop until the application stops. The first cycle
// runs immediately so a fresh deploy drains overdue work without waiting a
// full interval.
func (d *dispatcher) Serve(ctx context.Context) error {
	defer close(d.done)

	interval := d.cfg.Dispatch.Interval
	d.logger.Info("Starting dispatch loop", slog.Duration("interval", interval))

	d.runCycle(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stop:
			d.logger.Info("Dispatch loop stopped")

			return nil
		case <-ctx.Done():
			d.logger.Info("Dispatch loop context cancelled")

			return nil
		case <-ticker.C:
			d.runCycle(ctx)
		}
	}
}

func (d *dispatcher) runCycle(ctx context.Context) {
	stats, err := d.dispatchSvc.RunDispatchCycle(ctx)
	if err != nil {
		d.logger.Error("Dispatch cycle failed", slog.Any("error", err))

		return
	}

	// Cycles that found nothing stay at debug level to keep idle logs quiet.
	if stats != nil && stats.Due == 0 && stats.Reclaimed == 0 {
		d.logger.Debug("Dispatch cycle idle")
	}
}
