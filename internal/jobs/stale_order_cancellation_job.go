package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/metrics"

	"github.com/robfig/cron/v3"
)

// StaleOrderCancellationJob cancels pending orders that were never confirmed
// within the configured time-to-live. Runs every minute.
type StaleOrderCancellationJob struct {
	handler      commands.CancelStaleOrdersCommandHandler
	olderThan    time.Duration
	orderMetrics *metrics.OrderMetrics
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewStaleOrderCancellationJob creates a job that sweeps stale pending orders.
// Uses CancelStaleOrdersCommandHandler to cancel every pending order older
// than the given duration.
func NewStaleOrderCancellationJob(
	handler commands.CancelStaleOrdersCommandHandler,
	olderThan time.Duration,
	orderMetrics *metrics.OrderMetrics,
	logger *slog.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		handler:      handler,
		olderThan:    olderThan,
		orderMetrics: orderMetrics,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "stale_order_cancellation_job"),
	}
}

// Start begins the stale order cancellation job to run every minute.
func (j *StaleOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewCancelStaleOrdersCommand(j.olderThan)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job misconfigured", "error", cmdErr)
			return
		}

		cancelledCount, handleErr := j.handler.Handle(ctx, cmd)
		for range cancelledCount {
			j.orderMetrics.RecordOrderCancelled(true)
		}

		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job failed", "error", handleErr)
			return
		}

		if cancelledCount > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale orders", "count", cancelledCount)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job started (running every minute)")
	return nil
}

// Stop stops the stale order cancellation job.
func (j *StaleOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job stopped")
}
