package cron

import (
	"context"
	"time"

	"careinsight/services/reminder"

	"go.uber.org/zap"
)

// CycleRunner is satisfied by *reminder.Dispatcher.
type CycleRunner interface {
	RunCycle(ctx context.Context, now time.Time) reminder.CycleReport
}

// Trigger starts and stops whatever fires reminder cycles.
type Trigger interface {
	Start() error
	Shutdown()
}

// runCycle runs one cycle under the per-cycle ceiling. The dispatcher logs the full report.
func runCycle(ctx context.Context, runner CycleRunner, timeout time.Duration, logger *zap.Logger) reminder.CycleReport {
	if timeout > 0 {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
	}

	report := runner.RunCycle(ctx, time.Now().UTC())
	logger.Debug("Reminder tick handled", zap.Int("due", report.Due), zap.Int("sent", report.Sent))
	return report
}
