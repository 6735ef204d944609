package cron

import (
	"context"
	"fmt"
	"time"

	robfig "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ReminderTicker runs reminder cycles in-process on a UTC cron schedule.
type ReminderTicker struct {
	cron   *robfig.Cron
	logger *zap.Logger
}

func NewReminderTicker(runner CycleRunner, schedule string, timeout time.Duration, logger *zap.Logger) (*ReminderTicker, error) {
	logger = logger.Named("reminder-ticker")
	cl := zapCronLogger{logger.Sugar()}

	c := robfig.New(
		robfig.WithLocation(time.UTC),
		robfig.WithLogger(cl),
		robfig.WithChain(robfig.Recover(cl), robfig.SkipIfStillRunning(cl)),
	)
	if _, err := c.AddFunc(schedule, func() {
		runCycle(context.Background(), runner, timeout, logger)
	}); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", schedule, err)
	}
	return &ReminderTicker{cron: c, logger: logger}, nil
}

func (t *ReminderTicker) Start() error {
	t.cron.Start()
	t.logger.Info("Reminder ticker started")
	return nil
}

// Shutdown stops scheduling and waits for a running cycle to finish.
func (t *ReminderTicker) Shutdown() {
	<-t.cron.Stop().Done()
}

type zapCronLogger struct {
	s *zap.SugaredLogger
}

func (l zapCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l zapCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
