package cron

import (
	"context"
	"fmt"
	"time"

	"careinsight/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderWorker registers the periodic dispatch task with an asynq scheduler
// and processes it on an asynq server backed by the queue Redis DB.
type ReminderWorker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
	schedule  string
	timeout   time.Duration
	logger    *zap.Logger
}

func NewReminderWorker(redisOpts asynq.RedisClientOpt, runner CycleRunner, schedule string, timeout time.Duration, logger *zap.Logger) *ReminderWorker {
	logger = logger.Named("reminder-worker")

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				tasks.ReminderQueue: 1,
			},
			Logger: logger.Sugar(),
		},
	)

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{
		Location: time.UTC,
		Logger:   logger.Sugar(),
		PostEnqueueFunc: func(info *asynq.TaskInfo, err error) {
			if err != nil {
				logger.Warn("Dispatch tick not enqueued", zap.Error(err))
			}
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeDispatchReminders, handleDispatchTask(runner, timeout, logger))

	return &ReminderWorker{
		server:    srv,
		scheduler: scheduler,
		mux:       mux,
		schedule:  schedule,
		timeout:   timeout,
		logger:    logger,
	}
}

// Start registers the schedule and starts both the scheduler and the worker, retrying with backoff.
func (w *ReminderWorker) Start() error {
	task, opts := tasks.NewDispatchTask(w.timeout)
	entryID, err := w.scheduler.Register(w.schedule, task, opts...)
	if err != nil {
		return fmt.Errorf("register reminder schedule %q: %w", w.schedule, err)
	}
	w.logger.Info("Reminder schedule registered", zap.String("entryId", entryID), zap.String("schedule", w.schedule))

	const maxAttempts = 5
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = w.server.Start(w.mux); err == nil {
			break
		}
		w.logger.Warn("Failed to start reminder worker", zap.Int("attempt", attempts), zap.Error(err))
		if attempts == maxAttempts {
			return fmt.Errorf("start reminder worker: %w", err)
		}
		time.Sleep(time.Duration(attempts*2) * time.Second)
	}

	if err := w.scheduler.Start(); err != nil {
		w.server.Shutdown()
		return fmt.Errorf("start reminder scheduler: %w", err)
	}
	return nil
}

func (w *ReminderWorker) Shutdown() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
}

func handleDispatchTask(runner CycleRunner, timeout time.Duration, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		runCycle(ctx, runner, timeout, logger)
		return nil
	}
}
