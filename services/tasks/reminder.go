package tasks

import (
	"time"

	"github.com/hibiken/asynq"
)

const (
	TypeDispatchReminders = "reminder:dispatch"
	ReminderQueue         = "reminders"
)

// NewDispatchTask builds the periodic task that triggers one reminder cycle.
// The payload is empty so identical ticks collapse under Unique.
func NewDispatchTask(timeout time.Duration) (*asynq.Task, []asynq.Option) {
	task := asynq.NewTask(TypeDispatchReminders, nil)
	uniqueFor := timeout
	if uniqueFor < time.Minute {
		uniqueFor = time.Minute
	}
	opts := []asynq.Option{
		asynq.Queue(ReminderQueue),
		asynq.Timeout(timeout),
		asynq.MaxRetry(0),
		asynq.Unique(uniqueFor),
	}
	return task, opts
}
