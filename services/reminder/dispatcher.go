package reminder

import (
	"context"
	"sync"
	"time"

	prescriptionRepo "careinsight/database/repository/prescription"
	userRepo "careinsight/database/repository/user"
	"careinsight/models"
	"careinsight/services/notification"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// CycleReport summarizes one dispatch cycle. It is only used for logging.
type CycleReport struct {
	Due      int           `json:"due"`
	Messages int           `json:"messages"`
	Sent     int           `json:"sent"`
	Skipped  int           `json:"skipped"`
	Failed   int           `json:"failed"`
	Pruned   int           `json:"pruned"`
	Duration time.Duration `json:"duration"`
}

// Dispatcher runs the scheduled medication reminder job.
type Dispatcher struct {
	Prescriptions prescriptionRepo.PrescriptionRepository
	Users         userRepo.UserRepository
	Sender        notification.NotificationService
	Ledger        Ledger // optional; nil disables per-day deduplication
	MinuteBucket  int
	Logger        *zap.Logger
}

func NewDispatcher(
	prescriptions prescriptionRepo.PrescriptionRepository,
	users userRepo.UserRepository,
	sender notification.NotificationService,
	ledger Ledger,
	minuteBucket int,
	logger *zap.Logger,
) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		Prescriptions: prescriptions,
		Users:         users,
		Sender:        sender,
		Ledger:        ledger,
		MinuteBucket:  minuteBucket,
		Logger:        logger.Named("reminder"),
	}
}

// RunCycle performs one full dispatch: query, match, fan out, deliver, prune.
// Unit failures are logged and counted; the cycle itself always completes.
func (d *Dispatcher) RunCycle(ctx context.Context, now time.Time) CycleReport {
	start := time.Now()
	now = now.UTC()
	report := CycleReport{}

	prescriptions, err := d.Prescriptions.ListStartedBy(ctx, now)
	if err != nil {
		d.Logger.Error("failed to load prescriptions", zap.Error(err))
		report.Duration = time.Since(start)
		return report
	}

	due := DueDoses(now, prescriptions, d.MinuteBucket)
	report.Due = len(due)
	if len(due) == 0 {
		report.Duration = time.Since(start)
		d.Logger.Debug("no doses due", zap.Time("now", now))
		return report
	}

	messages := d.fanOut(ctx, due)
	report.Messages = len(messages)

	day := now.Format("2006-01-02")
	var (
		mu sync.Mutex
		wg conc.WaitGroup
	)
	for _, msg := range messages {
		msg := msg
		wg.Go(func() {
			out := d.deliver(ctx, msg, day)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case out.sent:
				report.Sent++
			case out.skipped:
				report.Skipped++
			case out.failed:
				report.Failed++
			}
			report.Pruned += out.pruned
		})
	}
	if r := wg.WaitAndRecover(); r != nil {
		d.Logger.Error("panic during reminder delivery", zap.String("panic", r.String()))
	}

	report.Duration = time.Since(start)
	d.Logger.Info("dispatch cycle finished",
		zap.Time("now", now),
		zap.Int("due", report.Due),
		zap.Int("messages", report.Messages),
		zap.Int("sent", report.Sent),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
		zap.Int("pruned", report.Pruned),
		zap.Duration("took", report.Duration),
	)
	return report
}

// fanOut resolves tokens for every due dose concurrently. Order of the
// returned messages is not meaningful.
func (d *Dispatcher) fanOut(ctx context.Context, due []models.DoseDue) []*models.ReminderMessage {
	var (
		mu       sync.Mutex
		wg       conc.WaitGroup
		messages []*models.ReminderMessage
	)
	for _, dd := range due {
		dd := dd
		wg.Go(func() {
			msg, err := d.buildMessage(ctx, dd)
			if err != nil {
				d.Logger.Error("failed to build reminder",
					zap.String("prescriptionId", dd.Prescription.ID),
					zap.Error(err),
				)
				return
			}
			if msg == nil {
				return
			}
			mu.Lock()
			messages = append(messages, msg)
			mu.Unlock()
		})
	}
	if r := wg.WaitAndRecover(); r != nil {
		d.Logger.Error("panic during reminder fan-out", zap.String("panic", r.String()))
	}
	return messages
}
