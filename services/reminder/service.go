package reminder

import (
	"context"
	"fmt"
	"time"

	recordsRepo "careinsight/database/repository/records"
	"careinsight/models"
)

// ReminderService handles the direct user actions on reminders.
type ReminderService interface {
	// AcknowledgeTaken appends a "taken" log. Calling it twice logs twice.
	AcknowledgeTaken(ctx context.Context, userID, prescriptionID string) error
	// Snooze records a snoozed reminder at now + offset and returns that time.
	Snooze(ctx context.Context, userID, prescriptionID string) (time.Time, error)
	MedicationLogs(ctx context.Context, userID string) ([]models.MedicationLog, error)
}

// DefaultReminderService is the production implementation.
type DefaultReminderService struct {
	Records      recordsRepo.RecordsRepository
	SnoozeOffset time.Duration
	Now          func() time.Time
}

func NewDefaultReminderService(records recordsRepo.RecordsRepository, snoozeOffset time.Duration) *DefaultReminderService {
	return &DefaultReminderService{
		Records:      records,
		SnoozeOffset: snoozeOffset,
		Now:          time.Now,
	}
}

func (s *DefaultReminderService) AcknowledgeTaken(ctx context.Context, userID, prescriptionID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if prescriptionID == "" {
		return ErrMissingPrescription
	}

	_, err := s.Records.CreateMedicationLog(ctx, models.MedicationLog{
		PrescriptionID: prescriptionID,
		UserID:         userID,
		Status:         models.MedicationStatusTaken,
	})
	if err != nil {
		return fmt.Errorf("AcknowledgeTaken: failed to log medication: %w", err)
	}
	return nil
}

func (s *DefaultReminderService) Snooze(ctx context.Context, userID, prescriptionID string) (time.Time, error) {
	if userID == "" {
		return time.Time{}, ErrUnauthenticated
	}
	if prescriptionID == "" {
		return time.Time{}, ErrMissingPrescription
	}

	next := s.Now().UTC().Add(s.SnoozeOffset)
	_, err := s.Records.CreateReminder(ctx, models.Reminder{
		PrescriptionID: prescriptionID,
		UserID:         userID,
		ScheduledFor:   next,
		Status:         models.ReminderStatusSnoozed,
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("Snooze: failed to create reminder: %w", err)
	}
	return next, nil
}

func (s *DefaultReminderService) MedicationLogs(ctx context.Context, userID string) ([]models.MedicationLog, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	logs, err := s.Records.ListMedicationLogs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("MedicationLogs: %w", err)
	}
	return logs, nil
}
