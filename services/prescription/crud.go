package prescription

import (
	"context"
	"errors"
	"fmt"
	"strings"

	prescriptionRepo "careinsight/database/repository/prescription"
	"careinsight/models"
	"careinsight/services/reminder"

	"github.com/google/uuid"
)

func (s *DefaultPrescriptionService) CreatePrescription(ctx context.Context, userID string, input models.PrescriptionInput) (*models.Prescription, error) {
	if strings.TrimSpace(input.Medication) == "" || strings.TrimSpace(input.Dosage) == "" {
		return nil, fmt.Errorf("%w: medication and dosage are required", ErrInvalidPrescription)
	}
	if input.DurationDays < 1 {
		return nil, fmt.Errorf("%w: durationDays must be at least 1", ErrInvalidPrescription)
	}
	if len(input.DosageTimes) == 0 {
		return nil, fmt.Errorf("%w: at least one dose time is required", ErrInvalidPrescription)
	}

	times, err := normalizeDosageTimes(input.DosageTimes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrescription, err)
	}

	now := s.Now().UTC()
	start := now
	if input.StartDate != nil {
		start = input.StartDate.UTC()
	}
	frequency := input.Frequency
	if frequency <= 0 {
		frequency = len(times)
	}

	p := &models.Prescription{
		ID:           uuid.New().String(),
		UserID:       userID,
		Medication:   strings.TrimSpace(input.Medication),
		Dosage:       strings.TrimSpace(input.Dosage),
		Frequency:    frequency,
		DurationDays: input.DurationDays,
		DoctorName:   strings.TrimSpace(input.DoctorName),
		Notes:        input.Notes,
		StartDate:    start,
		DosageTimes:  times,
		CreatedAt:    now,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("CreatePrescription: %w", err)
	}
	p.Active = p.IsActive(now)
	return p, nil
}

// normalizeDosageTimes zero-pads each time and drops duplicates.
func normalizeDosageTimes(in []models.DosageTime) ([]models.DosageTime, error) {
	seen := make(map[string]bool, len(in))
	out := make([]models.DosageTime, 0, len(in))
	for _, t := range in {
		n, err := reminder.NormalizeDosageTime(t)
		if err != nil {
			return nil, err
		}
		if seen[n.String()] {
			continue
		}
		seen[n.String()] = true
		out = append(out, n)
	}
	return out, nil
}

func (s *DefaultPrescriptionService) GetPrescription(ctx context.Context, userID, id string) (*models.Prescription, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("GetPrescription: %w", err)
	}
	if p == nil || p.UserID != userID {
		return nil, ErrPrescriptionNotFound
	}
	p.Active = p.IsActive(s.Now())
	return p, nil
}

func (s *DefaultPrescriptionService) ListPrescriptions(ctx context.Context, userID string) ([]models.Prescription, error) {
	list, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ListPrescriptions: %w", err)
	}
	now := s.Now()
	for i := range list {
		list[i].Active = list[i].IsActive(now)
	}
	return list, nil
}

func (s *DefaultPrescriptionService) DeletePrescription(ctx context.Context, userID, id string) error {
	if err := s.Repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, prescriptionRepo.ErrNotFound) {
			return ErrPrescriptionNotFound
		}
		return fmt.Errorf("DeletePrescription: %w", err)
	}
	return nil
}
