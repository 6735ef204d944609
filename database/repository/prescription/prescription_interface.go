package prescriptionRepo

import (
	"context"
	"errors"
	"time"

	"careinsight/models"
)

var ErrNotFound = errors.New("prescription not found")

// PrescriptionRepository defines methods for prescription data access.
type PrescriptionRepository interface {
	// Create inserts a new prescription record.
	Create(ctx context.Context, p *models.Prescription) error
	// GetByID returns nil, nil when no prescription has the ID.
	GetByID(ctx context.Context, id string) (*models.Prescription, error)
	// ListByUser returns every prescription owned by the user, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Prescription, error)
	// ListStartedBy returns prescriptions starting on or before now's UTC day.
	// Callers still have to apply the duration check.
	ListStartedBy(ctx context.Context, now time.Time) ([]models.Prescription, error)
	// Delete removes the prescription only if userID owns it.
	Delete(ctx context.Context, id, userID string) error
}
