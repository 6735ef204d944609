package prescription

import (
	"context"
	"errors"
	"time"

	prescriptionRepo "careinsight/database/repository/prescription"
	"careinsight/models"
)

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrInvalidPrescription  = errors.New("invalid prescription")
)

type PrescriptionService interface {
	CreatePrescription(ctx context.Context, userID string, input models.PrescriptionInput) (*models.Prescription, error)
	GetPrescription(ctx context.Context, userID, id string) (*models.Prescription, error)
	ListPrescriptions(ctx context.Context, userID string) ([]models.Prescription, error)
	DeletePrescription(ctx context.Context, userID, id string) error
}

// DefaultPrescriptionService is the production implementation.
type DefaultPrescriptionService struct {
	Repo prescriptionRepo.PrescriptionRepository
	Now  func() time.Time
}

func NewDefaultPrescriptionService(repo prescriptionRepo.PrescriptionRepository) *DefaultPrescriptionService {
	return &DefaultPrescriptionService{Repo: repo, Now: time.Now}
}
