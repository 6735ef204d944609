package reminder

import "errors"

var (
	// ErrUnauthenticated is returned when an action has no caller identity.
	ErrUnauthenticated = errors.New("user must be logged in")
	// ErrMissingPrescription is returned when an action names no prescription.
	ErrMissingPrescription = errors.New("prescriptionId is required")
	ErrInvalidDoseTime     = errors.New("invalid dose time")
)
