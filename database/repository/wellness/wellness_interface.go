package wellnessRepo

import (
	"context"

	"careinsight/models"
)

// WellnessRepository stores one wellness profile per user.
type WellnessRepository interface {
	// Get returns nil, nil when the user has not saved a profile.
	Get(ctx context.Context, userID string) (*models.WellnessProfile, error)
	Upsert(ctx context.Context, profile models.WellnessProfile) error
}
