package userRepo

import (
	"context"

	"careinsight/models"
)

// UserRepository manages users' notification profiles.
type UserRepository interface {
	// GetByID returns nil, nil when the user has no profile yet.
	GetByID(ctx context.Context, id string) (*models.NotificationProfile, error)
	// RegisterToken adds a push token with set semantics, creating the profile if needed.
	RegisterToken(ctx context.Context, id string, reg models.TokenRegistration) error
	// RemoveTokens atomically pulls the given tokens from the profile.
	RemoveTokens(ctx context.Context, id string, tokens []string) error
}
