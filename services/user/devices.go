package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"careinsight/models"
)

var ErrEmptyToken = errors.New("notification token is required")

func (s *DefaultUserService) RegisterNotificationToken(ctx context.Context, userID string, reg models.TokenRegistration) error {
	reg.Token = strings.TrimSpace(reg.Token)
	if reg.Token == "" {
		return ErrEmptyToken
	}
	if err := s.Repo.RegisterToken(ctx, userID, reg); err != nil {
		return fmt.Errorf("failed to register notification token: %w", err)
	}
	return nil
}

// GetNotificationProfile returns an empty profile when none exists yet.
func (s *DefaultUserService) GetNotificationProfile(ctx context.Context, userID string) (*models.NotificationProfile, error) {
	profile, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	if profile == nil {
		return &models.NotificationProfile{ID: userID, NotificationTokens: []string{}}, nil
	}
	return profile, nil
}
