package user

import (
	"context"

	userRepo "careinsight/database/repository/user"
	"careinsight/models"
)

type UserService interface {
	RegisterNotificationToken(ctx context.Context, userID string, reg models.TokenRegistration) error
	GetNotificationProfile(ctx context.Context, userID string) (*models.NotificationProfile, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func NewDefaultUserService(repo userRepo.UserRepository) *DefaultUserService {
	return &DefaultUserService{Repo: repo}
}
