package wellness

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	wellnessRepo "careinsight/database/repository/wellness"
	"careinsight/models"
)

var (
	ErrUnauthenticated = errors.New("user must be authenticated")
	ErrNoProfile       = errors.New("wellness profile not found")
)

type WellnessService interface {
	SaveProfile(ctx context.Context, userID string, in models.WellnessProfileInput) (*models.WellnessSummary, error)
	GetSummary(ctx context.Context, userID string) (*models.WellnessSummary, error)
}

type DefaultWellnessService struct {
	Repo wellnessRepo.WellnessRepository
	now  func() time.Time
}

func NewDefaultWellnessService(repo wellnessRepo.WellnessRepository) *DefaultWellnessService {
	return &DefaultWellnessService{Repo: repo, now: time.Now}
}

func (s *DefaultWellnessService) SaveProfile(ctx context.Context, userID string, in models.WellnessProfileInput) (*models.WellnessSummary, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	activity := in.ActivityLevel
	if activity == "" {
		activity = "moderate"
	}
	profile := models.WellnessProfile{
		UserID:        userID,
		Height:        in.Height,
		Weight:        in.Weight,
		Age:           in.Age,
		Gender:        in.Gender,
		Goal:          in.Goal,
		ActivityLevel: activity,
		UpdatedAt:     s.now().UTC(),
	}
	if err := s.Repo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save wellness profile: %w", err)
	}
	return Summarize(profile), nil
}

func (s *DefaultWellnessService) GetSummary(ctx context.Context, userID string) (*models.WellnessSummary, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	profile, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wellness profile: %w", err)
	}
	if profile == nil {
		return nil, ErrNoProfile
	}
	return Summarize(*profile), nil
}

// Summarize derives the health figures shown alongside a profile.
func Summarize(p models.WellnessProfile) *models.WellnessSummary {
	bmi := BMI(p.Height, p.Weight)
	cal := DailyCalories(p.Height, p.Weight, p.Age, p.Gender, p.ActivityLevel, p.Goal)
	protein, carbs, fats := MacroSplit(cal)
	return &models.WellnessSummary{
		Profile:       p,
		BMI:           bmi,
		BMICategory:   BMICategory(bmi),
		DailyCalories: int(math.Round(cal)),
		WaterMl:       WaterMl(p.Weight),
		Macros:        models.Macros{Protein: protein, Carbs: carbs, Fats: fats},
	}
}
