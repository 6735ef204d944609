// File: services/intelligence/interface.go
package ai

import (
	"context"
	"errors"
	"net/http"
	"time"

	"careinsight/models"

	"go.uber.org/zap"
)

var (
	ErrUnsupportedImage = errors.New("url does not point to a supported image file")
	ErrEmptyResponse    = errors.New("model returned no content")
)

// ContentGenerator is the opaque boundary to the generative model.
type ContentGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	GenerateWithImage(ctx context.Context, prompt, mimeType string, data []byte) (string, error)
	Chat(ctx context.Context, history []models.ChatTurn, message string) (string, error)
}

// ContextStore keeps per-user chat history between requests.
type ContextStore interface {
	Get(ctx context.Context, userID string) (*models.AIContext, error)
	Set(ctx context.Context, userID string, aiCtx *models.AIContext) error
	Clear(ctx context.Context, userID string) error
}

type AIService interface {
	AnalyzeSymptoms(ctx context.Context, req models.SymptomRequest) (*models.SymptomAnalysis, error)
	Chat(ctx context.Context, userID, message string) (string, error)
	ResetChat(ctx context.Context, userID string) error
	AnalyzePrescriptionImage(ctx context.Context, imageURL string) (string, error)
}

type DefaultAIService struct {
	gen        ContentGenerator
	ctxStore   ContextStore
	httpClient *http.Client
	maxTurns   int
	logger     *zap.Logger
}

func NewDefaultAIService(gen ContentGenerator, ctxStore ContextStore, logger *zap.Logger) *DefaultAIService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultAIService{
		gen:        gen,
		ctxStore:   ctxStore,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		maxTurns:   10,
		logger:     logger.Named("ai"),
	}
}
