package ai

import (
	"context"
	"fmt"
	"strings"

	"careinsight/models"

	"go.uber.org/zap"
)

// Chat answers one message, carrying the last few turns of the conversation.
// A broken context store degrades to a stateless answer.
func (s *DefaultAIService) Chat(ctx context.Context, userID, message string) (string, error) {
	message = strings.TrimSpace(message)
	log := s.logger.With(zap.String("userId", userID))

	aiCtx := &models.AIContext{}
	if s.ctxStore != nil {
		stored, err := s.ctxStore.Get(ctx, userID)
		switch {
		case err != nil:
			log.Warn("chat context unavailable, answering without history", zap.Error(err))
		case stored != nil:
			aiCtx = stored
		}
	}

	reply, err := s.gen.Chat(ctx, aiCtx.Turns, message)
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}

	if s.ctxStore != nil {
		aiCtx.Turns = append(aiCtx.Turns,
			models.ChatTurn{Role: "user", Text: message},
			models.ChatTurn{Role: "model", Text: reply},
		)
		if n := len(aiCtx.Turns); n > s.maxTurns {
			aiCtx.Turns = aiCtx.Turns[n-s.maxTurns:]
		}
		if err := s.ctxStore.Set(ctx, userID, aiCtx); err != nil {
			log.Warn("failed to save chat context", zap.Error(err))
		}
	}
	return reply, nil
}

// ResetChat drops the stored conversation so the next message starts fresh.
func (s *DefaultAIService) ResetChat(ctx context.Context, userID string) error {
	if s.ctxStore == nil {
		return nil
	}
	if err := s.ctxStore.Clear(ctx, userID); err != nil {
		return fmt.Errorf("reset chat: %w", err)
	}
	return nil
}
