package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"careinsight/models"

	"github.com/go-redis/redis/v8"
)

const (
	chatKeyPrefix  = "ai:chat:"
	defaultChatTTL = 30 * time.Minute
)

// RedisContextStore keeps each user's recent chat turns as one JSON value.
// Every write refreshes the TTL, so idle conversations expire on their own.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	if ttl <= 0 {
		ttl = defaultChatTTL
	}
	return &RedisContextStore{client: client, ttl: ttl}
}

func chatKey(userID string) string {
	return chatKeyPrefix + userID
}

// Get returns an empty context when the user has no live conversation.
func (s *RedisContextStore) Get(ctx context.Context, userID string) (*models.AIContext, error) {
	raw, err := s.client.Get(ctx, chatKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &models.AIContext{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load chat context: %w", err)
	}

	var aiCtx models.AIContext
	if err := json.Unmarshal(raw, &aiCtx); err != nil {
		return nil, fmt.Errorf("decode chat context: %w", err)
	}
	return &aiCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, userID string, aiCtx *models.AIContext) error {
	raw, err := json.Marshal(aiCtx)
	if err != nil {
		return fmt.Errorf("encode chat context: %w", err)
	}
	if err := s.client.SetEX(ctx, chatKey(userID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save chat context: %w", err)
	}
	return nil
}

// Clear ends the user's conversation. Clearing a missing one is not an error.
func (s *RedisContextStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Unlink(ctx, chatKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear chat context: %w", err)
	}
	return nil
}
