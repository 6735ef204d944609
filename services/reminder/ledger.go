package reminder

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	ledgerPrefix = "reminder:sent:"
	ledgerTTL    = 36 * time.Hour
)

// Ledger records which doses were already notified on a given day.
type Ledger interface {
	// Claim returns true if the key was not yet claimed.
	Claim(ctx context.Context, key string) (bool, error)
	// Release drops a claim so the dose can be attempted again.
	Release(ctx context.Context, key string) error
}

// DoseKey identifies one dose of one prescription on one UTC day.
func DoseKey(prescriptionID, doseTime, day string) string {
	return prescriptionID + ":" + doseTime + ":" + day
}

// RedisLedger stores claims as expiring SETNX keys.
type RedisLedger struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLedger(client *redis.Client) *RedisLedger {
	return &RedisLedger{client: client, ttl: ledgerTTL}
}

// ConnectLedger returns a RedisLedger if Redis answers a ping, or nil so the
// cycle runs without deduplication.
func ConnectLedger(ctx context.Context, client *redis.Client, logger *zap.Logger) Ledger {
	if client == nil {
		return nil
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("reminder: ledger unavailable, deduplication disabled", zap.Error(err))
		return nil
	}
	return NewRedisLedger(client)
}

func (l *RedisLedger) Claim(ctx context.Context, key string) (bool, error) {
	return l.client.SetNX(ctx, ledgerPrefix+key, time.Now().UTC().Format(time.RFC3339), l.ttl).Result()
}

func (l *RedisLedger) Release(ctx context.Context, key string) error {
	return l.client.Del(ctx, ledgerPrefix+key).Err()
}
