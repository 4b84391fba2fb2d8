package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pricekit/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

// Session histories follow the session lifetime, not the scenario store:
// they expire on their own after a day of inactivity.
const priceHistoryTTL = 24 * time.Hour

// PriceHistoryRedisRepository keeps per-session dynamic price histories in
// Redis as JSON-encoded arrays under price_history:<session>.
type PriceHistoryRedisRepository struct {
	rdb *redis.Client
}

var _ interfaces.IPriceHistoryRepository = (*PriceHistoryRedisRepository)(nil)

func NewPriceHistoryRedisRepository(rdb *redis.Client) *PriceHistoryRedisRepository {
	return &PriceHistoryRedisRepository{rdb: rdb}
}

func historyKey(sessionID string) string {
	return fmt.Sprintf("price_history:%s", sessionID)
}

// Get returns the session history, empty for unknown sessions.
func (r *PriceHistoryRedisRepository) Get(ctx context.Context, sessionID string) ([]float64, error) {
	val, err := r.rdb.Get(ctx, historyKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return []float64{}, nil
	}
	if err != nil {
		return nil, err
	}

	var history []float64
	if err := json.Unmarshal([]byte(val), &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (r *PriceHistoryRedisRepository) Save(ctx context.Context, sessionID string, history []float64) error {
	b, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, historyKey(sessionID), b, priceHistoryTTL).Err()
}

func (r *PriceHistoryRedisRepository) Clear(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx, historyKey(sessionID)).Err()
}
