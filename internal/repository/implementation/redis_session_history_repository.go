package implementation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"amdlingo-be/internal/entity"
	"amdlingo-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const historyKeyPrefix = "amdlingo:session:"

// RedisSessionHistoryRepository stores each session as a Redis list of JSON
// entries. Every write refreshes the key's TTL.
type RedisSessionHistoryRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.SessionHistoryRepository = &RedisSessionHistoryRepository{}

func NewRedisSessionHistoryRepository(rdb *redis.Client, ttl time.Duration) *RedisSessionHistoryRepository {
	return &RedisSessionHistoryRepository{rdb: rdb, ttl: ttl}
}

func historyKey(id string) string {
	return historyKeyPrefix + id + ":history"
}

// Create only refreshes the TTL. Redis has no empty lists, so a new session
// materializes on its first Append.
func (r *RedisSessionHistoryRepository) Create(ctx context.Context, id string) error {
	if r.ttl <= 0 {
		return nil
	}
	if err := r.rdb.Expire(ctx, historyKey(id), r.ttl).Err(); err != nil {
		return fmt.Errorf("refresh session ttl: %w", err)
	}
	return nil
}

func (r *RedisSessionHistoryRepository) Append(ctx context.Context, id string, entry entity.HistoryEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}

	key := historyKey(id)
	pipe := r.rdb.TxPipeline()
	pipe.RPush(ctx, key, data)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append history entry: %w", err)
	}
	return nil
}

func (r *RedisSessionHistoryRepository) History(ctx context.Context, id string) ([]entity.HistoryEntry, error) {
	raw, err := r.rdb.LRange(ctx, historyKey(id), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	history := make([]entity.HistoryEntry, 0, len(raw))
	for _, item := range raw {
		var entry entity.HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("decode history entry: %w", err)
		}
		history = append(history, entry)
	}
	return history, nil
}
