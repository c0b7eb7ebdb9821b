package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "workvibe:history:"

// HistoryRepository хранит историю беседы в Redis-списке; TTL продлевается при каждой записи.
type HistoryRepository struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewHistoryRepository(client *goredis.Client, ttl time.Duration) *HistoryRepository {
	return &HistoryRepository{client: client, ttl: ttl}
}

func key(conversationID string) string { return keyPrefix + conversationID }

func (r *HistoryRepository) Append(ctx context.Context, conversationID string, lines ...string) error {
	if len(lines) == 0 {
		return nil
	}
	values := make([]any, len(lines))
	for i, l := range lines {
		values[i] = l
	}
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key(conversationID), values...)
	if r.ttl > 0 {
		pipe.Expire(ctx, key(conversationID), r.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *HistoryRepository) List(ctx context.Context, conversationID string) ([]string, error) {
	return r.client.LRange(ctx, key(conversationID), 0, -1).Result()
}
