package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dcebotari/vatra/internal/platform/constants"
)

// RedisSessionRepository implements [SessionRepository] on Redis.
//
// The value is a marker; presence of the key is the session. Expiry is
// delegated to the Redis TTL, so no sweeper is needed.
type RedisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func (repository *RedisSessionRepository) Set(context context.Context, token string, ttl time.Duration) error {
	key := constants.RedisPrefixSession + token

	if err := repository.client.Set(context, key, "admin", ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

func (repository *RedisSessionRepository) Exists(context context.Context, token string) (bool, error) {
	key := constants.RedisPrefixSession + token

	count, err := repository.client.Exists(context, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis_session_exists_failed: %w", err)
	}
	return count > 0, nil
}

func (repository *RedisSessionRepository) Delete(context context.Context, token string) error {
	key := constants.RedisPrefixSession + token

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}
