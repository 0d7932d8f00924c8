package credstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore keeps the credential under a single well-known key in
// Redis, for deployments where the client process is restarted or
// rescheduled and the session has to outlive it.
func NewRedisStore(client *redis.Client, key string) Store {
	return &redisStore{client: client, key: key}
}

func (s *redisStore) Set(ctx context.Context, token string) error {
	return s.client.Set(ctx, s.key, token, 0).Err()
}

func (s *redisStore) Get(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoCredential
		}
		return "", err
	}
	if val == "" {
		return "", ErrNoCredential
	}
	return val, nil
}

func (s *redisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
