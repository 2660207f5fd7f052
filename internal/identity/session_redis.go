package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"gigmatch/internal/common/database"
	"gigmatch/internal/models"
)

// RedisSessionStore persists the actor snapshot as a JSON blob in Redis.
// The snapshot has no TTL; it lives until Delete.
type RedisSessionStore struct {
	client *database.RedisClient
	key    string
}

func NewRedisSessionStore(client *database.RedisClient, key string) *RedisSessionStore {
	return &RedisSessionStore{client: client, key: key}
}

func (s *RedisSessionStore) Save(ctx context.Context, actor *models.Actor) error {
	data, err := json.Marshal(actor)
	if err != nil {
		return fmt.Errorf("marshal session snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Load(ctx context.Context) (*models.Actor, error) {
	val, err := s.client.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	var actor models.Actor
	if err := json.Unmarshal([]byte(val), &actor); err != nil {
		return nil, fmt.Errorf("decode session snapshot: %w", err)
	}
	return &actor, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
