// File: services/assistant/contextStore.go
package assistant

import (
	"context"
	"encoding/json"
	"time"

	"coworkly/models"

	"github.com/go-redis/redis/v8"
)

const chatContextPrefix = "chat:ctx:"

// maxStoredTurns bounds the replayed history so a long-running session does
// not grow the prompt without limit.
const maxStoredTurns = 30

// RedisContextStore keeps per-session conversation history with a TTL.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, sessionID string) ([]models.ChatTurn, error) {
	key := chatContextPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return []models.ChatTurn{}, nil
	}
	if err != nil {
		return nil, err
	}
	var turns []models.ChatTurn
	if err := json.Unmarshal([]byte(data), &turns); err != nil {
		return nil, err
	}
	return turns, nil
}

func (s *RedisContextStore) Set(ctx context.Context, sessionID string, turns []models.ChatTurn) error {
	if len(turns) > maxStoredTurns {
		turns = turns[len(turns)-maxStoredTurns:]
	}
	key := chatContextPrefix + sessionID
	b, err := json.Marshal(turns)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	key := chatContextPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}
