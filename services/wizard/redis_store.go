package wizard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"rhiclean/models"
)

const sessionKeyPrefix = "wizard:session:"

// RedisStore caches wizard sessions in Redis as JSON blobs with a TTL,
// so an idle wizard eventually expires on its own.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisStore returns a session store backed by the given client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func (r *RedisStore) Save(ctx context.Context, s *models.WizardSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, sessionKeyPrefix+s.SessionID, data, r.TTL).Err()
}

func (r *RedisStore) Fetch(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := r.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, NewSessionNotFoundError(sessionID)
	}
	if err != nil {
		return nil, err
	}

	var s models.WizardSession
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return r.Client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
