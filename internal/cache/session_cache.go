package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"elimpostor/internal/model"

	"github.com/redis/go-redis/v9"
)

// SessionCache keeps the latest snapshot of each session in Redis, keyed by
// join code. Entries carry a TTL so abandoned sessions expire on their own;
// Exists doubles as the uniqueness check during code generation.
type SessionCache interface {
	SetSnapshot(ctx context.Context, code string, snap *model.SessionSnapshot) error
	GetSnapshot(ctx context.Context, code string) (*model.SessionSnapshot, error)
	Exists(ctx context.Context, code string) (bool, error)
	Delete(ctx context.Context, code string) error
}

type sessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache creates a new session cache.
func NewSessionCache(client *redis.Client, ttl time.Duration) SessionCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour // Sessions expire after a day of inactivity
	}
	return &sessionCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *sessionCache) key(code string) string {
	return fmt.Sprintf("session:%s", code)
}

func (c *sessionCache) SetSnapshot(ctx context.Context, code string, snap *model.SessionSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(code), data, c.ttl).Err()
}

func (c *sessionCache) GetSnapshot(ctx context.Context, code string) (*model.SessionSnapshot, error) {
	data, err := c.client.Get(ctx, c.key(code)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap model.SessionSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *sessionCache) Exists(ctx context.Context, code string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(code)).Result()
	return n > 0, err
}

func (c *sessionCache) Delete(ctx context.Context, code string) error {
	return c.client.Del(ctx, c.key(code)).Err()
}
