package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tienda/inventory-system/internal/core/ports"
)

// Session persistence keys. Both are written together via MSET and
// removed together via DEL so no reader sees one without the other.
const (
	keyToken = "token"
	keyUser  = "user"
)

// SessionRepository persists the session in Redis, for installations
// where the app process itself is ephemeral.
type SessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a SessionRepository over the given client.
func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func (r *SessionRepository) Load(ctx context.Context) (ports.SessionRecord, error) {
	vals, err := r.client.MGet(ctx, keyToken, keyUser).Result()
	if err != nil {
		return ports.SessionRecord{}, fmt.Errorf("session load: %w", err)
	}

	rec := ports.SessionRecord{}
	if s, ok := vals[0].(string); ok {
		rec.Token = s
	}
	if s, ok := vals[1].(string); ok {
		rec.User = []byte(s)
	}
	return rec, nil
}

func (r *SessionRepository) Save(ctx context.Context, rec ports.SessionRecord) error {
	if err := r.client.MSet(ctx, keyToken, rec.Token, keyUser, string(rec.User)).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, keyToken, keyUser).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}

func (r *SessionRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
