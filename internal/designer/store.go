package designer

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrSessionNotFound is returned for expired or unknown session IDs. Callers
// treat it the same as "visitor never started a design".
var ErrSessionNotFound = errors.New("design session not found")

// Store holds design sessions for their TTL. Implementations must be safe
// for concurrent use.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Put(ctx context.Context, session *Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
	Close() error
}

type StoreConfig struct {
	Provider      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func NewStore(ctx context.Context, cfg StoreConfig) (Store, error) {
	switch cfg.Provider {
	case "", "memory":
		return NewMemoryStore()
	case "redis":
		return NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return nil, fmt.Errorf("unsupported design store provider: %s", cfg.Provider)
	}
}
