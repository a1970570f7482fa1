package designer

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MemoryStore keeps design sessions in an in-process LRU. Suitable for a
// single instance; use the redis store when running more than one.
type MemoryStore struct {
	cache *lru.Cache[string, memoryEntry]
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

const defaultMemoryStoreSize = 10_000

func NewMemoryStore() (*MemoryStore, error) {
	c, err := lru.New[string, memoryEntry](defaultMemoryStoreSize)
	if err != nil {
		return nil, err
	}
	return &MemoryStore{cache: c}, nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	_ = ctx
	entry, ok := m.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		m.cache.Remove(id)
		return nil, ErrSessionNotFound
	}

	session := entry.session
	return &session, nil
}

func (m *MemoryStore) Put(ctx context.Context, session *Session, ttl time.Duration) error {
	_ = ctx
	if session == nil || session.ID == "" {
		return ErrSessionNotFound
	}
	m.cache.Add(session.ID, memoryEntry{
		session:   *session,
		expiresAt: time.Now().Add(ttl),
	})
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	_ = ctx
	m.cache.Remove(id)
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
