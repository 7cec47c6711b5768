package session

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type memoryStore struct {
	cache *expirable.LRU[string, Session]
	now   func() time.Time
}

// NewMemoryStore keeps up to size sessions in process for ttl each.
func NewMemoryStore(size int, ttl time.Duration) Store {
	if size <= 0 {
		size = 1000
	}
	return &memoryStore{
		cache: expirable.NewLRU[string, Session](size, nil, ttl),
		now:   time.Now,
	}
}

func (m *memoryStore) Get(ctx context.Context, id string) (Session, error) {
	s, ok := m.cache.Get(id)
	if !ok {
		return Session{}, ErrNotFound
	}
	if s.Expired(m.now()) {
		m.cache.Remove(id)
		return Session{}, ErrExpired
	}
	return s, nil
}

func (m *memoryStore) Save(ctx context.Context, s Session) error {
	m.cache.Add(s.ID, s)
	return nil
}

func (m *memoryStore) Delete(ctx context.Context, id string) error {
	m.cache.Remove(id)
	return nil
}
