package quote

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"quotely/models"

	"github.com/go-redis/redis/v8"
)

// SessionKeyPrefix namespaces wizard session keys in Redis.
const SessionKeyPrefix = "quote-session:"

// SessionStore persists wizard sessions between requests.
type SessionStore interface {
	Save(ctx context.Context, session *models.QuoteSession) error
	Get(ctx context.Context, sessionID string) (*models.QuoteSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore caches sessions as JSON under a TTL. An expired key
// simply reads as a missing session.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.QuoteSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, SessionKeyPrefix+session.SessionID, data, s.TTL).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.QuoteSession, error) {
	data, err := s.Client.Get(ctx, SessionKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session models.QuoteSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, SessionKeyPrefix+sessionID).Err()
}

// MemorySessionStore is an in-process store used in tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string][]byte
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string][]byte)}
}

func (s *MemorySessionStore) Save(_ context.Context, session *models.QuoteSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.SessionID] = data
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*models.QuoteSession, error) {
	s.mu.Lock()
	data, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	var session models.QuoteSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
