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

// PendingQuoteKey is the single well-known handoff slot shared between the
// configurator and the intake consumer. At most one pending quote exists at
// a time: writes overwrite, a consuming read clears.
const PendingQuoteKey = "pending-quote"

// HandoffSlot is the one-shot mailbox carrying a finalized quote to the
// downstream intake flow.
type HandoffSlot interface {
	// Put stores the quote, replacing any prior pending quote.
	Put(ctx context.Context, q models.Quote) error
	// Peek returns the pending quote without consuming it, or nil when absent.
	Peek(ctx context.Context) (*models.Quote, error)
	// Take consumes the pending quote: a second Take (or Peek) finds nothing.
	Take(ctx context.Context) (*models.Quote, error)
	// Clear drops the pending quote if any.
	Clear(ctx context.Context) error
}

// RedisHandoffSlot keeps the pending quote under PendingQuoteKey with a TTL
// backstop in case neither the consumer nor the sweeper ever runs.
type RedisHandoffSlot struct {
	Client *redis.Client
	TTL    time.Duration
}

func (s *RedisHandoffSlot) Put(ctx context.Context, q models.Quote) error {
	data, err := json.Marshal(q)
	if err != nil {
		return StorageError{Op: "write", Err: err}
	}
	if err := s.Client.Set(ctx, PendingQuoteKey, data, s.TTL).Err(); err != nil {
		return StorageError{Op: "write", Err: err}
	}
	return nil
}

func (s *RedisHandoffSlot) Peek(ctx context.Context) (*models.Quote, error) {
	data, err := s.Client.Get(ctx, PendingQuoteKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, StorageError{Op: "read", Err: err}
	}
	return decodeQuote([]byte(data))
}

func (s *RedisHandoffSlot) Take(ctx context.Context) (*models.Quote, error) {
	data, err := s.Client.GetDel(ctx, PendingQuoteKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, StorageError{Op: "read", Err: err}
	}
	return decodeQuote([]byte(data))
}

func (s *RedisHandoffSlot) Clear(ctx context.Context) error {
	if err := s.Client.Del(ctx, PendingQuoteKey).Err(); err != nil {
		return StorageError{Op: "clear", Err: err}
	}
	return nil
}

func decodeQuote(data []byte) (*models.Quote, error) {
	var q models.Quote
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, StorageError{Op: "decode", Err: err}
	}
	return &q, nil
}

// MemoryHandoffSlot is an in-process slot used in tests.
type MemoryHandoffSlot struct {
	mu      sync.Mutex
	pending *models.Quote
}

func (s *MemoryHandoffSlot) Put(_ context.Context, q models.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &q
	return nil
}

func (s *MemoryHandoffSlot) Peek(_ context.Context) (*models.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return nil, nil
	}
	cp := *s.pending
	return &cp, nil
}

func (s *MemoryHandoffSlot) Take(_ context.Context) (*models.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.pending
	s.pending = nil
	return q, nil
}

func (s *MemoryHandoffSlot) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
	return nil
}
