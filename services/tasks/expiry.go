package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeQuoteExpire = "quote:expire"

// QuoteExpirePayload identifies which finalized quote the sweep targets.
type QuoteExpirePayload struct {
	QuoteID string `json:"quoteId"`
}

// NewQuoteExpireTask builds the deferred sweep for an unconsumed pending quote.
func NewQuoteExpireTask(quoteID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(QuoteExpirePayload{QuoteID: quoteID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeQuoteExpire, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues quote follow-up tasks.
type Scheduler struct {
	Client *asynq.Client
}

// ScheduleExpiry enqueues a sweep that fires once the pending-quote TTL has
// passed.
func (s *Scheduler) ScheduleExpiry(quoteID string, fireAt time.Time) error {
	task, opts, err := NewQuoteExpireTask(quoteID, fireAt)
	if err != nil {
		return err
	}
	_, err = s.Client.Enqueue(task, opts...)
	return err
}
