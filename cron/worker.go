package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"quotely/config"
	"quotely/services/quote"
	"quotely/services/tasks"

	"github.com/hibiken/asynq"
)

// InitQuoteExpiryWorker runs the async worker in background. It sweeps
// finalized quotes that sat unconsumed in the handoff slot past their TTL,
// so a stale quote can never be replayed into an unrelated later visit.
func InitQuoteExpiryWorker(slot quote.HandoffSlot) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeQuoteExpire, handleQuoteExpireTask(slot))

	go func() {
		log.Println("[QuoteExpiryWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[QuoteExpiryWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[QuoteExpiryWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleQuoteExpireTask(slot quote.HandoffSlot) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.QuoteExpirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[QuoteExpiry] Invalid payload: %v", err)
			return err
		}

		pending, err := slot.Peek(ctx)
		if err != nil {
			log.Printf("[QuoteExpiry] Failed to read handoff slot: %v", err)
			return err
		}
		// Only clear if the very quote this sweep was scheduled for is
		// still pending; a newer quote overwrote it otherwise.
		if pending == nil || pending.QuoteID != p.QuoteID {
			return nil
		}

		if err := slot.Clear(ctx); err != nil {
			log.Printf("[QuoteExpiry] Failed to clear expired quote %s: %v", p.QuoteID, err)
			return err
		}
		log.Printf("[QuoteExpiry] Cleared expired pending quote %s", p.QuoteID)
		return nil
	}
}
