package quote

import (
	"time"

	"quotely/models"

	"github.com/google/uuid"
)

// Snapshot stamps a live computation into the canonical immutable quote
// shape written to the handoff slot.
func Snapshot(q models.Quote) models.Quote {
	q.QuoteID = uuid.New().String()
	q.CreatedAt = time.Now().UTC()
	return q
}
