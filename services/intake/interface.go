package intake

import (
	"context"

	"quotely/models"
	"quotely/services/quote"

	"go.uber.org/zap"
)

// ServiceSummaryLine is one row of the read-only intake summary.
type ServiceSummaryLine struct {
	ServiceName string `json:"serviceName"`
	Subtotal    int64  `json:"subtotal"`
}

// PendingSummary is what the intake surface renders on load: the summary
// rows, the grand total and an itemized text block suitable for pre-filling
// a free-text message field.
type PendingSummary struct {
	Quote    models.Quote         `json:"quote"`
	Services []ServiceSummaryLine `json:"services"`
	Total    int64                `json:"total"`
	Prefill  string               `json:"prefill"`
}

// IntakeService is the consumer side of the handoff contract: read the slot
// on load, clear it once the downstream flow completes. An abandoned flow
// leaves the slot untouched for a later visit.
type IntakeService interface {
	// PendingQuote returns the pending summary, or nil when no quote is
	// waiting. Storage failures degrade to nil, never to a hard error.
	PendingQuote(ctx context.Context) (*PendingSummary, error)
	// Complete consumes the pending quote after a successful submission.
	Complete(ctx context.Context) error
}

// DefaultIntakeService implements IntakeService over the shared slot.
type DefaultIntakeService struct {
	Handoff quote.HandoffSlot
	Logger  *zap.Logger
}
