package quote

import (
	"context"
	"time"

	catalogRepo "quotely/database/repository/catalog"
	"quotely/models"

	"go.uber.org/zap"
)

// SessionView is what every wizard operation returns: the session identity,
// the freshly derived step list and the live price computation. Clients
// re-render from this; no derived state is cached anywhere.
type SessionView struct {
	SessionID   string                `json:"sessionId"`
	Steps       []models.Step         `json:"steps"`
	CurrentStep int                   `json:"currentStep"`
	TotalSteps  int                   `json:"totalSteps"`
	Selection   models.SelectionState `json:"selection"`
	Quote       models.Quote          `json:"quote"`
}

// ExpiryScheduler schedules the deferred sweep of a finalized quote left
// unconsumed in the handoff slot.
type ExpiryScheduler interface {
	ScheduleExpiry(quoteID string, fireAt time.Time) error
}

// QuoteSessionService defines the interface for driving a quoting wizard
// session from first selection to the finalized handoff.
type QuoteSessionService interface {
	CreateSession(ctx context.Context) (*SessionView, error)
	GetSession(ctx context.Context, sessionID string) (*SessionView, error)
	ToggleService(ctx context.Context, sessionID, serviceID string) (*SessionView, error)
	SetSingleChoice(ctx context.Context, sessionID, serviceID, groupID, optionID string) (*SessionView, error)
	ToggleMultiOption(ctx context.Context, sessionID, serviceID, groupID, optionID string) (*SessionView, error)
	Advance(ctx context.Context, sessionID string) (*SessionView, error)
	Retreat(ctx context.Context, sessionID string) (*SessionView, error)
	GoTo(ctx context.Context, sessionID string, step int) (*SessionView, error)
	Finalize(ctx context.Context, sessionID string) (*models.Quote, error)
	Cancel(ctx context.Context, sessionID string) error
}

// DefaultQuoteSessionService implements QuoteSessionService.
type DefaultQuoteSessionService struct {
	Catalog  catalogRepo.CatalogRepository
	Store    SessionStore
	Handoff  HandoffSlot
	Followup ExpiryScheduler
	// PendingTTL is how long a finalized quote may wait for the intake
	// consumer before the sweeper clears it.
	PendingTTL time.Duration
	Logger     *zap.Logger
}
