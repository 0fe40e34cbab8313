package quote

import (
	"context"
	"errors"
	"testing"
	"time"

	catalogRepo "quotely/database/repository/catalog"
	"quotely/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() (*DefaultQuoteSessionService, *MemoryHandoffSlot) {
	slot := &MemoryHandoffSlot{}
	svc := &DefaultQuoteSessionService{
		Catalog:    catalogRepo.NewMemoryCatalogRepo(),
		Store:      NewMemorySessionStore(),
		Handoff:    slot,
		PendingTTL: time.Hour,
		Logger:     zap.NewNop(),
	}
	return svc, slot
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, slot := newTestService()

	view, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, view.CurrentStep)
	assert.Equal(t, 2, view.TotalSteps)
	assert.Zero(t, view.Quote.Total)

	sessionID := view.SessionID

	view, err = svc.ToggleService(ctx, sessionID, "website")
	require.NoError(t, err)
	assert.Equal(t, 3, view.TotalSteps)
	assert.Equal(t, int64(700), view.Quote.Total)

	view, err = svc.SetSingleChoice(ctx, sessionID, "website", "design", "custom")
	require.NoError(t, err)
	assert.Equal(t, int64(1200), view.Quote.Total)

	view, err = svc.ToggleMultiOption(ctx, sessionID, "website", "extras", "booking")
	require.NoError(t, err)
	assert.Equal(t, int64(1600), view.Quote.Total)

	// Walk to the summary step and finalize.
	view, err = svc.Advance(ctx, sessionID)
	require.NoError(t, err)
	view, err = svc.Advance(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, view.TotalSteps, view.CurrentStep)

	q, err := svc.Finalize(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, int64(1600), q.Total)
	assert.NotEmpty(t, q.QuoteID)

	pending, err := slot.Peek(ctx)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, q.QuoteID, pending.QuoteID)
}

func TestSessionStepReconciliationOnDeselect(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	view, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	sessionID := view.SessionID

	_, err = svc.ToggleService(ctx, sessionID, "app")
	require.NoError(t, err)
	_, err = svc.ToggleService(ctx, sessionID, "website")
	require.NoError(t, err)

	// Move onto website's config step (index 3 of 4).
	_, err = svc.Advance(ctx, sessionID)
	require.NoError(t, err)
	view, err = svc.Advance(ctx, sessionID)
	require.NoError(t, err)
	require.Equal(t, 3, view.CurrentStep)

	// Deselect app: website's config step shifts to index 2 and the cursor
	// follows it.
	view, err = svc.ToggleService(ctx, sessionID, "app")
	require.NoError(t, err)
	assert.Equal(t, 3, view.TotalSteps)
	assert.Equal(t, 2, view.CurrentStep)
	assert.Equal(t, "website", view.Steps[view.CurrentStep-1].ServiceID)
}

func TestSessionJumpAheadRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	view, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	sessionID := view.SessionID

	_, err = svc.ToggleService(ctx, sessionID, "website")
	require.NoError(t, err)

	_, err = svc.GoTo(ctx, sessionID, 3)
	assert.True(t, IsStateError(err))

	// Visit the config step, retreat, then jump forward over visited ground.
	_, err = svc.Advance(ctx, sessionID)
	require.NoError(t, err)
	_, err = svc.Retreat(ctx, sessionID)
	require.NoError(t, err)
	view, err = svc.GoTo(ctx, sessionID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, view.CurrentStep)
}

func TestSessionRevisitedConfigStepKeepsSettings(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	view, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	sessionID := view.SessionID

	_, err = svc.ToggleService(ctx, sessionID, "website")
	require.NoError(t, err)
	_, err = svc.SetSingleChoice(ctx, sessionID, "website", "cms", "dynamic")
	require.NoError(t, err)

	_, err = svc.Advance(ctx, sessionID)
	require.NoError(t, err)
	_, err = svc.Advance(ctx, sessionID)
	require.NoError(t, err)
	_, err = svc.Retreat(ctx, sessionID)
	require.NoError(t, err)

	view, err = svc.GetSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "dynamic", view.Selection.PerServiceSettings["website"]["cms"].OptionID)
	assert.Equal(t, int64(1000), view.Quote.Total)
}

func TestSessionUnknownReferences(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	view, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = svc.ToggleService(ctx, view.SessionID, "nope")
	assert.True(t, IsValidationError(err))

	_, err = svc.GetSession(ctx, "missing-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

type failingSlot struct{}

func (failingSlot) Put(context.Context, models.Quote) error {
	return StorageError{Op: "write", Err: errors.New("over quota")}
}
func (failingSlot) Peek(context.Context) (*models.Quote, error) {
	return nil, StorageError{Op: "read", Err: errors.New("unavailable")}
}
func (failingSlot) Take(context.Context) (*models.Quote, error) {
	return nil, StorageError{Op: "read", Err: errors.New("unavailable")}
}
func (failingSlot) Clear(context.Context) error {
	return StorageError{Op: "clear", Err: errors.New("unavailable")}
}

// A catalog restricted to a single configurable service is the same engine,
// not a separate code path.
func TestSingleServiceCatalogSubset(t *testing.T) {
	ctx := context.Background()
	byID := testCatalog(t)
	svc, slot := newTestService()
	svc.Catalog = catalogRepo.NewMemoryCatalogRepo(byID["website"])

	view, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	sessionID := view.SessionID

	_, err = svc.ToggleService(ctx, sessionID, "social-media")
	assert.True(t, IsValidationError(err), "services outside the subset are unknown ids")

	view, err = svc.ToggleService(ctx, sessionID, "website")
	require.NoError(t, err)
	assert.Equal(t, 3, view.TotalSteps)
	assert.Equal(t, int64(700), view.Quote.Total)

	q, err := svc.Finalize(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, int64(700), q.Total)

	pending, err := slot.Peek(ctx)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, q.QuoteID, pending.QuoteID)
}

func TestFinalizeSurvivesHandoffFailure(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	svc.Handoff = failingSlot{}

	view, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	_, err = svc.ToggleService(ctx, view.SessionID, "social-media")
	require.NoError(t, err)

	// The write fails best-effort: the quote still comes back and the
	// wizard session stays intact.
	q, err := svc.Finalize(ctx, view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, int64(300), q.Total)

	again, err := svc.GetSession(ctx, view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, int64(300), again.Quote.Total)
}
