package intake

import (
	"context"
	"errors"
	"testing"

	"quotely/models"
	"quotely/services/quote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func pendingQuote() models.Quote {
	return quote.Snapshot(models.Quote{
		Services: []models.ServiceQuote{
			{
				ServiceID:   "website",
				ServiceName: "Website Development",
				BasePrice:   700,
				LineItems: []models.QuoteLineItem{
					{Label: "Custom design", Price: 500},
					{Label: "Static site", Price: -100},
				},
				Subtotal: 1100,
			},
			{
				ServiceID:   "social-media",
				ServiceName: "Social Media Management",
				BasePrice:   300,
				LineItems:   []models.QuoteLineItem{},
				Subtotal:    300,
			},
		},
		Total: 1400,
	})
}

func newTestIntake() (*DefaultIntakeService, *quote.MemoryHandoffSlot) {
	slot := &quote.MemoryHandoffSlot{}
	return &DefaultIntakeService{Handoff: slot, Logger: zap.NewNop()}, slot
}

func TestPendingQuoteSummary(t *testing.T) {
	ctx := context.Background()
	svc, slot := newTestIntake()
	require.NoError(t, slot.Put(ctx, pendingQuote()))

	summary, err := svc.PendingQuote(ctx)
	require.NoError(t, err)
	require.NotNil(t, summary)

	require.Len(t, summary.Services, 2)
	assert.Equal(t, "Website Development", summary.Services[0].ServiceName)
	assert.Equal(t, int64(1100), summary.Services[0].Subtotal)
	assert.Equal(t, int64(1400), summary.Total)
}

func TestPendingQuoteAbsent(t *testing.T) {
	svc, _ := newTestIntake()

	summary, err := svc.PendingQuote(context.Background())
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestBuildPrefillText(t *testing.T) {
	text := BuildPrefill(pendingQuote())

	want := "Website Development (base 700)\n" +
		"  Custom design: +500\n" +
		"  Static site: -100\n" +
		"  Subtotal: 1100\n\n" +
		"Social Media Management (base 300)\n" +
		"  Subtotal: 300\n\n" +
		"Total: 1400"
	assert.Equal(t, want, text)
}

func TestCompleteConsumesSlot(t *testing.T) {
	ctx := context.Background()
	svc, slot := newTestIntake()
	require.NoError(t, slot.Put(ctx, pendingQuote()))

	require.NoError(t, svc.Complete(ctx))

	// One-shot: after completion the slot reads as absent.
	summary, err := svc.PendingQuote(ctx)
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestAbandonedFlowLeavesSlotUntouched(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestIntake()

	q := pendingQuote()
	require.NoError(t, svc.Handoff.Put(ctx, q))

	// Peeking twice (two page loads) without completing keeps the quote.
	for i := 0; i < 2; i++ {
		summary, err := svc.PendingQuote(ctx)
		require.NoError(t, err)
		require.NotNil(t, summary)
		assert.Equal(t, q.QuoteID, summary.Quote.QuoteID)
	}
}

type brokenSlot struct{}

func (brokenSlot) Put(context.Context, models.Quote) error {
	return quote.StorageError{Op: "write", Err: errors.New("unavailable")}
}
func (brokenSlot) Peek(context.Context) (*models.Quote, error) {
	return nil, quote.StorageError{Op: "read", Err: errors.New("unavailable")}
}
func (brokenSlot) Take(context.Context) (*models.Quote, error) {
	return nil, quote.StorageError{Op: "read", Err: errors.New("unavailable")}
}
func (brokenSlot) Clear(context.Context) error {
	return quote.StorageError{Op: "clear", Err: errors.New("unavailable")}
}

func TestPendingQuoteStorageFailureReadsAsAbsent(t *testing.T) {
	svc := &DefaultIntakeService{Handoff: brokenSlot{}, Logger: zap.NewNop()}

	summary, err := svc.PendingQuote(context.Background())
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestCompleteStorageFailureIsNotFatal(t *testing.T) {
	svc := &DefaultIntakeService{Handoff: brokenSlot{}, Logger: zap.NewNop()}

	assert.NoError(t, svc.Complete(context.Background()))
}
