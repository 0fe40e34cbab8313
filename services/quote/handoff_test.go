package quote

import (
	"context"
	"testing"

	"quotely/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandoffSlotOneShot(t *testing.T) {
	ctx := context.Background()
	slot := &MemoryHandoffSlot{}

	q := Snapshot(models.Quote{Total: 700})
	require.NoError(t, slot.Put(ctx, q))

	got, err := slot.Take(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, q.QuoteID, got.QuoteID)

	// After a read-then-clear, a second read finds nothing.
	got, err = slot.Take(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestHandoffSlotOverwrites(t *testing.T) {
	ctx := context.Background()
	slot := &MemoryHandoffSlot{}

	first := Snapshot(models.Quote{Total: 300})
	second := Snapshot(models.Quote{Total: 5750})
	require.NoError(t, slot.Put(ctx, first))
	require.NoError(t, slot.Put(ctx, second))

	got, err := slot.Peek(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, second.QuoteID, got.QuoteID)
	assert.Equal(t, int64(5750), got.Total)
}

func TestHandoffPeekDoesNotConsume(t *testing.T) {
	ctx := context.Background()
	slot := &MemoryHandoffSlot{}

	require.NoError(t, slot.Put(ctx, Snapshot(models.Quote{Total: 200})))

	for i := 0; i < 2; i++ {
		got, err := slot.Peek(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
	}
}

func TestSnapshotStampsIdentity(t *testing.T) {
	q := Snapshot(models.Quote{Total: 42})
	assert.NotEmpty(t, q.QuoteID)
	assert.False(t, q.CreatedAt.IsZero())

	other := Snapshot(models.Quote{Total: 42})
	assert.NotEqual(t, q.QuoteID, other.QuoteID)
}
