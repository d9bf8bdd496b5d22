package dialogue

import (
	"context"
	"testing"
	"time"

	"driveline/models"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	ctx := context.Background()

	session := models.NewChatSession("s1")
	session.State = models.StateAwaitingDate
	session.UpdatedAt = time.Now()
	assert.NoError(t, store.Put(ctx, session))

	got, err := store.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, models.StateAwaitingDate, got.State)

	keys, err := store.Keys(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"s1"}, keys)

	assert.NoError(t, store.Delete(ctx, "s1"))
	got, err = store.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreUnknownID(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)

	got, err := store.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreEvictsIdleSessions(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	ctx := context.Background()

	session := models.NewChatSession("stale")
	session.UpdatedAt = time.Now().Add(-time.Hour)
	assert.NoError(t, store.Put(ctx, session))

	got, err := store.Get(ctx, "stale")
	assert.NoError(t, err)
	assert.Nil(t, got, "idle session past TTL must read as absent")
}

func TestMemoryStoreSweep(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	ctx := context.Background()

	stale := models.NewChatSession("stale")
	stale.UpdatedAt = time.Now().Add(-time.Hour)
	fresh := models.NewChatSession("fresh")
	fresh.UpdatedAt = time.Now()
	assert.NoError(t, store.Put(ctx, stale))
	assert.NoError(t, store.Put(ctx, fresh))

	store.sweep()

	keys, err := store.Keys(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, keys)
}

func TestMemoryStoreCopiesOnReadAndWrite(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	ctx := context.Background()

	session := models.NewChatSession("s1")
	session.UpdatedAt = time.Now()
	assert.NoError(t, store.Put(ctx, session))

	// Mutating the caller's copy after Put must not leak into the store.
	session.State = models.StateAwaitingConfirmation
	got, _ := store.Get(ctx, "s1")
	assert.Equal(t, models.StateIdle, got.State)

	// Mutating a Get result must not leak either.
	got.State = models.StateAwaitingConfirmation
	again, _ := store.Get(ctx, "s1")
	assert.Equal(t, models.StateIdle, again.State)
}
