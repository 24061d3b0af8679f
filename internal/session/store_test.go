package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/internal/service"
	"tableside/internal/session"
)

func TestStore_IdleSessionsExpire(t *testing.T) {
	now := time.Date(2024, 12, 20, 18, 0, 0, 0, time.UTC)
	store := session.NewStore(service.NewSequenceGenerator("s-"))
	store.IdleTTL = time.Hour
	store.Now = func() time.Time { return now }

	idle := store.Create()
	active := store.Create()

	now = now.Add(50 * time.Minute)
	_, err := store.Get(active.ID)
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	_, err = store.Get(idle.ID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	got, err := store.Get(active.ID)
	require.NoError(t, err)
	assert.Same(t, active, got)

	now = now.Add(2 * time.Hour)
	store.Create()
	assert.Equal(t, 1, store.Len())
}

func TestStore_ZeroTTLKeepsSessions(t *testing.T) {
	now := time.Date(2024, 12, 20, 18, 0, 0, 0, time.UTC)
	store := session.NewStore(service.NewSequenceGenerator("s-"))
	store.IdleTTL = 0
	store.Now = func() time.Time { return now }

	sess := store.Create()
	now = now.Add(1000 * time.Hour)
	_, err := store.Get(sess.ID)
	assert.NoError(t, err)
}
