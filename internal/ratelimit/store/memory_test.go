package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payzee/internal/ratelimit/models"
)

func TestMemoryUpdateCreatesRecord(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	_, ok, err := s.Get(ctx, "login:abc:10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	rec, err := s.Update(ctx, "login:abc:10.0.0.1", func(l models.Lockout) models.Lockout {
		l.Failures++
		return l
	})
	require.NoError(t, err)
	assert.Equal(t, "login:abc:10.0.0.1", rec.Key)
	assert.Equal(t, 1, rec.Failures)

	got, ok, err := s.Get(ctx, "login:abc:10.0.0.1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rec, got)

	require.NoError(t, s.Clear(ctx, "login:abc:10.0.0.1"))
	assert.Zero(t, s.Len())
}

func TestMemorySweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	window := 15 * time.Minute
	s := NewMemory()

	put := func(key string, l models.Lockout) {
		_, err := s.Update(ctx, key, func(models.Lockout) models.Lockout { return l })
		require.NoError(t, err)
	}
	put("stale", models.Lockout{Failures: 2, WindowStart: now.Add(-time.Hour)})
	put("in-window", models.Lockout{Failures: 2, WindowStart: now.Add(-time.Minute)})
	put("locked", models.Lockout{Failures: 5, WindowStart: now.Add(-time.Hour), LockedUntil: now.Add(time.Minute)})

	removed, err := s.Sweep(ctx, now, window)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, s.Len())

	_, ok, _ := s.Get(ctx, "stale")
	assert.False(t, ok)
}
