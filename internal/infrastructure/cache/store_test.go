package cache

import (
	"context"
	"testing"
	"time"

	"github.com/aims/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	defer store.Close()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	t.Run("miss", func(t *testing.T) {
		_, ok, err := store.Get(ctx, "absent")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))
		got, ok, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("expires", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "short", []byte("v"), time.Second))
		now = now.Add(2 * time.Second)

		_, ok, err := store.Get(ctx, "short")
		require.NoError(t, err)
		assert.False(t, ok)

		store.sweep()
		_, present := store.entries["short"]
		assert.False(t, present)
	})

	t.Run("delete", func(t *testing.T) {
		s := NewMemoryStore(0)
		defer s.Close()
		require.NoError(t, s.Set(ctx, "a", []byte("1"), 0))
		require.NoError(t, s.Set(ctx, "b", []byte("2"), 0))
		require.NoError(t, s.Set(ctx, "c", []byte("3"), 0))
		require.NoError(t, s.Delete(ctx, "a", "b"))
		assert.Equal(t, 1, s.Len())

		_, ok, err := s.Get(ctx, "c")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		s := NewMemoryStore(time.Millisecond)
		assert.NoError(t, s.Close())
		assert.NoError(t, s.Close())
	})
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	defer store.Close()

	type payload struct {
		Total int `json:"total"`
	}

	require.NoError(t, SetJSON(ctx, store, "stats", payload{Total: 200}, time.Minute))

	var got payload
	ok, err := GetJSON(ctx, store, "stats", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 200, got.Total)

	require.NoError(t, store.Set(ctx, "broken", []byte("{"), time.Minute))
	ok, err = GetJSON(ctx, store, "broken", &got)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNoopStore(t *testing.T) {
	ctx := context.Background()
	var s Store = NoopStore{}

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewStore(t *testing.T) {
	t.Run("disabled returns noop", func(t *testing.T) {
		assert.IsType(t, NoopStore{}, NewStore(config.RedisConfig{}, zap.NewNop()))
	})

	t.Run("unreachable redis falls back to noop", func(t *testing.T) {
		core, recorded := observer.New(zapcore.WarnLevel)
		store := NewStore(config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1}, zap.New(core))

		assert.IsType(t, NoopStore{}, store)
		assert.Equal(t, 1, recorded.FilterMessage("Redis unavailable, serving without cache").Len())
	})
}
