package kv_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialboot/internal/kv"
	"socialboot/internal/kv/memory"
	"socialboot/internal/platform/metrics"
	"socialboot/pkg/platform/sentinel"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoadSaveJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("absent key reports not found without error", func(t *testing.T) {
		var got payload
		found, err := kv.LoadJSON(ctx, memory.New(), "missing", &got)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("round trip", func(t *testing.T) {
		store := memory.New()
		require.NoError(t, kv.SaveJSON(ctx, store, "k", payload{Name: "a", Count: 3}))

		var got payload
		found, err := kv.LoadJSON(ctx, store, "k", &got)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, payload{Name: "a", Count: 3}, got)
	})

	t.Run("undecodable value is corrupt", func(t *testing.T) {
		store := memory.New()
		require.NoError(t, store.Set(ctx, "k", "{not json"))

		var got payload
		found, err := kv.LoadJSON(ctx, store, "k", &got)
		require.ErrorIs(t, err, sentinel.ErrCorrupt)
		assert.False(t, found)
	})
}

func TestInstrument(t *testing.T) {
	ctx := context.Background()
	inner := memory.New()

	assert.Same(t, kv.Store(inner), kv.Instrument(inner, nil))

	store := kv.Instrument(inner, metrics.New(prometheus.NewRegistry()))
	require.NoError(t, store.Set(ctx, "a", "1"))
	v, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
	require.NoError(t, store.Delete(ctx, "a"))
	_, err = inner.Get(ctx, "a")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "coins-abc", kv.WalletKey("abc"))
	assert.Equal(t, "social-profiles-abc", kv.SocialProfilesKey("abc"))
}
