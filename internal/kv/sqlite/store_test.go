package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialboot/pkg/platform/sentinel"
)

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}

func TestStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	store, err := Open(path)
	require.NoError(t, err)

	_, err = store.Get(ctx, "token")
	require.ErrorIs(t, err, sentinel.ErrNotFound)

	require.NoError(t, store.Set(ctx, "token", "abc"))
	require.NoError(t, store.Set(ctx, "token", "def"))
	require.NoError(t, store.Set(ctx, "tasks", "[]"))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	v, err := reopened.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "def", v)

	require.NoError(t, reopened.Delete(ctx, "token"))
	require.NoError(t, reopened.Delete(ctx, "token"))
	_, err = reopened.Get(ctx, "token")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	v, err = reopened.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}
