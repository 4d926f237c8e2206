package root

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SOCIALBOOT_KV_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "boostctl.db"))
	t.Setenv("AUTH_LATENCY", "0s")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func signIn(t *testing.T) {
	t.Helper()
	e, cleanup, err := openApp(context.Background())
	require.NoError(t, err)
	defer cleanup()
	_, err = e.app.Session.Login(context.Background(), "ana@example.com", "pw")
	require.NoError(t, err)
}

func TestTasksCommands(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "tasks", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Upload 10 Reels")
	assert.Contains(t, out, "0/10 (0%)")

	out, err = run(t, "tasks", "progress", "upload-reels", "15")
	require.NoError(t, err)
	assert.Contains(t, out, "10/10 (100%)")

	out, err = run(t, "tasks", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ready to claim", "progress must survive a new process")

	_, err = run(t, "tasks", "progress", "likes", "1")
	assert.Error(t, err)
	_, err = run(t, "tasks", "progress", "upload-reels", "many")
	assert.Error(t, err)
}

func TestSessionAndWalletCommands(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "wallet", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "not signed in")

	signIn(t)

	out, err = run(t, "session", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "ana@example.com")
	assert.Contains(t, out, "Token expires")

	out, err = run(t, "wallet", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "50 coins")

	out, err = run(t, "session", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "signed out")

	out, err = run(t, "session", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "not signed in")
}

func TestNotificationsCommands(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "notifications", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no notifications")

	e, cleanup, err := openApp(context.Background())
	require.NoError(t, err)
	require.Error(t, e.app.UploadReels(context.Background(), 0))
	cleanup()

	out, err = run(t, "notifications", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No Files Selected")

	_, err = run(t, "notifications", "clear")
	require.NoError(t, err)
	out, err = run(t, "notifications", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no notifications")
}

func TestFollowersCommands(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "followers", "list", "--follows-you")
	require.NoError(t, err)
	assert.Contains(t, out, "Emma Watson")
	assert.NotContains(t, out, "James Smith")

	for range 2 {
		_, err = run(t, "followers", "follow", "1")
		require.NoError(t, err)
	}
	out, err = run(t, "followers", "list", "-q", "emma")
	require.NoError(t, err)
	assert.Contains(t, out, "following")
	assert.Contains(t, out, "Following: 1")

	out, err = run(t, "tasks", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1/10 (10%)", "a repeated follow counts once")

	_, err = run(t, "followers", "follow", "nobody")
	assert.Error(t, err)
}
