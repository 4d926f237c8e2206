package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIDIsStablePerAddress(t *testing.T) {
	assert.Equal(t, SessionID("Ana@Example.com"), SessionID(" ana@example.com "))
	assert.NotEqual(t, SessionID("ana@example.com"), SessionID("bob@example.com"))
}

func TestMockAuthenticator(t *testing.T) {
	tokens := NewTokenIssuer("test-key", time.Hour)
	auth := NewMockAuthenticator(0, tokens)
	ctx := context.Background()

	t.Run("login derives the record from the email", func(t *testing.T) {
		id, err := auth.Login(ctx, "ana.lima@example.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, SessionID("ana.lima@example.com"), id.Record.ID)
		assert.Equal(t, "Ana Lima", id.Record.Name)
		assert.Equal(t, "ana.lima", id.Record.Username)
		assert.Equal(t, defaultBio, id.Record.Bio)
		assert.Nil(t, id.Record.Avatar)

		claims, err := tokens.Validate(id.Token)
		require.NoError(t, err)
		assert.Equal(t, id.Record.ID, claims.SessionID)
	})

	t.Run("signup keeps the given name and uses the local part as username", func(t *testing.T) {
		id, err := auth.Signup(ctx, "Ana", "ana@example.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, "Ana", id.Record.Name)
		assert.Equal(t, "ana", id.Record.Username)
		assert.Empty(t, id.Record.Bio)
	})

	t.Run("latency honours cancellation", func(t *testing.T) {
		slow := NewMockAuthenticator(time.Minute, tokens)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := slow.Login(cctx, "ana@example.com", "pw")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("latency elapses before resolving", func(t *testing.T) {
		delayed := NewMockAuthenticator(20*time.Millisecond, tokens)
		start := time.Now()
		_, err := delayed.Login(ctx, "ana@example.com", "pw")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})
}

func TestTokenIssuer(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	issuer := NewTokenIssuer("key", time.Hour)
	issuer.clock = func() time.Time { return now }

	token, err := issuer.Issue(Record{ID: "s1", Email: "a@b.com"})
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "s1", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)

	_, err = NewTokenIssuer("other-key", time.Hour).Validate(token)
	assert.Error(t, err, "signature from another key is rejected")

	issuer.clock = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = issuer.Validate(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}
