package audit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialboot/pkg/requestcontext"
)

func TestPublisherEnrichesFromContext(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)
	ctx = requestcontext.WithRequestID(ctx, "req-1")
	ctx = requestcontext.WithClientMetadata(ctx, "10.0.0.1",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	rec := NewRecorder()
	require.NoError(t, NewPublisher(rec).Emit(ctx, Event{Action: ActionLogin, SessionID: "s1"}))

	events := rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, now, events[0].Timestamp)
	assert.Equal(t, "req-1", events[0].RequestID)
	assert.Contains(t, events[0].Device, "Chrome")
}

func TestPublisherKeepsCallerFields(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := NewRecorder()
	err := NewPublisher(rec).Emit(context.Background(), Event{
		Action:    ActionLogout,
		Timestamp: at,
		RequestID: "explicit",
		Device:    "CLI",
	})
	require.NoError(t, err)
	got := rec.Events()[0]
	assert.Equal(t, at, got.Timestamp)
	assert.Equal(t, "explicit", got.RequestID)
	assert.Equal(t, "CLI", got.Device)
}

func TestLogSinkWritesAction(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(slog.New(slog.NewJSONHandler(&buf, nil)))
	require.NoError(t, sink.Append(context.Background(), Event{Action: ActionTaskCompleted, Subject: "1"}))
	assert.Contains(t, buf.String(), `"action":"task_completed"`)
	assert.Contains(t, buf.String(), `"subject":"1"`)
}

type failingSink struct{ calls int }

func (f *failingSink) Append(context.Context, Event) error {
	f.calls++
	return errors.New("broker down")
}

func TestWorker(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	t.Run("forwards queued events and flushes on shutdown", func(t *testing.T) {
		rec := NewRecorder()
		w := NewWorker(rec, 4, logger)
		ctx, cancel := context.WithCancel(context.Background())

		require.NoError(t, w.Append(ctx, Event{Action: ActionLogin}))
		require.NoError(t, w.Append(ctx, Event{Action: ActionLogout}))
		cancel()

		err := w.Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, []Action{ActionLogin, ActionLogout}, rec.Actions())
	})

	t.Run("drops events when the queue is full", func(t *testing.T) {
		rec := NewRecorder()
		w := NewWorker(rec, 1, logger)
		ctx, cancel := context.WithCancel(context.Background())

		require.NoError(t, w.Append(ctx, Event{Action: ActionLogin}))
		require.NoError(t, w.Append(ctx, Event{Action: ActionSignup}))
		cancel()
		_ = w.Run(ctx)

		assert.Equal(t, []Action{ActionLogin}, rec.Actions())
	})

	t.Run("sink failures are logged not returned", func(t *testing.T) {
		sink := &failingSink{}
		w := NewWorker(sink, 2, logger)
		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, w.Append(ctx, Event{Action: ActionLogin}))
		cancel()
		assert.ErrorIs(t, w.Run(ctx), context.Canceled)
		assert.Equal(t, 1, sink.calls)
	})
}
