package audit

import (
	"context"
	"log/slog"
)

const defaultBuffer = 256

// Worker decouples callers from a slow sink: Append enqueues and Run drains
// the queue into the wrapped sink. When the queue is full the event is
// dropped and logged rather than blocking the request path.
type Worker struct {
	sink   Sink
	inbox  chan Event
	logger *slog.Logger
}

func NewWorker(sink Sink, buffer int, logger *slog.Logger) *Worker {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Worker{sink: sink, inbox: make(chan Event, buffer), logger: logger}
}

func (w *Worker) Append(ctx context.Context, event Event) error {
	select {
	case w.inbox <- event:
	default:
		w.logger.WarnContext(ctx, "audit queue full, dropping event",
			"action", event.Action,
			"session_id", event.SessionID,
		)
	}
	return nil
}

// Run forwards queued events until ctx is done, then flushes what is left.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return ctx.Err()
		case event := <-w.inbox:
			w.forward(ctx, event)
		}
	}
}

func (w *Worker) drain() {
	for {
		select {
		case event := <-w.inbox:
			w.forward(context.Background(), event)
		default:
			return
		}
	}
}

func (w *Worker) forward(ctx context.Context, event Event) {
	if err := w.sink.Append(ctx, event); err != nil {
		w.logger.ErrorContext(ctx, "failed to forward audit event",
			"action", event.Action,
			"error", err,
		)
	}
}
