package audit

import (
	"context"
	"log/slog"
)

// LogSink writes events as structured log lines. It is the default sink when
// no broker is configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Append(ctx context.Context, event Event) error {
	s.logger.InfoContext(ctx, "audit",
		"action", event.Action,
		"outcome", event.Outcome,
		"session_id", event.SessionID,
		"subject", event.Subject,
		"reason", event.Reason,
		"device", event.Device,
		"request_id", event.RequestID,
		"timestamp", event.Timestamp,
	)
	return nil
}
