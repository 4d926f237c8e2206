// Package notification holds the newest-first list of transient alerts.
package notification

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"socialboot/internal/kv"
	"socialboot/internal/platform/metrics"
	dErrors "socialboot/pkg/domain-errors"
	"socialboot/pkg/platform/sentinel"
)

// SuccessTTL is how long a success alert stays before removing itself.
const SuccessTTL = 5 * time.Second

// Store owns the alert list.
type Store struct {
	kv        kv.Store
	logger    *slog.Logger
	metrics   *metrics.Metrics
	scheduler Scheduler
	clock     func() time.Time

	mu    sync.RWMutex
	items []Notification
}

type Option func(s *Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// WithScheduler replaces the timer used for success expiry.
func WithScheduler(scheduler Scheduler) Option {
	return func(s *Store) {
		if scheduler != nil {
			s.scheduler = scheduler
		}
	}
}

// WithClock sets the clock used to default timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func New(store kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:        store,
		logger:    slog.Default(),
		scheduler: TimerScheduler{},
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted list; absent or unreadable lists start empty and
// an unreadable entry is deleted.
func (s *Store) Load(ctx context.Context) error {
	var items []Notification
	found, err := kv.LoadJSON(ctx, s.kv, kv.KeyNotifications, &items)
	if err != nil {
		if !errors.Is(err, sentinel.ErrCorrupt) {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load notifications")
		}
		s.logger.WarnContext(ctx, "discarding corrupt notification list",
			"key", kv.KeyNotifications,
			"error", err,
		)
		s.metrics.IncCorruption("notification")
		if err := s.kv.Delete(ctx, kv.KeyNotifications); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to discard notifications")
		}
		found = false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !found {
		s.items = nil
		return nil
	}
	s.items = items
	return nil
}

// List returns the alerts newest first.
func (s *Store) List() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Notification{}, s.items...)
}

// Add prepends n, defaulting its timestamp. Success alerts are removed again
// after SuccessTTL; that timer is never cancelled.
func (s *Store) Add(ctx context.Context, n Notification) error {
	if n.ID == "" {
		return dErrors.New(dErrors.CodeValidation, "notification id is required")
	}
	if !n.Severity.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "notification type must be one of success, error, info, warning")
	}
	if n.Timestamp == 0 {
		n.Timestamp = s.clock().UnixMilli()
	}

	s.mu.Lock()
	next := make([]Notification, 0, len(s.items)+1)
	next = append(next, n)
	next = append(next, s.items...)
	err := s.commit(ctx, next)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.metrics.IncNotification(string(n.Severity))
	if n.Severity == SeveritySuccess {
		id := n.ID
		s.scheduler.AfterFunc(SuccessTTL, func() { s.expire(id) })
	}
	return nil
}

func (s *Store) expire(id string) {
	ctx := context.Background()
	removed, err := s.remove(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to expire notification",
			"notification_id", id,
			"error", err,
		)
		return
	}
	if removed {
		s.metrics.IncNotificationExpired()
	}
}

// Remove drops the alert with id. Unknown ids are ignored.
func (s *Store) Remove(ctx context.Context, id string) error {
	_, err := s.remove(ctx, id)
	return err
}

func (s *Store) remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]Notification, 0, len(s.items))
	for _, n := range s.items {
		if n.ID != id {
			next = append(next, n)
		}
	}
	if len(next) == len(s.items) {
		return false, nil
	}
	return true, s.commit(ctx, next)
}

// Clear drops every alert.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, []Notification{})
}

// commit persists next then applies it. Callers hold s.mu.
func (s *Store) commit(ctx context.Context, next []Notification) error {
	if err := kv.SaveJSON(ctx, s.kv, kv.KeyNotifications, next); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist notifications")
	}
	s.items = next
	return nil
}
