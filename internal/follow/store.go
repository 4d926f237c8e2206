// Package follow keeps the suggested-users directory and which of its users
// are followed. Like the task list it is global, not scoped to a session.
package follow

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"socialboot/internal/kv"
	"socialboot/internal/platform/metrics"
	dErrors "socialboot/pkg/domain-errors"
	"socialboot/pkg/platform/sentinel"
)

// Store owns the followed set. Follow and Unfollow only report a change on a
// real transition, so repeating either is a no-op.
type Store struct {
	kv        kv.Store
	logger    *slog.Logger
	metrics   *metrics.Metrics
	directory []User

	mu        sync.RWMutex
	following map[string]struct{}
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

// WithDirectory replaces the built-in directory.
func WithDirectory(users []User) Option {
	return func(s *Store) {
		s.directory = append([]User{}, users...)
	}
}

func New(store kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:        store,
		logger:    slog.Default(),
		directory: Defaults(),
		following: map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the followed set. An unreadable entry is deleted and ids that
// are not in the directory are dropped.
func (s *Store) Load(ctx context.Context) error {
	var ids []string
	_, err := kv.LoadJSON(ctx, s.kv, kv.KeyFollowing, &ids)
	if err != nil {
		if !errors.Is(err, sentinel.ErrCorrupt) {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load followed users")
		}
		s.logger.WarnContext(ctx, "discarding corrupt followed users",
			"key", kv.KeyFollowing,
			"error", err,
		)
		s.metrics.IncCorruption("follow")
		if err := s.kv.Delete(ctx, kv.KeyFollowing); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to discard followed users")
		}
		ids = nil
	}

	following := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if s.indexOf(id) >= 0 {
			following[id] = struct{}{}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.following = following
	return nil
}

// List returns the directory users matching f, in directory order.
func (s *Store) List(f Filter) []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []User{}
	for _, u := range s.directory {
		if !f.matches(u) {
			continue
		}
		_, u.IsFollowing = s.following[u.ID]
		out = append(out, u)
	}
	return out
}

// Count is the number of followed users.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.following)
}

// Follow marks user id as followed and reports whether it was not already.
func (s *Store) Follow(ctx context.Context, id string) (User, bool, error) {
	return s.set(ctx, id, true)
}

// Unfollow clears user id and reports whether it was followed.
func (s *Store) Unfollow(ctx context.Context, id string) (User, bool, error) {
	return s.set(ctx, id, false)
}

func (s *Store) set(ctx context.Context, id string, follow bool) (User, bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return User{}, false, dErrors.New(dErrors.CodeNotFound, "user not found")
	}
	u := s.directory[i]

	s.mu.Lock()
	defer s.mu.Unlock()
	_, already := s.following[id]
	u.IsFollowing = already
	if already == follow {
		return u, false, nil
	}

	next := make(map[string]struct{}, len(s.following)+1)
	for k := range s.following {
		next[k] = struct{}{}
	}
	if follow {
		next[id] = struct{}{}
	} else {
		delete(next, id)
	}
	if err := s.commit(ctx, next); err != nil {
		return User{}, false, err
	}
	u.IsFollowing = follow
	return u, true, nil
}

// commit persists next then applies it. Callers hold s.mu.
func (s *Store) commit(ctx context.Context, next map[string]struct{}) error {
	ids := make([]string, 0, len(next))
	for id := range next {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if err := kv.SaveJSON(ctx, s.kv, kv.KeyFollowing, ids); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist followed users")
	}
	s.following = next
	return nil
}

func (s *Store) indexOf(id string) int {
	for i, u := range s.directory {
		if u.ID == id {
			return i
		}
	}
	return -1
}
