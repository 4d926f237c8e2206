// Package social keeps the linked social profiles of the active session.
package social

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"socialboot/internal/kv"
	"socialboot/internal/platform/metrics"
	dErrors "socialboot/pkg/domain-errors"
	"socialboot/pkg/platform/sentinel"
)

// Store is scoped to the session reported through OnSessionChanged.
type Store struct {
	kv      kv.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	newID   func() string

	mu        sync.RWMutex
	sessionID string
	profiles  []Profile
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

// WithIDGenerator overrides profile id generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func New(store kv.Store, opts ...Option) *Store {
	s := &Store{kv: store, logger: slog.Default(), newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnSessionChanged loads the profiles of sessionID, or empties the store
// when sessionID is "".
func (s *Store) OnSessionChanged(ctx context.Context, sessionID string) error {
	var profiles []Profile
	if sessionID != "" {
		key := kv.SocialProfilesKey(sessionID)
		_, err := kv.LoadJSON(ctx, s.kv, key, &profiles)
		if err != nil {
			if !errors.Is(err, sentinel.ErrCorrupt) {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load social profiles")
			}
			s.logger.WarnContext(ctx, "discarding corrupt social profiles",
				"key", key,
				"error", err,
			)
			s.metrics.IncCorruption("social")
			if err := s.kv.Delete(ctx, key); err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to discard social profiles")
			}
			profiles = nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionID = sessionID
	s.profiles = profiles
	return nil
}

// List returns the profiles of the active session.
func (s *Store) List() []Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Profile{}, s.profiles...)
}

// Add links a new profile.
func (s *Store) Add(ctx context.Context, in Input) (Profile, error) {
	if err := in.Validate(); err != nil {
		return Profile{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionID == "" {
		return Profile{}, dErrors.New(dErrors.CodeUnauthorized, "no active session")
	}
	p := Profile{
		ID:        s.newID(),
		UserID:    s.sessionID,
		Platform:  in.Platform,
		Username:  in.Username,
		URL:       in.URL,
		Followers: in.Followers,
	}
	next := append(append([]Profile{}, s.profiles...), p)
	if err := s.commit(ctx, next); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Update replaces the editable fields of profile id.
func (s *Store) Update(ctx context.Context, id string, in Input) (Profile, error) {
	if err := in.Validate(); err != nil {
		return Profile{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionID == "" {
		return Profile{}, dErrors.New(dErrors.CodeUnauthorized, "no active session")
	}
	next := append([]Profile{}, s.profiles...)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		next[i].Platform = in.Platform
		next[i].Username = in.Username
		next[i].URL = in.URL
		next[i].Followers = in.Followers
		if err := s.commit(ctx, next); err != nil {
			return Profile{}, err
		}
		return next[i], nil
	}
	return Profile{}, dErrors.New(dErrors.CodeNotFound, "social profile not found")
}

// Delete unlinks profile id. Unknown ids are ignored.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionID == "" {
		return nil
	}
	next := make([]Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		if p.ID != id {
			next = append(next, p)
		}
	}
	if len(next) == len(s.profiles) {
		return nil
	}
	return s.commit(ctx, next)
}

// TotalFollowers sums followers across linked profiles.
func (s *Store) TotalFollowers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, p := range s.profiles {
		total += p.Followers
	}
	return total
}

// commit persists next then applies it. Callers hold s.mu.
func (s *Store) commit(ctx context.Context, next []Profile) error {
	if err := kv.SaveJSON(ctx, s.kv, kv.SocialProfilesKey(s.sessionID), next); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist social profiles")
	}
	s.profiles = next
	return nil
}
