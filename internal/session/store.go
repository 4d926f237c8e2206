// Package session owns the single active session record and its bearer token.
//
// Login and Signup suspend only inside the Authenticator and never while the
// store lock is held. Each call takes a generation ticket before suspending;
// Logout and newer logins advance the generation, so a resolution that
// arrives after the session changed is discarded instead of applied.
//
// Every committed change also advances a commit sequence. Observers are
// notified one change at a time, and a notification whose sequence is no
// longer current is dropped, so observers always end on the state the store
// holds.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"socialboot/internal/audit"
	"socialboot/internal/kv"
	"socialboot/internal/platform/metrics"
	dErrors "socialboot/pkg/domain-errors"
	"socialboot/pkg/platform/sentinel"
)

// undefinedEntry is what a client that serialised a missing value leaves behind.
const undefinedEntry = "undefined"

// Observer is told about changes of the active session. rec is nil when no
// session is active. A change superseded before delivery is skipped.
type Observer func(ctx context.Context, rec *Record)

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Store holds the active session.
type Store struct {
	kv             kv.Store
	auth           Authenticator
	logger         *slog.Logger
	metrics        *metrics.Metrics
	auditPublisher AuditPublisher
	tracer         trace.Tracer

	mu        sync.RWMutex
	current   *Record
	token     string
	gen       uint64
	committed uint64
	observers []Observer

	notifyMu sync.Mutex
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

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Store) {
		s.auditPublisher = publisher
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Store) {
		s.tracer = tracer
	}
}

// New constructs a Store. Call Load to rehydrate persisted state.
func New(store kv.Store, auth Authenticator, opts ...Option) *Store {
	s := &Store{
		kv:     store,
		auth:   auth,
		logger: slog.Default(),
		tracer: otel.Tracer("socialboot/session"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers an observer. Observers run in registration order after
// the change is committed and outside the store lock.
func (s *Store) OnChange(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Current returns a copy of the active record, or nil.
func (s *Store) Current() *Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	return s.current.clone()
}

// Token returns the bearer token of the active session, or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Load rehydrates the session from the key-value store. An unreadable record
// is discarded and the store starts empty; only backend failures are returned.
func (s *Store) Load(ctx context.Context) error {
	rec, err := s.readRecord(ctx)
	if err != nil {
		return err
	}
	token := ""
	if rec != nil {
		token, err = s.kv.Get(ctx, kv.KeyToken)
		if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load session token")
		}
	}

	s.mu.Lock()
	s.current = rec
	s.token = token
	seq := s.commitLocked()
	s.mu.Unlock()

	s.notify(ctx, seq, rec)
	return nil
}

func (s *Store) readRecord(ctx context.Context) (*Record, error) {
	raw, err := s.kv.Get(ctx, kv.KeyUser)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load session")
	}
	if raw == "" || raw == undefinedEntry {
		return nil, nil
	}

	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil || rec.ID == "" {
		s.logger.WarnContext(ctx, "discarding corrupt session record",
			"key", kv.KeyUser,
			"error", err,
		)
		s.metrics.IncCorruption("session")
		if delErr := s.kv.Delete(ctx, kv.KeyUser); delErr != nil {
			s.logger.ErrorContext(ctx, "failed to delete corrupt session record", "error", delErr)
		}
		return nil, nil
	}
	return &rec, nil
}

// Login authenticates and installs a new session, replacing any prior one.
func (s *Store) Login(ctx context.Context, email, password string) (*Record, error) {
	if email == "" || password == "" {
		s.metrics.IncSessionEvent("login", "rejected")
		return nil, dErrors.New(dErrors.CodeInvalidCredentials, "Invalid credentials")
	}
	ctx, span := s.tracer.Start(ctx, "session.Login")
	defer span.End()

	ticket := s.nextGeneration()
	start := time.Now()
	identity, err := s.auth.Login(ctx, email, password)
	s.metrics.ObserveAuth("login", start)
	if err != nil {
		return nil, s.authFailed(ctx, span, audit.ActionLogin, "login", email, err)
	}
	rec, err := s.apply(ctx, ticket, identity)
	if err != nil {
		return nil, s.authFailed(ctx, span, audit.ActionLogin, "login", email, err)
	}
	span.SetAttributes(attribute.String("session.id", rec.ID))
	s.authSucceeded(ctx, audit.ActionLogin, "login", rec)
	return rec, nil
}

// Signup registers and installs a new session, replacing any prior one.
func (s *Store) Signup(ctx context.Context, name, email, password string) (*Record, error) {
	if name == "" || email == "" || password == "" {
		s.metrics.IncSessionEvent("signup", "rejected")
		return nil, dErrors.New(dErrors.CodeMissingFields, "Please fill all required fields")
	}
	ctx, span := s.tracer.Start(ctx, "session.Signup")
	defer span.End()

	ticket := s.nextGeneration()
	start := time.Now()
	identity, err := s.auth.Signup(ctx, name, email, password)
	s.metrics.ObserveAuth("signup", start)
	if err != nil {
		return nil, s.authFailed(ctx, span, audit.ActionSignup, "signup", email, err)
	}
	rec, err := s.apply(ctx, ticket, identity)
	if err != nil {
		return nil, s.authFailed(ctx, span, audit.ActionSignup, "signup", email, err)
	}
	span.SetAttributes(attribute.String("session.id", rec.ID))
	s.authSucceeded(ctx, audit.ActionSignup, "signup", rec)
	return rec, nil
}

func (s *Store) nextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

// apply installs identity if the generation still matches ticket.
func (s *Store) apply(ctx context.Context, ticket uint64, identity *Identity) (*Record, error) {
	s.mu.Lock()
	if s.gen != ticket {
		s.mu.Unlock()
		return nil, dErrors.New(dErrors.CodeConflict, "session changed while login was pending")
	}
	rec := identity.Record
	if err := kv.SaveJSON(ctx, s.kv, kv.KeyUser, rec); err != nil {
		s.mu.Unlock()
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist session")
	}
	if err := s.kv.Set(ctx, kv.KeyToken, identity.Token); err != nil {
		s.mu.Unlock()
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist session token")
	}
	s.current = rec.clone()
	s.token = identity.Token
	seq := s.commitLocked()
	s.mu.Unlock()

	s.notify(ctx, seq, rec.clone())
	return rec.clone(), nil
}

// commitLocked advances the commit sequence. Callers hold s.mu.
func (s *Store) commitLocked() uint64 {
	s.committed++
	return s.committed
}

// Logout ends the active session and removes it from persistent storage.
// It also invalidates any login still waiting on the authenticator.
//
// Removal from storage is best effort: the in-memory session ends even when a
// delete fails. Each failed key is logged and the joined error returned, and
// a record left behind is restored by the next Load.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	prev := s.current
	var errs []error
	for _, key := range []string{kv.KeyUser, kv.KeyToken} {
		if err := s.kv.Delete(ctx, key); err != nil {
			s.logger.WarnContext(ctx, "failed to delete persisted session key",
				"key", key,
				"error", err,
			)
			errs = append(errs, err)
		}
	}
	s.current = nil
	s.token = ""
	seq := s.commitLocked()
	s.mu.Unlock()

	s.notify(ctx, seq, nil)
	if err := errors.Join(errs...); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove persisted session")
	}
	if prev != nil {
		s.metrics.IncSessionEvent("logout", "success")
		s.emit(ctx, audit.Event{Action: audit.ActionLogout, Outcome: audit.OutcomeSuccess, SessionID: prev.ID})
	}
	return nil
}

// UpdateProfile merges upd into the active record. Without an active
// session it does nothing and returns (nil, nil).
func (s *Store) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*Record, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil, nil
	}
	merged := upd.applyTo(*s.current.clone())
	if err := kv.SaveJSON(ctx, s.kv, kv.KeyUser, merged); err != nil {
		s.mu.Unlock()
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist profile")
	}
	s.current = merged.clone()
	s.mu.Unlock()

	s.emit(ctx, audit.Event{Action: audit.ActionProfileUpdated, Outcome: audit.OutcomeSuccess, SessionID: merged.ID})
	return merged.clone(), nil
}

// notify delivers the change committed as seq. Deliveries are serialised and
// a change superseded by a later commit is skipped.
func (s *Store) notify(ctx context.Context, seq uint64, rec *Record) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.RLock()
	stale := s.committed != seq
	observers := append([]Observer{}, s.observers...)
	s.mu.RUnlock()
	if stale {
		return
	}
	for _, fn := range observers {
		var arg *Record
		if rec != nil {
			arg = rec.clone()
		}
		fn(ctx, arg)
	}
}

func (s *Store) authSucceeded(ctx context.Context, action audit.Action, event string, rec *Record) {
	s.metrics.IncSessionEvent(event, "success")
	s.logger.InfoContext(ctx, "session started",
		"event", event,
		"session_id", rec.ID,
	)
	s.emit(ctx, audit.Event{Action: action, Outcome: audit.OutcomeSuccess, SessionID: rec.ID, Email: rec.Email})
}

func (s *Store) authFailed(ctx context.Context, span trace.Span, action audit.Action, event, email string, err error) error {
	outcome := "failure"
	if dErrors.HasCode(err, dErrors.CodeConflict) {
		outcome = "superseded"
	}
	s.metrics.IncSessionEvent(event, outcome)
	span.RecordError(err)
	span.SetStatus(codes.Error, outcome)
	s.logger.WarnContext(ctx, "session not started",
		"event", event,
		"outcome", outcome,
		"error", err,
	)
	reason := dErrors.MessageOf(err)
	if reason == "" {
		reason = err.Error()
	}
	s.emit(ctx, audit.Event{Action: action, Outcome: audit.OutcomeFailure, Email: email, Reason: reason})
	return err
}

func (s *Store) emit(ctx context.Context, event audit.Event) {
	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit event",
			"action", event.Action,
			"error", err,
		)
	}
}
