// Package app is the composition root: it builds every store once, wires
// session changes into the session-scoped stores and rehydrates state.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"socialboot/internal/follow"
	"socialboot/internal/kv"
	"socialboot/internal/notification"
	"socialboot/internal/platform/metrics"
	"socialboot/internal/reward"
	"socialboot/internal/session"
	"socialboot/internal/social"
	"socialboot/internal/task"
	"socialboot/internal/wallet"
)

// Deps are the collaborators the stores are built from. KV and Logger are
// required; everything else has a default.
type Deps struct {
	KV            kv.Store
	Logger        *slog.Logger
	Authenticator session.Authenticator
	Metrics       *metrics.Metrics
	Audit         session.AuditPublisher
	Rewards       *reward.Catalog
	Scheduler     notification.Scheduler
	Clock         func() time.Time
	NewID         func() string
}

// App exposes the stores and the flows that span several of them.
type App struct {
	Session       *session.Store
	Wallet        *wallet.Store
	Tasks         *task.Store
	Notifications *notification.Store
	Social        *social.Store
	Following     *follow.Store
	Rewards       *reward.Catalog

	logger    *slog.Logger
	audit     session.AuditPublisher
	passwords PasswordSetter
	newID     func() string
}

// PasswordSetter is implemented by authenticators that keep credentials
// locally, such as session.CredentialGuard.
type PasswordSetter interface {
	SetPassword(ctx context.Context, email, password string) error
}

// New builds and rehydrates the application state.
func New(ctx context.Context, deps Deps) (*App, error) {
	if deps.KV == nil {
		return nil, errors.New("app: key-value store is required")
	}
	if deps.Logger == nil {
		return nil, errors.New("app: logger is required")
	}
	if deps.Authenticator == nil {
		deps.Authenticator = session.NewCredentialGuard(deps.KV, session.NewMockAuthenticator(session.DefaultLatency,
			session.NewTokenIssuer(uuid.NewString(), 24*time.Hour)))
	}
	if deps.Rewards == nil {
		deps.Rewards = reward.Defaults()
	}
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}

	sessionOpts := []session.Option{
		session.WithLogger(deps.Logger),
		session.WithMetrics(deps.Metrics),
	}
	if deps.Audit != nil {
		sessionOpts = append(sessionOpts, session.WithAuditPublisher(deps.Audit))
	}

	a := &App{
		Session: session.New(deps.KV, deps.Authenticator, sessionOpts...),
		Wallet:  wallet.New(deps.KV, wallet.WithLogger(deps.Logger), wallet.WithMetrics(deps.Metrics)),
		Tasks:   task.New(deps.KV, task.WithLogger(deps.Logger), task.WithMetrics(deps.Metrics)),
		Notifications: notification.New(deps.KV,
			notification.WithLogger(deps.Logger),
			notification.WithMetrics(deps.Metrics),
			notification.WithScheduler(deps.Scheduler),
			notification.WithClock(deps.Clock),
		),
		Social:    social.New(deps.KV, social.WithLogger(deps.Logger), social.WithMetrics(deps.Metrics)),
		Following: follow.New(deps.KV, follow.WithLogger(deps.Logger), follow.WithMetrics(deps.Metrics)),
		Rewards:   deps.Rewards,
		logger:    deps.Logger,
		audit:     deps.Audit,
		newID:     deps.NewID,
	}
	if ps, ok := deps.Authenticator.(PasswordSetter); ok {
		a.passwords = ps
	}
	a.Session.OnChange(a.sessionChanged)

	if err := a.Tasks.Load(ctx); err != nil {
		return nil, err
	}
	if err := a.Notifications.Load(ctx); err != nil {
		return nil, err
	}
	if err := a.Following.Load(ctx); err != nil {
		return nil, err
	}
	if err := a.Session.Load(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// sessionChanged rehydrates the session-scoped stores.
func (a *App) sessionChanged(ctx context.Context, rec *session.Record) {
	id := ""
	if rec != nil {
		id = rec.ID
	}
	if err := a.Wallet.OnSessionChanged(ctx, id); err != nil {
		a.logger.ErrorContext(ctx, "failed to load wallet for session",
			"session_id", id,
			"error", err,
		)
	}
	if err := a.Social.OnSessionChanged(ctx, id); err != nil {
		a.logger.ErrorContext(ctx, "failed to load social profiles for session",
			"session_id", id,
			"error", err,
		)
	}
}
