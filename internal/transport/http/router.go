// Package httptransport exposes the application stores over a JSON HTTP API.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"socialboot/internal/app"
	"socialboot/pkg/platform/httputil"
	"socialboot/pkg/platform/middleware/auth"
	"socialboot/pkg/platform/middleware/metadata"
	"socialboot/pkg/platform/middleware/requesttime"
)

// DefaultRequestTimeout bounds every request. Login waits on the
// authenticator, so it has to stay well above the simulated latency.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig carries the optional parts of the router.
type RouterConfig struct {
	Logger         *slog.Logger
	MetricsHandler http.Handler
	RequestTimeout time.Duration
	NewID          func() string
}

// NewRouter wires every endpoint of the application onto a chi router.
func NewRouter(a *app.App, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	sessionHandler := NewSessionHandler(a.Session, a, logger)
	rewardHandler := NewRewardHandler(a.Rewards, a, logger)
	protected := []interface{ Register(chi.Router) }{
		sessionHandler,
		NewWalletHandler(a.Wallet, logger),
		NewTaskHandler(a.Tasks, a, logger),
		NewFollowerHandler(a.Following, logger),
		NewNotificationHandler(a.Notifications, cfg.NewID, logger),
		rewardHandler,
		NewSocialHandler(a.Social, logger),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		sessionHandler.RegisterPublic(r)
		rewardHandler.RegisterPublic(r)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireSession(a.Session, logger))
			for _, h := range protected {
				h.Register(r)
			}
		})
	})
	return r
}
