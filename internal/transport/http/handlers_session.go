package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	dErrors "socialboot/pkg/domain-errors"
	"socialboot/pkg/platform/httputil"
	"socialboot/pkg/requestcontext"
)

// SessionHandler serves login, signup, logout and the profile and settings
// endpoints of the signed-in user.
type SessionHandler struct {
	session  SessionService
	settings SettingsService
	logger   *slog.Logger
}

func NewSessionHandler(session SessionService, settings SettingsService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{session: session, settings: settings, logger: logger}
}

// RegisterPublic mounts the endpoints reachable without a session.
func (h *SessionHandler) RegisterPublic(r chi.Router) {
	r.Get("/session", h.HandleGet)
	r.Post("/session/login", h.HandleLogin)
	r.Post("/session/signup", h.HandleSignup)
	r.Post("/session/logout", h.HandleLogout)
}

// Register mounts the endpoints that act on the signed-in user.
func (h *SessionHandler) Register(r chi.Router) {
	r.Patch("/session/profile", h.HandleUpdateProfile)
	r.Post("/session/password", h.HandleChangePassword)
}

func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	rec := h.session.Current()
	httputil.WriteJSON(w, http.StatusOK, SessionResponse{Authenticated: rec != nil, User: rec})
}

func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[LoginRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	rec, err := h.session.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "login succeeded",
		"request_id", requestID,
		"session_id", rec.ID,
	)
	httputil.WriteJSON(w, http.StatusOK, SessionResponse{Authenticated: true, User: rec, Token: h.session.Token()})
}

func (h *SessionHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SignupRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	rec, err := h.session.Signup(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "signup failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "signup succeeded",
		"request_id", requestID,
		"session_id", rec.ID,
	)
	httputil.WriteJSON(w, http.StatusCreated, SessionResponse{Authenticated: true, User: rec, Token: h.session.Token()})
}

func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.session.Logout(ctx); err != nil {
		h.logger.ErrorContext(ctx, "logout failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ProfileRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	rec, err := h.session.UpdateProfile(ctx, req.toUpdate())
	if err != nil {
		h.logger.ErrorContext(ctx, "profile update failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if rec == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "no active session"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SessionResponse{Authenticated: true, User: rec})
}

func (h *SessionHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[PasswordRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.settings.ChangePassword(ctx, req.NewPassword, req.ConfirmPassword); err != nil {
		h.logger.WarnContext(ctx, "password change rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
