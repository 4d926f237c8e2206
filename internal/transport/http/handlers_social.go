package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialboot/pkg/platform/httputil"
	"socialboot/pkg/requestcontext"
)

// SocialHandler manages the linked social media accounts of the signed-in user.
type SocialHandler struct {
	profiles SocialService
	logger   *slog.Logger
}

func NewSocialHandler(profiles SocialService, logger *slog.Logger) *SocialHandler {
	return &SocialHandler{profiles: profiles, logger: logger}
}

func (h *SocialHandler) Register(r chi.Router) {
	r.Get("/social-profiles", h.HandleList)
	r.Post("/social-profiles", h.HandleAdd)
	r.Put("/social-profiles/{id}", h.HandleUpdate)
	r.Delete("/social-profiles/{id}", h.HandleDelete)
}

func (h *SocialHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, SocialProfilesResponse{
		Profiles:       h.profiles.List(),
		TotalFollowers: h.profiles.TotalFollowers(),
	})
}

func (h *SocialHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SocialProfileRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	p, err := h.profiles.Add(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "social profile add failed",
			"request_id", requestID,
			"platform", req.Platform,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, p)
}

func (h *SocialHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	id := chi.URLParam(r, "id")

	req, ok := httputil.DecodeAndPrepare[SocialProfileRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	p, err := h.profiles.Update(ctx, id, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "social profile update failed",
			"request_id", requestID,
			"profile_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *SocialHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	if err := h.profiles.Delete(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "social profile delete failed",
			"request_id", requestcontext.RequestID(ctx),
			"profile_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
