package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialboot/pkg/platform/httputil"
	"socialboot/pkg/requestcontext"
)

type RewardHandler struct {
	catalog RewardCatalog
	claimer RewardClaimer
	logger  *slog.Logger
}

func NewRewardHandler(catalog RewardCatalog, claimer RewardClaimer, logger *slog.Logger) *RewardHandler {
	return &RewardHandler{catalog: catalog, claimer: claimer, logger: logger}
}

// RegisterPublic mounts the catalog listing.
func (h *RewardHandler) RegisterPublic(r chi.Router) {
	r.Get("/rewards", h.HandleList)
}

func (h *RewardHandler) Register(r chi.Router) {
	r.Post("/rewards/{id}/claim", h.HandleClaim)
}

func (h *RewardHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.catalog.List())
}

func (h *RewardHandler) HandleClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	id := chi.URLParam(r, "id")

	rw, balance, err := h.claimer.ClaimReward(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "reward claim failed",
			"request_id", requestID,
			"reward_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "reward claimed",
		"request_id", requestID,
		"reward_id", id,
		"balance", balance,
	)
	httputil.WriteJSON(w, http.StatusOK, ClaimResponse{Reward: rw, Balance: balance})
}
