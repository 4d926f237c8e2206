package httptransport

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"socialboot/internal/follow"
	dErrors "socialboot/pkg/domain-errors"
	"socialboot/pkg/platform/httputil"
	"socialboot/pkg/requestcontext"
)

// FollowerHandler lists the suggested-users directory. Following and
// unfollowing go through the task handler since they move task progress.
type FollowerHandler struct {
	directory FollowDirectory
	logger    *slog.Logger
}

func NewFollowerHandler(directory FollowDirectory, logger *slog.Logger) *FollowerHandler {
	return &FollowerHandler{directory: directory, logger: logger}
}

func (h *FollowerHandler) Register(r chi.Router) {
	r.Get("/followers", h.HandleList)
}

// HandleList accepts ?q= to search name or username and ?follows_you=true to
// keep only users who follow back.
func (h *FollowerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	filter := follow.Filter{Query: query.Get("q")}
	if raw := query.Get("follows_you"); raw != "" {
		followsYou, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.WarnContext(ctx, "invalid follows_you filter",
				"request_id", requestcontext.RequestID(ctx),
				"value", raw,
			)
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "follows_you must be true or false"))
			return
		}
		filter.FollowsYou = followsYou
	}

	httputil.WriteJSON(w, http.StatusOK, FollowersResponse{
		Users:     h.directory.List(filter),
		Following: h.directory.Count(),
	})
}
