package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialboot/pkg/platform/httputil"
	"socialboot/pkg/requestcontext"
)

// TaskHandler serves the task list and the actions that move task progress.
type TaskHandler struct {
	tasks  TaskService
	flows  TaskFlows
	logger *slog.Logger
}

func NewTaskHandler(tasks TaskService, flows TaskFlows, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, flows: flows, logger: logger}
}

func (h *TaskHandler) Register(r chi.Router) {
	r.Get("/tasks", h.HandleList)
	r.Post("/tasks/progress", h.HandleProgress)
	r.Post("/tasks/{id}/complete", h.HandleComplete)
	r.Post("/tasks/{id}/acknowledge", h.HandleAcknowledge)
	r.Post("/followers/follow", h.HandleFollow)
	r.Post("/followers/unfollow", h.HandleUnfollow)
	r.Post("/uploads", h.HandleUpload)
}

func (h *TaskHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, toTaskResponses(h.tasks.List()))
}

func (h *TaskHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	id := chi.URLParam(r, "id")

	t, err := h.flows.CompleteTask(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "task completion failed",
			"request_id", requestID,
			"task_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "task completed",
		"request_id", requestID,
		"task_id", id,
	)
	httputil.WriteJSON(w, http.StatusOK, toTaskResponse(t))
}

func (h *TaskHandler) HandleAcknowledge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	if err := h.tasks.Acknowledge(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "task acknowledge failed",
			"request_id", requestcontext.RequestID(ctx),
			"task_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ProgressRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := h.tasks.UpdateProgress(ctx, req.category, req.Delta); err != nil {
		h.logger.ErrorContext(ctx, "task progress update failed",
			"request_id", requestID,
			"category", req.Category,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toTaskResponses(h.tasks.List()))
}

func (h *TaskHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	h.follow(w, r, h.flows.Follow)
}

func (h *TaskHandler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	h.follow(w, r, h.flows.Unfollow)
}

func (h *TaskHandler) follow(w http.ResponseWriter, r *http.Request, apply func(context.Context, string) error) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[FollowRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := apply(ctx, req.UserID); err != nil {
		h.logger.WarnContext(ctx, "follow update failed",
			"request_id", requestID,
			"user_id", req.UserID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toTaskResponses(h.tasks.List()))
}

func (h *TaskHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[UploadRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := h.flows.UploadReels(ctx, req.Count); err != nil {
		h.logger.WarnContext(ctx, "upload rejected",
			"request_id", requestID,
			"count", req.Count,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "reels uploaded",
		"request_id", requestID,
		"count", req.Count,
	)
	httputil.WriteJSON(w, http.StatusOK, toTaskResponses(h.tasks.List()))
}
