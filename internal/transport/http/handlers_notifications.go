package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"socialboot/pkg/platform/httputil"
	"socialboot/pkg/requestcontext"
)

type NotificationHandler struct {
	notifications NotificationService
	newID         func() string
	logger        *slog.Logger
}

// NewNotificationHandler builds the handler. newID fills in ids omitted by
// the client; nil means random UUIDs.
func NewNotificationHandler(notifications NotificationService, newID func() string, logger *slog.Logger) *NotificationHandler {
	if newID == nil {
		newID = uuid.NewString
	}
	return &NotificationHandler{notifications: notifications, newID: newID, logger: logger}
}

func (h *NotificationHandler) Register(r chi.Router) {
	r.Get("/notifications", h.HandleList)
	r.Post("/notifications", h.HandleAdd)
	r.Delete("/notifications", h.HandleClear)
	r.Delete("/notifications/{id}", h.HandleRemove)
}

func (h *NotificationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.notifications.List())
}

func (h *NotificationHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[NotificationRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	n := req.toNotification()
	if n.ID == "" {
		n.ID = h.newID()
	}
	if n.Timestamp == 0 {
		n.Timestamp = requestcontext.Now(ctx).UnixMilli()
	}

	if err := h.notifications.Add(ctx, n); err != nil {
		h.logger.ErrorContext(ctx, "failed to add notification",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, n)
}

func (h *NotificationHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	if err := h.notifications.Remove(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to remove notification",
			"request_id", requestcontext.RequestID(ctx),
			"notification_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.notifications.Clear(ctx); err != nil {
		h.logger.ErrorContext(ctx, "failed to clear notifications",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
