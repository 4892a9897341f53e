package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
	"github.com/ip9202/jeju-tourlist-sub007/internal/service/notification"
)

// notificationService defines the minimal interface needed by
// NotificationHandler.
type notificationService interface {
	List(ctx context.Context) (*notification.InboxView, error)
	CountUnread(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) (int, error)
}

// NotificationHandler serves notification inbox REST endpoints.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

type notificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Points    int       `json:"points,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type inboxResponse struct {
	Notifications []notificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := inboxResponse{
		Notifications: make([]notificationResponse, 0, len(view.Notifications)),
		UnreadCount:   view.UnreadCount,
	}
	for _, n := range view.Notifications {
		resp.Notifications = append(resp.Notifications, toNotificationResponse(n))
	}

	writeJSON(w, http.StatusOK, resp)
}

// UnreadCount handles GET /api/notifications/unread-count.
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.CountUnread(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"unreadCount": count})
}

// MarkRead handles POST /api/notifications/{notificationID}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "notificationID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	if err := h.svc.MarkRead(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "read"})
}

// MarkAllRead handles POST /api/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	flipped, err := h.svc.MarkAllRead(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"marked": flipped})
}

// DeleteAll handles DELETE /api/notifications.
func (h *NotificationHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.DeleteAll(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID.String(),
		Message:   n.Message,
		Points:    n.Points,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
