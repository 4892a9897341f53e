// Package ws delivers notifications to connected clients over WebSocket.
// The hub fans a notification out to every live session of the target
// user; users without a session simply read their inbox later.
package ws

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/config"
	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

// Event is the wire payload pushed to clients.
type Event struct {
	Type          string    `json:"type"`
	ID            uuid.UUID `json:"id"`
	Message       string    `json:"message"`
	Points        int       `json:"points,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	AutoDismissMs int64     `json:"autoDismissMs"`
}

const eventTypeNotification = "notification"

// Hub tracks live sessions per user and fans notifications out to them.
// A user may hold several sessions at once (multiple tabs or devices);
// every session receives every event.
type Hub struct {
	log          *slog.Logger
	cfg          config.CommunityConfig
	toastDismiss time.Duration

	mu      sync.RWMutex
	clients map[uuid.UUID]map[*Client]struct{}
}

// NewHub creates a hub.
func NewHub(logger *slog.Logger, cfg config.CommunityConfig) *Hub {
	return &Hub{
		log:          logger.With("component", "ws_hub"),
		cfg:          cfg,
		toastDismiss: cfg.ToastAutoDismiss,
		clients:      make(map[uuid.UUID]map[*Client]struct{}),
	}
}

// Publish queues a notification for every live session of the user and
// returns immediately. A session that cannot keep up loses its oldest
// queued entries instead of stalling the caller.
func (h *Hub) Publish(userID uuid.UUID, n *domain.Notification) {
	h.mu.RLock()
	sessions := make([]*Client, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		sessions = append(sessions, c)
	}
	h.mu.RUnlock()

	for _, c := range sessions {
		if evicted := c.enqueue(n); evicted != nil {
			h.log.Warn("slow session dropped notification",
				slog.String("user_id", userID.String()),
				slog.String("notification_id", evicted.ID.String()))
		}
	}
}

// SessionCount reports the number of live sessions for a user.
func (h *Hub) SessionCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[*Client]struct{})
	}
	h.clients[c.userID][c] = struct{}{}
	h.mu.Unlock()

	h.log.Debug("session connected", slog.String("user_id", c.userID.String()))
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if sessions, ok := h.clients[c.userID]; ok {
		delete(sessions, c)
		if len(sessions) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.mu.Unlock()

	h.log.Debug("session disconnected", slog.String("user_id", c.userID.String()))
}

// event converts a notification into its wire form.
func (h *Hub) event(n *domain.Notification) Event {
	return Event{
		Type:          eventTypeNotification,
		ID:            n.ID,
		Message:       n.Message,
		Points:        n.Points,
		CreatedAt:     n.CreatedAt,
		AutoDismissMs: h.toastDismiss.Milliseconds(),
	}
}
