package ws

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ip9202/jeju-tourlist-sub007/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Handler upgrades authenticated requests to a notification stream.
type Handler struct {
	log       *slog.Logger
	hub       *Hub
	validator tokenValidator
	upgrader  websocket.Upgrader
}

// NewHandler creates the stream handler. checkOrigin decides which Origin
// headers are acceptable; pass nil to accept any origin (the CORS policy
// is enforced at the REST layer, browsers do not apply it to WebSockets).
func NewHandler(logger *slog.Logger, hub *Hub, validator tokenValidator, checkOrigin func(r *http.Request) bool) *Handler {
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	return &Handler{
		log:       logger.With("component", "ws_handler"),
		hub:       hub,
		validator: validator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}
}

// Stream handles GET /api/notifications/stream. The caller authenticates
// either through the usual Authorization header or, since browsers cannot
// set headers on a WebSocket dial, a token query parameter.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		token := r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		id, err := h.validator.ValidateToken(r.Context(), token)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		userID = id
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		h.log.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	newClient(h.hub, conn, userID).run()
}
