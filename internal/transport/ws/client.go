package ws

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
	"github.com/ip9202/jeju-tourlist-sub007/internal/service/notification"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// Inbound frames carry no payload we care about; keep the limit tight.
	maxMessageSize = 512
)

// Client is one live WebSocket session. Pending notifications sit in a
// bounded queue between the hub's Publish and the write pump, so a stalled
// socket never blocks the adoption path.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID uuid.UUID

	queue  *notification.Inbox
	wakeup chan struct{}
	done   chan struct{}
}

func newClient(hub *Hub, conn *websocket.Conn, userID uuid.UUID) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		userID: userID,
		queue:  notification.NewInbox(hub.cfg.InboxCap),
		wakeup: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// enqueue adds a notification to the session's pending queue and signals
// the write pump. Returns the evicted entry when the queue was full.
func (c *Client) enqueue(n *domain.Notification) *domain.Notification {
	evicted := c.queue.Add(n)
	select {
	case c.wakeup <- struct{}{}:
	default:
	}
	return evicted
}

// run serves the session until the peer disconnects or the socket fails.
func (c *Client) run() {
	c.hub.register(c)
	defer func() {
		c.hub.unregister(c)
		close(c.done)
		c.conn.Close()
	}()

	go c.writePump()
	c.readPump()
}

// readPump consumes inbound frames. Clients send nothing meaningful; the
// pump exists to process pongs and detect the close.
func (c *Client) readPump() {
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump drains the pending queue into the socket and keeps the
// connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.wakeup:
			for _, n := range c.queue.Drain() {
				c.conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := c.conn.WriteJSON(c.hub.event(n)); err != nil {
					c.conn.Close()
					return
				}
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.conn.Close()
				return
			}
		case <-c.done:
			return
		}
	}
}
