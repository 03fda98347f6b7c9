package events

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Event describes one entity mutation. The dashboard uses it to refresh
// the affected list without polling.
type Event struct {
	TenantID string `json:"tenant_id"`
	Entity   string `json:"entity"`
	Action   string `json:"action"`
	ID       int64  `json:"id"`
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Hub fans entity-change events out to connected dashboard clients.
// Clients only ever see events of their own tenant.
type Hub struct {
	mutex       sync.RWMutex
	connections map[int64]*client
}

type client struct {
	mu       sync.Mutex
	conn     *websocket.Conn
	tenantID string
}

// send serializes writes to the connection. Two request goroutines may
// publish to the same tenant at once, and the websocket library forbids
// concurrent writers on one connection.
func (c *client) send(ev Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(ev)
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*client),
	}
}

func (h *Hub) Register(userID int64, tenantID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.connections[userID]; exists && old != nil {
		_ = old.conn.Close()
	}

	h.connections[userID] = &client{conn: conn, tenantID: tenantID}
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if c, exists := h.connections[userID]; exists && c != nil {
		_ = c.conn.Close()
		delete(h.connections, userID)
	}
}

// Publish delivers the event to every client of the event's tenant.
// Write failures drop the client; a stale dashboard reconnects on its own.
func (h *Hub) Publish(ev Event) {
	h.mutex.RLock()
	stale := []int64{}
	for userID, c := range h.connections {
		if c == nil || c.tenantID != ev.TenantID {
			continue
		}
		if err := c.send(ev); err != nil {
			stale = append(stale, userID)
		}
	}
	h.mutex.RUnlock()

	for _, userID := range stale {
		h.Unregister(userID)
	}
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, c := range h.connections {
		if c != nil {
			_ = c.conn.Close()
		}
		delete(h.connections, userID)
	}
}
