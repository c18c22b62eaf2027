package events

import (
	"sync"
	"time"

	"xavro/internal/domain"

	"github.com/gorilla/websocket"
)

// Event is pushed to every connected staff dashboard when a booking is
// created or cancelled.
type Event struct {
	Type      string          `json:"type"`
	Booking   *domain.Booking `json:"booking,omitempty"`
	BookingID int64           `json:"booking_id,omitempty"`
	At        time.Time       `json:"at"`
}

const (
	EventBookingCreated   = "booking_created"
	EventBookingCancelled = "booking_cancelled"
)

// client pairs one connection with a write lock. gorilla/websocket allows at
// most one concurrent writer per connection, and broadcasts and ping frames
// come from different goroutines.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.WriteJSON(v)
}

func (c *client) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

// Hub fans booking events out to connected websocket clients. A failed write
// drops the connection.
type Hub struct {
	clients map[*websocket.Conn]*client
	mutex   sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]*client),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[conn] = &client{conn: conn}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.clients[conn]; exists {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}

// Ping sends a ping frame to one registered connection, serialized against
// concurrent broadcasts. Returns ErrCloseSent once the connection has been
// unregistered so ping loops know to stop.
func (h *Hub) Ping(conn *websocket.Conn) error {
	h.mutex.RLock()
	cl, exists := h.clients[conn]
	h.mutex.RUnlock()

	if !exists {
		return websocket.ErrCloseSent
	}
	return cl.ping()
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.clients)
}

func (h *Hub) BookingCreated(b *domain.Booking) {
	h.broadcast(Event{Type: EventBookingCreated, Booking: b, BookingID: b.ID, At: time.Now().UTC()})
}

func (h *Hub) BookingCancelled(bookingID int64) {
	h.broadcast(Event{Type: EventBookingCancelled, BookingID: bookingID, At: time.Now().UTC()})
}

func (h *Hub) broadcast(event Event) {
	h.mutex.RLock()
	clients := make([]*client, 0, len(h.clients))
	for _, cl := range h.clients {
		clients = append(clients, cl)
	}
	h.mutex.RUnlock()

	for _, cl := range clients {
		if err := cl.writeJSON(event); err != nil {
			h.Unregister(cl.conn)
		}
	}
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.clients {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}
