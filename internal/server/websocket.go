package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Message types sent to live-reload clients
const (
	MessageReload = "reload"
	MessageError  = "error"
)

// LiveMessage is the JSON frame pushed to browsers
type LiveMessage struct {
	Type    string `json:"type"`
	BuildID string `json:"buildId,omitempty"`
	Error   string `json:"error,omitempty"`
	// PaletteChanged is set on reload when the derived palette differs from the previous build
	PaletteChanged bool `json:"paletteChanged,omitempty"`
}

const wsWriteTimeout = 5 * time.Second

// clientConn wraps a WebSocket connection with its own mutex for thread-safe writes.
type clientConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *clientConn) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
		return err
	}
	return c.conn.WriteJSON(v)
}

// Hub tracks live-reload connections and broadcasts to them.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*websocket.Conn]*clientConn
	upgrader websocket.Upgrader
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]*clientConn),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Preview pages may be opened from any local origin
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Add registers a connection
func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = &clientConn{conn: conn}
}

// Remove unregisters and closes a connection
func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()

	if ok {
		conn.Close() //nolint:errcheck
	}
}

// Count returns the number of connected clients
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a message to all connected clients, dropping any that fail
func (h *Hub) Broadcast(msg LiveMessage) {
	h.mu.RLock()
	clients := make([]*clientConn, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.writeJSON(msg); err != nil {
			log.Printf("[ws] dropping client: %v", err)
			h.Remove(c.conn)
		}
	}
}

// Close disconnects every client
func (h *Hub) Close() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[*websocket.Conn]*clientConn)
	h.mu.Unlock()

	for conn := range clients {
		conn.Close() //nolint:errcheck
	}
}

// ServeHTTP upgrades the request and keeps the connection registered until the client leaves
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	h.Add(conn)
	defer h.Remove(conn)

	// Clients never send anything meaningful; reading detects disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
