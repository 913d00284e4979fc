package websocket

import (
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event types sent to clients. The notification payload is the persisted
// Notification record; "connected" is the hello after upgrade.
const (
	EventTypeConnected    = "connected"
	EventTypeNotification = "notification"
)

// Event is a message sent over the WebSocket
type Event struct {
	Type    string      `json:"type"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Client represents a connected WebSocket client
type Client struct {
	UserID primitive.ObjectID
	Conn   *websocket.Conn
	// gorilla connections do not support concurrent writers
	writeMu sync.Mutex
}

// WriteEvent serializes writes on the underlying connection
func (c *Client) WriteEvent(event Event) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteJSON(event)
}

// Hub maintains the registry of live connections, one per user. The
// registry is rebuilt from connect/disconnect events and never persisted.
type Hub struct {
	clients    map[primitive.ObjectID]*Client
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[primitive.ObjectID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			// A new connection for the same user replaces the old one
			if existing, ok := h.clients[client.UserID]; ok && existing.Conn != nil {
				existing.Conn.Close()
			}
			h.clients[client.UserID] = client
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if current, ok := h.clients[client.UserID]; ok && current == client {
				delete(h.clients, client.UserID)
			}
			if client.Conn != nil {
				client.Conn.Close()
			}
			h.mu.Unlock()
		}
	}
}

// Register queues a client for registration
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister queues a client for removal
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// IsConnected reports whether a user currently has a live connection
func (h *Hub) IsConnected(userID primitive.ObjectID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[userID]
	return ok
}

// SendToUser delivers an event to a user's connection. Delivery is
// best-effort: a disconnected recipient is an error the caller may ignore.
func (h *Hub) SendToUser(userID primitive.ObjectID, event Event) error {
	h.mu.RLock()
	client, ok := h.clients[userID]
	h.mu.RUnlock()

	if !ok {
		return fmt.Errorf("user not connected")
	}

	return client.WriteEvent(event)
}

// NotifyUser pushes a notification record to its recipient
func (h *Hub) NotifyUser(userID primitive.ObjectID, notification interface{}) error {
	return h.SendToUser(userID, Event{
		Type: EventTypeNotification,
		Data: notification,
	})
}
