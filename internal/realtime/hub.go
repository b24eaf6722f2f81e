package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub tracks websocket sessions and the rooms (addresses) they joined.
// Room membership is driven by the sessions themselves; publishers only
// address rooms.
type Hub struct {
	mu      sync.RWMutex
	rooms   map[string]map[*Client]struct{}
	clients map[*Client]struct{}
	closed  bool

	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewHub creates a hub. Upgrades are accepted from allowedOrigin, from
// requests without an Origin header, or from anywhere when allowedOrigin is
// empty or "*".
func NewHub(logger *zap.Logger, allowedOrigin string) *Hub {
	h := &Hub{
		rooms:   make(map[string]map[*Client]struct{}),
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return allowedOrigin == "" || allowedOrigin == "*" || origin == "" || origin == allowedOrigin
		},
	}
	return h
}

// ServeWS upgrades the request and runs the session until it disconnects
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := newClient(h, conn)
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return nil
	}
	h.clients[client] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()
	h.logger.Debug("websocket connected", zap.String("remote", r.RemoteAddr), zap.Int("sessions", total))

	go client.writePump()
	go client.readPump()
	return nil
}

// Join subscribes the session to the user's address
func (h *Hub) Join(c *Client, userID string) {
	address := UserAddress(userID)

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	room, ok := h.rooms[address]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[address] = room
	}
	room[c] = struct{}{}
	c.rooms[address] = struct{}{}
	h.logger.Info("user joined notification room", zap.String("user_id", userID))
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	for address := range c.rooms {
		if room, ok := h.rooms[address]; ok {
			delete(room, c)
			if len(room) == 0 {
				delete(h.rooms, address)
			}
		}
	}
	c.rooms = make(map[string]struct{})
	delete(h.clients, c)
	c.close()
	h.logger.Debug("websocket disconnected", zap.Int("sessions", len(h.clients)))
}

// Publish sends the event to every session currently in the room. A session
// whose send buffer is full misses the push.
func (h *Hub) Publish(_ context.Context, address, event string, payload interface{}) {
	data, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		h.logger.Error("encode push", zap.String("address", address), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[address] {
		select {
		case c.send <- data:
		default:
			h.logger.Warn("dropping push for slow session", zap.String("address", address))
		}
	}
}

// RoomSize reports how many sessions are subscribed to address
func (h *Hub) RoomSize(address string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[address])
}

// Close disconnects every session; later upgrades are closed immediately
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		h.removeLocked(c)
	}
}
