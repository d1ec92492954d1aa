package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the dashboard is served from a different origin in development
	CheckOrigin: func(r *http.Request) bool { return true },
}

// CaseEvent is pushed to every connected dashboard when case data changes.
type CaseEvent struct {
	Action string `json:"action"`
	CaseID string `json:"caseId"`
}

// Hub fans case change events out to connected websocket clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// ServeWS upgrades the connection and registers the client. The read loop
// only exists to detect disconnects; clients never send case data upstream.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorw("websocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
	zap.S().Debugw("websocket client connected", "remote", conn.RemoteAddr().String())

	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast sends a case event to every connected client. Clients whose
// writes fail are dropped.
func (h *Hub) Broadcast(action, caseID string) {
	if h == nil {
		return
	}
	payload, err := json.Marshal(CaseEvent{Action: action, CaseID: caseID})
	if err != nil {
		zap.S().Errorw("failed to marshal case event", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
