package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
)

// wsHub fans a stream of replay frames out to every connected browser and
// pulls inbound control messages back onto the shared command queue.
type wsHub struct {
	upgrader  websocket.Upgrader
	clients   map[*websocket.Conn]bool
	register  chan *websocket.Conn
	remove    chan *websocket.Conn
	broadcast chan []byte
}

func newHub() *wsHub {
	hub := &wsHub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients:   make(map[*websocket.Conn]bool),
		register:  make(chan *websocket.Conn),
		remove:    make(chan *websocket.Conn),
		broadcast: make(chan []byte, 16),
	}
	go hub.run()
	return hub
}

func (h *wsHub) run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true
		case conn := <-h.remove:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
		case msg := <-h.broadcast:
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					GetLogger().Warnf("Failed to send frame to WebSocket client: %v", err)
					delete(h.clients, conn)
					conn.Close()
				}
			}
		}
	}
}

// handle returns the /ws HTTP handler bound to a server, so it can enqueue
// inbound control messages onto the same CommandQueue the REST /api/control
// endpoint uses.
func (h *wsHub) handle(ws *WebServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			GetLogger().Errorf("WebSocket upgrade failed: %v", err)
			return
		}

		h.register <- conn

		if result := ws.currentResult(); result != nil {
			if data, err := json.Marshal(ResultPayload{Stats: result.Stats, Logs: result.Logs}); err == nil {
				conn.WriteMessage(websocket.TextMessage, data)
			}
		}

		go func() {
			defer func() { h.remove <- conn }()
			for {
				_, message, err := conn.ReadMessage()
				if err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
						GetLogger().Warnf("WebSocket error: %v", err)
					}
					break
				}

				var req controlRequest
				if err := json.Unmarshal(message, &req); err == nil {
					if cmd, err := parseControlCommand(req); err == nil {
						ws.commands.Enqueue(cmd)
					}
				}
			}
		}()
	}
}

func (h *wsHub) broadcastFrame(frame ReplayFrame) {
	data, err := json.Marshal(frame)
	if err != nil {
		GetLogger().Errorf("Failed to marshal frame for WebSocket: %v", err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		GetLogger().Warnf("WebSocket broadcast channel full, dropping frame for tick %d", frame.Tick)
	}
}
