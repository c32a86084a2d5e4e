package main

import (
	"context"
	"net/http"
	"sync"

	"github.com/Readm/csma_slotsim/core"
	"github.com/Readm/csma_slotsim/hooks"
)

// WebServer exposes the browser-facing surface: POST /api/simulate computes
// a full core.Result, GET /api/result and /api/configs serve it and the
// scenario catalog, and /ws streams the result back one tick at a time
// under pause/resume/reset/step control.
type WebServer struct {
	mu     sync.RWMutex
	result *core.Result
	broker *hooks.PluginBroker

	commands CommandQueue
	player   *Player
	hub      *wsHub
	server   *http.Server
	cancel   context.CancelFunc
}

// NewWebServer wires the HTTP mux, websocket hub, and replay player around a
// shared plugin broker.
func NewWebServer(addr string, broker *hooks.PluginBroker) *WebServer {
	ws := &WebServer{
		broker:   broker,
		commands: newChannelCommandQueue(16),
		hub:      newHub(),
	}
	ws.player = NewPlayer(ws.commands, ws.hub.broadcastFrame)

	mux := http.NewServeMux()
	ws.registerHandlers(mux)
	ws.server = &http.Server{Addr: addr, Handler: mux}
	return ws
}

func (ws *WebServer) registerHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/api/simulate", ws.handleSimulate)
	mux.HandleFunc("/api/result", ws.handleResult)
	mux.HandleFunc("/api/configs", ws.handleConfigs)
	mux.HandleFunc("/api/control", ws.handleControl)
	mux.HandleFunc("/ws", ws.hub.handle(ws))
	mux.Handle("/", http.FileServer(http.Dir("web/static")))
}

// Start launches the HTTP server and the replay player loop in background
// goroutines and returns immediately.
func (ws *WebServer) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	ws.cancel = cancel
	go ws.player.Run(ctx)
	go func() {
		if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			GetLogger().Errorf("web server stopped: %v", err)
		}
	}()
	return nil
}

// Stop shuts down the HTTP server and the replay loop.
func (ws *WebServer) Stop(ctx context.Context) error {
	if ws.cancel != nil {
		ws.cancel()
	}
	return ws.server.Shutdown(ctx)
}

// setResult installs a freshly computed run as the active replay target.
func (ws *WebServer) setResult(result *core.Result) {
	ws.mu.Lock()
	ws.result = result
	ws.mu.Unlock()
	ws.player.LoadResult(result)
}

func (ws *WebServer) currentResult() *core.Result {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.result
}
