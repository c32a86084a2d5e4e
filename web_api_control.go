package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Readm/csma_slotsim/visual"
)

// controlRequest is the JSON body accepted by POST /api/control and by
// inbound websocket text messages: a bare command type naming which replay
// control to apply.
type controlRequest struct {
	Type string `json:"type"`
}

func parseControlCommand(req controlRequest) (visual.ControlCommand, error) {
	switch visual.ControlCommandType(req.Type) {
	case visual.CommandPause:
		return visual.ControlCommand{Type: visual.CommandPause}, nil
	case visual.CommandResume:
		return visual.ControlCommand{Type: visual.CommandResume}, nil
	case visual.CommandReset:
		return visual.ControlCommand{Type: visual.CommandReset}, nil
	case visual.CommandStep:
		return visual.ControlCommand{Type: visual.CommandStep}, nil
	default:
		return visual.ControlCommand{}, fmt.Errorf("invalid command type %q", req.Type)
	}
}

func (ws *WebServer) handleControl(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Error reading request body", http.StatusBadRequest)
		return
	}

	var req controlRequest
	if err := json.Unmarshal(bodyBytes, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cmd, err := parseControlCommand(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !ws.commands.Enqueue(cmd) {
		http.Error(w, "Command queue full", http.StatusServiceUnavailable)
		return
	}

	GetLogger().Debugf("control command queued: %s", cmd.Type)
	w.WriteHeader(http.StatusAccepted)
	w.Write([]byte("Command accepted"))
}
