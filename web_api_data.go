package main

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/Readm/csma_slotsim/core"
)

type simulateRequest struct {
	ConfigName string       `json:"configName,omitempty"`
	Config     *core.Config `json:"config,omitempty"`
	RandomSeed bool         `json:"randomSeed,omitempty"`
}

// handleSimulate runs a full simulation from either a named predefined
// scenario or an inline config body, then installs it as the active replay
// target for /api/result and /ws.
func (ws *WebServer) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cfg := req.Config
	if cfg == nil && req.ConfigName != "" {
		cfg = GetConfigByName(req.ConfigName)
		if cfg == nil {
			http.Error(w, "Unknown config name: "+req.ConfigName, http.StatusNotFound)
			return
		}
	}
	if cfg == nil {
		http.Error(w, "Request must set config or configName", http.StatusBadRequest)
		return
	}

	if err := ValidateConfig(cfg); err != nil {
		http.Error(w, "Invalid config: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.RandomSeed {
		cfg.Seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	result := core.Simulate(*cfg, rng, ws.broker)
	ws.setResult(&result)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(ResultPayload{Stats: result.Stats, Logs: result.Logs})
}

// handleResult serves the stats and log summary of the most recently
// computed run. The tick-by-tick timeline itself only travels over /ws.
func (ws *WebServer) handleResult(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result := ws.currentResult()
	if result == nil {
		http.Error(w, "No result available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ResultPayload{Stats: result.Stats, Logs: result.Logs}); err != nil {
		http.Error(w, "Failed to encode result", http.StatusInternalServerError)
	}
}

func (ws *WebServer) handleConfigs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	configs := GetPredefinedConfigs()
	listing := make([]struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}, len(configs))
	for i, nc := range configs {
		listing[i].Name = nc.Name
		listing[i].Description = nc.Description
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(listing); err != nil {
		http.Error(w, "Failed to encode configs", http.StatusInternalServerError)
	}
}
