package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Readm/csma_slotsim/core"
)

func TestHandleSimulateComputesAndInstallsAResult(t *testing.T) {
	ws := NewWebServer(":0", nil)

	body, _ := json.Marshal(simulateRequest{ConfigName: "single_packet"})
	req := httptest.NewRequest(http.MethodPost, "/api/simulate", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	ws.handleSimulate(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status: got %d, want %d, body=%s", rec.Code, http.StatusAccepted, rec.Body.String())
	}
	if ws.currentResult() == nil {
		t.Fatalf("expected a result to be installed after /api/simulate")
	}
}

func TestHandleSimulateRejectsUnknownConfigName(t *testing.T) {
	ws := NewWebServer(":0", nil)
	body, _ := json.Marshal(simulateRequest{ConfigName: "does-not-exist"})
	req := httptest.NewRequest(http.MethodPost, "/api/simulate", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	ws.handleSimulate(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleResultServesLatestResult(t *testing.T) {
	ws := NewWebServer(":0", nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/result", nil)
	ws.handleResult(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("before any simulate call: got %d, want %d", rec.Code, http.StatusNotFound)
	}

	ws.setResult(&core.Result{Stats: core.Stats{SuccessCount: 1}})
	rec = httptest.NewRecorder()
	ws.handleResult(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var payload ResultPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Stats.SuccessCount != 1 {
		t.Errorf("payload: got %+v", payload)
	}
}

func TestHandleConfigsListsEveryScenario(t *testing.T) {
	ws := NewWebServer(":0", nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/configs", nil)
	ws.handleConfigs(rec, req)

	var listing []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listing); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listing) != len(GetPredefinedConfigs()) {
		t.Errorf("got %d configs, want %d", len(listing), len(GetPredefinedConfigs()))
	}
}

func TestHandleControlEnqueuesValidCommand(t *testing.T) {
	ws := NewWebServer(":0", nil)
	body, _ := json.Marshal(controlRequest{Type: "pause"})
	req := httptest.NewRequest(http.MethodPost, "/api/control", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	ws.handleControl(rec, req)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusAccepted)
	}

	cmd, ok := ws.commands.TryDequeue()
	if !ok || cmd.Type != "pause" {
		t.Errorf("got %+v, ok=%v", cmd, ok)
	}
}

func TestHandleControlRejectsUnknownType(t *testing.T) {
	ws := NewWebServer(":0", nil)
	body, _ := json.Marshal(controlRequest{Type: "not-a-command"})
	req := httptest.NewRequest(http.MethodPost, "/api/control", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	ws.handleControl(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
