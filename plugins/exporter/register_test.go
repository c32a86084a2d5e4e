package exporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Readm/csma_slotsim/hooks"
)

func TestRegisterWritesOneJSONLinePerLogEntry(t *testing.T) {
	var buf bytes.Buffer
	reg := hooks.NewRegistry(nil)
	if err := Register(reg, Options{Writer: &buf}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Load([]string{"exporter/jsonlines"}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	broker := reg.Broker()
	broker.EmitLog(hooks.LogContext{Tick: 1, NodeID: 0, Kind: "Success", Message: "ok"})
	broker.EmitLog(hooks.LogContext{Tick: 2, NodeID: 1, Kind: "Drop", Message: "dropped"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	var first hooks.LogContext
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("unmarshal first line: %v", err)
	}
	if first.Tick != 1 || first.Kind != "Success" {
		t.Errorf("first line: got %+v", first)
	}
}

func TestRegisterRequiresWriter(t *testing.T) {
	reg := hooks.NewRegistry(nil)
	if err := Register(reg, Options{}); err == nil {
		t.Errorf("Register with nil Writer: expected an error")
	}
}
