package main

import (
	"testing"

	"github.com/Readm/csma_slotsim/core"
)

func TestFrameAtOrdersNodesByIDAndCopiesCellFields(t *testing.T) {
	info := 3
	result := &core.Result{
		Duration: 2,
		Timeline: map[int][]core.Cell{
			2: {{State: core.StateIdle}, {State: core.StateSensing}},
			0: {{State: core.StateTxPreamble, IsCollision: true}, {State: core.StateBackoff, Info: &info}},
		},
	}

	frame := frameAt(result, 1, false)
	if len(frame.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(frame.Nodes))
	}
	if frame.Nodes[0].ID != 0 || frame.Nodes[1].ID != 2 {
		t.Errorf("nodes not sorted by ID: got %+v", frame.Nodes)
	}
	if frame.Nodes[0].State != core.StateBackoff || frame.Nodes[0].Info == nil || *frame.Nodes[0].Info != 3 {
		t.Errorf("node 0 tick 1: got %+v", frame.Nodes[0])
	}
}

func TestFrameAtHandlesNilResultAndOutOfRangeTick(t *testing.T) {
	frame := frameAt(nil, 0, true)
	if frame.Nodes != nil {
		t.Errorf("nil result: expected no nodes, got %+v", frame.Nodes)
	}
	if !frame.Paused {
		t.Errorf("expected Paused to be carried through even for a nil result")
	}

	result := &core.Result{Duration: 1, Timeline: map[int][]core.Cell{0: {{State: core.StateIdle}}}}
	frame = frameAt(result, 5, false)
	if len(frame.Nodes) != 0 {
		t.Errorf("out-of-range tick: expected no nodes, got %+v", frame.Nodes)
	}
}
