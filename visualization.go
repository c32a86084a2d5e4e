package main

import (
	"sort"

	"github.com/Readm/csma_slotsim/core"
)

// NodeFrame is one node's visualization cell at a specific tick, flattened
// for JSON transport to a browser timeline.
type NodeFrame struct {
	ID          int        `json:"id"`
	State       core.State `json:"state"`
	Info        *int       `json:"info,omitempty"`
	IsCollision bool       `json:"isCollision"`
}

// ReplayFrame is a single tick of an already-computed Result, paced out to
// websocket clients by the replay player. It never represents in-progress
// simulation: Simulate has already produced the full Result by the time
// any frame is sent.
type ReplayFrame struct {
	Tick   int         `json:"tick"`
	Paused bool        `json:"paused"`
	Nodes  []NodeFrame `json:"nodes"`
}

// frameAt builds the ReplayFrame for a single tick out of a completed
// Result's timeline.
func frameAt(result *core.Result, tick int, paused bool) ReplayFrame {
	frame := ReplayFrame{Tick: tick, Paused: paused}
	if result == nil {
		return frame
	}
	ids := make([]int, 0, len(result.Timeline))
	for id := range result.Timeline {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		row := result.Timeline[id]
		if tick < 0 || tick >= len(row) {
			continue
		}
		cell := row[tick]
		frame.Nodes = append(frame.Nodes, NodeFrame{ID: id, State: cell.State, Info: cell.Info, IsCollision: cell.IsCollision})
	}
	return frame
}

// ResultPayload is the /api/result response body.
type ResultPayload struct {
	Stats core.Stats     `json:"stats"`
	Logs  []core.LogEntry `json:"logs"`
}
