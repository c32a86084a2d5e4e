package core

import "fmt"

// applyNAV advances the virtual carrier sense counter of every node that is
// not itself transmitting this tick. Transmitters are the source of the
// signal and never update their own NAV.
func applyNAV(tick int, nodes []*node, snap channelSnapshot, cfg *Config, logs *[]LogEntry, sink hookSink) {
	for _, n := range nodes {
		if isTransmitter(n.label) {
			continue
		}
		navPrev := n.nav

		if snap.preambleActive {
			if cfg.CollisionPenalty > n.nav {
				n.nav = cfg.CollisionPenalty
			}
			if navPrev == 0 {
				msg := fmt.Sprintf("Heard Preamble, VCS set to %d", cfg.CollisionPenalty)
				appendLog(logs, sink, LogEntry{Tick: tick, NodeID: n.id, Kind: LogVcs, Message: msg})
				sink.onVcs(tick, n.id, cfg.CollisionPenalty, "preamble")
			}
		}

		if snap.fcActive && !snap.collision {
			n.nav = cfg.DataSlots + 1 + 1 + 1
			msg := fmt.Sprintf("Decoded FC, NAV set to %d", n.nav)
			appendLog(logs, sink, LogEntry{Tick: tick, NodeID: n.id, Kind: LogVcs, Message: msg})
			sink.onVcs(tick, n.id, n.nav, "fc")
		}

		if n.nav > 0 {
			n.nav--
		}
	}
}
