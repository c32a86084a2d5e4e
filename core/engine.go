package core

import (
	"fmt"
	"math/rand"

	"github.com/Readm/csma_slotsim/hooks"
	"github.com/Readm/csma_slotsim/queue"
)

// hookSink adapts an optional *hooks.PluginBroker into nil-safe calls, so
// the channel/NAV/driver code never has to check for a nil broker itself.
type hookSink struct {
	broker *hooks.PluginBroker
}

func (s hookSink) onPacketGenerated(tick, nodeID, depth int) {
	if s.broker == nil {
		return
	}
	s.broker.EmitPacketGenerated(hooks.PacketGeneratedContext{Tick: tick, NodeID: nodeID, QueueDepth: depth})
}

func (s hookSink) onCollision(tick, nodeID int) {
	if s.broker == nil {
		return
	}
	s.broker.EmitCollision(hooks.CollisionContext{Tick: tick, NodeID: nodeID})
}

func (s hookSink) onSuccess(tick, nodeID, latency, nb int) {
	if s.broker == nil {
		return
	}
	s.broker.EmitSuccess(hooks.SuccessContext{Tick: tick, NodeID: nodeID, Latency: latency, NB: nb})
}

func (s hookSink) onDrop(tick, nodeID int) {
	if s.broker == nil {
		return
	}
	s.broker.EmitDrop(hooks.DropContext{Tick: tick, NodeID: nodeID})
}

func (s hookSink) onVcs(tick, nodeID, navValue int, reason string) {
	if s.broker == nil {
		return
	}
	s.broker.EmitVcs(hooks.VcsContext{Tick: tick, NodeID: nodeID, NavValue: navValue, Reason: reason})
}

func (s hookSink) onLog(entry LogEntry) {
	if s.broker == nil {
		return
	}
	s.broker.EmitLog(hooks.LogContext{Tick: entry.Tick, NodeID: entry.NodeID, Kind: string(entry.Kind), Message: entry.Message})
}

func (s hookSink) onTick(tick int, stats *Stats) {
	if s.broker == nil {
		return
	}
	s.broker.EmitTick(hooks.TickContext{
		Tick:                  tick,
		ChannelIdleTicks:      stats.ChannelIdleTicks,
		ChannelTxTicks:        stats.ChannelTxTicks,
		ChannelCollisionTicks: stats.ChannelCollisionTicks,
		ChannelBackoffTicks:   stats.ChannelBackoffTicks,
	})
}

// appendLog appends to the log slice and mirrors the entry to the hook
// sink, keeping Result.Logs authoritative and hooks a side channel.
func appendLog(logs *[]LogEntry, sink hookSink, entry LogEntry) {
	*logs = append(*logs, entry)
	sink.onLog(entry)
}

// Simulate runs the engine once, deterministically, for the full
// cfg.SimDuration. It is a pure function of (cfg, rng): the same seed and
// config always produce byte-identical timeline, logs, and stats. broker
// may be nil; when present it receives every event alongside (never
// instead of) the returned Result.
func Simulate(cfg Config, rng *rand.Rand, broker *hooks.PluginBroker) Result {
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	sink := hookSink{broker: broker}

	nodes := make([]*node, cfg.NodeCount)
	timeline := make(map[int][]Cell, cfg.NodeCount)
	for i := range nodes {
		nodes[i] = &node{
			id:        i,
			label:     StateIdle,
			backlog:   queue.New[int](nil),
			be:        cfg.MinBE,
			generator: GeneratorFor(&cfg, i),
		}
		timeline[i] = make([]Cell, 0, cfg.SimDuration)
	}

	var stats Stats
	var logs []LogEntry

	for t := 0; t < cfg.SimDuration; t++ {
		snap := observeChannel(nodes)
		classifyUtilization(&stats, snap)
		markCollisions(t, nodes, snap, &stats, &logs, sink)

		applyNAV(t, nodes, snap, &cfg, &logs, sink)

		for _, n := range nodes {
			preLabel := n.label

			handleArrival(t, n, &cfg, rng, &stats, &logs, sink)
			info := transition(t, n, &cfg, rng, snap, &stats, &logs, sink)

			cell := Cell{State: preLabel, Info: info}
			if isTransmitter(preLabel) && snap.collision {
				cell.State = StateCollision
				cell.IsCollision = true
			}
			timeline[n.id] = append(timeline[n.id], cell)
		}

		sink.onTick(t, &stats)
	}

	return Result{Duration: cfg.SimDuration, Timeline: timeline, Logs: logs, Stats: stats}
}

// handleArrival runs independently of a node's current FSM label: a packet
// may join the backlog mid-transmission and simply waits its turn.
func handleArrival(t int, n *node, cfg *Config, rng *rand.Rand, stats *Stats, logs *[]LogEntry, sink hookSink) {
	if n.generator == nil || !n.generator.Arrives(t, rng) {
		return
	}
	n.backlog.Enqueue(t)
	stats.TotalPacketsGenerated++
	if depth := n.backlog.Len(); depth > stats.MaxQueueDepth {
		stats.MaxQueueDepth = depth
	}
	msg := fmt.Sprintf("Packet generated (Queue: %d)", n.backlog.Len())
	appendLog(logs, sink, LogEntry{Tick: t, NodeID: n.id, Kind: LogInfo, Message: msg})
	sink.onPacketGenerated(t, n.id, n.backlog.Len())
}

// resetProtocol clears the per-packet backoff/NAV bookkeeping a node
// carries between attempts. It is invoked both on the ordinary Idle->
// Sensing edge and directly on success/drop, since those two outcomes can
// reach Sensing again (directly after a success, via the one-tick Failed
// state after a drop) without passing through Idle.
func resetProtocol(n *node, cfg *Config) {
	n.nb = 0
	n.be = cfg.MinBE
	n.nav = 0
	n.backoffCounter = 0
}

// transition advances a node exactly one FSM step for tick t and returns
// the Backoff/BackoffPaused counter annotation for this tick's cell, or
// nil for every other state.
func transition(t int, n *node, cfg *Config, rng *rand.Rand, snap channelSnapshot, stats *Stats, logs *[]LogEntry, sink hookSink) *int {
	switch n.label {
	case StateIdle:
		if n.backlog.Len() > 0 {
			resetProtocol(n, cfg)
			n.label = StateSensing
		}

	case StateSensing:
		if !snap.physicalBusy && n.nav == 0 {
			draw := rng.Intn(1 << uint(n.be))
			n.backoffCounter = draw + cfg.PE
			appendLog(logs, sink, LogEntry{Tick: t, NodeID: n.id, Kind: LogInfo, Message: fmt.Sprintf("Start Backoff (%d)", n.backoffCounter)})
			if n.backoffCounter == 0 {
				n.label = StateTxPreamble
				n.txProgress = 0
				n.doomed = false
			} else {
				n.label = StateBackoff
			}
		}

	case StateBackoff, StateBackoffPaused:
		channelFree := !snap.physicalBusy && n.nav == 0
		if channelFree {
			n.label = StateBackoff
			counter := n.backoffCounter
			if n.backoffCounter > 1 {
				n.backoffCounter--
			} else {
				n.label = StateTxPreamble
				n.txProgress = 0
				n.doomed = false
				appendLog(logs, sink, LogEntry{Tick: t, NodeID: n.id, Kind: LogInfo, Message: "Backoff complete, transmitting"})
			}
			return &counter
		}
		n.label = StateBackoffPaused
		counter := n.backoffCounter
		return &counter

	case StateTxPreamble:
		n.txProgress++
		if n.txProgress >= 1 {
			n.label = StateTxFc
			n.txProgress = 0
		}

	case StateTxFc:
		n.txProgress++
		if n.txProgress >= 1 {
			n.label = StateTxData
			n.txProgress = 0
		}

	case StateTxData:
		n.txProgress++
		if n.txProgress >= cfg.DataSlots {
			n.label = StateWaitRifs
			n.txProgress = 0
		}

	case StateWaitRifs:
		n.txProgress++
		if n.txProgress >= 1 {
			n.label = StateRxAck
			n.txProgress = 0
		}

	case StateRxAck:
		n.txProgress++
		if n.txProgress >= 2 {
			completeRxAck(t, n, cfg, stats, logs, sink)
		}

	case StateFailed:
		if n.backlog.Len() > 0 {
			n.label = StateSensing
		} else {
			n.label = StateIdle
		}
	}
	return nil
}

// completeRxAck resolves a finished ACK window into success or retry/drop.
func completeRxAck(t int, n *node, cfg *Config, stats *Stats, logs *[]LogEntry, sink hookSink) {
	if !n.doomed {
		birth, _ := n.backlog.PopFront()
		latency := t - birth
		stats.TotalLatency += latency
		stats.SuccessCount++
		switch {
		case n.nb == 0:
			stats.Success1st++
		case n.nb == 1:
			stats.Success2nd++
		default:
			stats.Success3rd++
		}
		sink.onSuccess(t, n.id, latency, n.nb)
		resetProtocol(n, cfg)
		appendLog(logs, sink, LogEntry{Tick: t, NodeID: n.id, Kind: LogSuccess, Message: "ACK received, transaction complete"})
		if n.backlog.Len() > 0 {
			n.label = StateSensing
		} else {
			n.label = StateIdle
		}
		return
	}

	n.nb++
	if n.nb > cfg.MaxNB {
		n.backlog.PopFront()
		stats.FailureCount++
		resetProtocol(n, cfg)
		n.label = StateFailed
		appendLog(logs, sink, LogEntry{Tick: t, NodeID: n.id, Kind: LogDrop, Message: "Max retries reached"})
		sink.onDrop(t, n.id)
		return
	}

	n.be = min(n.be+1, cfg.MaxBE)
	n.nav = 0
	n.backoffCounter = 0
	n.label = StateSensing
	appendLog(logs, sink, LogEntry{Tick: t, NodeID: n.id, Kind: LogCollision, Message: fmt.Sprintf("No ACK. Retrying (NB=%d, BE=%d)", n.nb, n.be)})
}
