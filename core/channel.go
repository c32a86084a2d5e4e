package core

// channelSnapshot is the pre-update classification the NAV engine and the
// FSM driver read for a single tick. It is computed once, before any node
// mutates state this tick, so every observer sees the same picture.
type channelSnapshot struct {
	physicalBusy   bool
	collision      bool
	preambleActive bool
	fcActive       bool
	rifsWaiting    bool
	backoffPresent bool
}

func isTransmitter(label State) bool {
	switch label {
	case StateTxPreamble, StateTxFc, StateTxData, StateRxAck:
		return true
	}
	return false
}

// observeChannel classifies the pre-update labels of every node. It must
// run before the NAV engine or the FSM driver touch any node this tick.
func observeChannel(nodes []*node) channelSnapshot {
	var snap channelSnapshot
	transmitters := 0
	for _, n := range nodes {
		switch n.label {
		case StateTxPreamble:
			transmitters++
			snap.preambleActive = true
		case StateTxFc:
			transmitters++
			snap.fcActive = true
		case StateTxData, StateRxAck:
			transmitters++
		case StateWaitRifs:
			snap.rifsWaiting = true
		case StateBackoff, StateBackoffPaused:
			snap.backoffPresent = true
		}
	}
	snap.physicalBusy = transmitters > 0
	snap.collision = transmitters > 1
	return snap
}

// classifyUtilization increments exactly one channel-utilization bucket for
// the tick, in the priority order fixed by spec section 4.1.
func classifyUtilization(stats *Stats, snap channelSnapshot) {
	switch {
	case snap.collision:
		stats.ChannelCollisionTicks++
	case snap.physicalBusy || snap.rifsWaiting:
		stats.ChannelTxTicks++
	case snap.backoffPresent:
		stats.ChannelBackoffTicks++
	default:
		stats.ChannelIdleTicks++
	}
}

// markCollisions flags every transmitting node as doomed the first tick it
// overlaps with another transmitter, incrementing CollisionCount and
// logging exactly once per node per collision episode (doomed latches).
func markCollisions(tick int, nodes []*node, snap channelSnapshot, stats *Stats, logs *[]LogEntry, sink hookSink) {
	if !snap.collision {
		return
	}
	for _, n := range nodes {
		if !isTransmitter(n.label) || n.doomed {
			continue
		}
		n.doomed = true
		stats.CollisionCount++
		appendLog(logs, sink, LogEntry{Tick: tick, NodeID: n.id, Kind: LogCollision, Message: "Signal overlap detected"})
		sink.onCollision(tick, n.id)
	}
}
