package main

import (
	"fmt"

	"github.com/Readm/csma_slotsim/core"
)

// PrintStats renders a Stats snapshot to stdout, including the channel-
// utilization identity and success-bucket breakdown the engine's
// invariants require to hold.
func PrintStats(stats *core.Stats) {
	if stats == nil {
		fmt.Println("No stats available")
		return
	}

	total := stats.ChannelIdleTicks + stats.ChannelTxTicks + stats.ChannelCollisionTicks + stats.ChannelBackoffTicks

	fmt.Println("=== Channel Utilization ===")
	fmt.Printf("Idle:      %d\n", stats.ChannelIdleTicks)
	fmt.Printf("Tx:        %d\n", stats.ChannelTxTicks)
	fmt.Printf("Collision: %d\n", stats.ChannelCollisionTicks)
	fmt.Printf("Backoff:   %d\n", stats.ChannelBackoffTicks)
	fmt.Printf("Total ticks accounted for: %d\n", total)

	fmt.Println()
	fmt.Println("=== Packet Outcomes ===")
	fmt.Printf("Generated:     %d\n", stats.TotalPacketsGenerated)
	fmt.Printf("Success (1st): %d\n", stats.Success1st)
	fmt.Printf("Success (2nd): %d\n", stats.Success2nd)
	fmt.Printf("Success (3rd+):%d\n", stats.Success3rd)
	fmt.Printf("Success total: %d\n", stats.SuccessCount)
	fmt.Printf("Dropped:       %d\n", stats.FailureCount)
	fmt.Printf("Max queue depth: %d\n", stats.MaxQueueDepth)
	fmt.Printf("Collisions:    %d\n", stats.CollisionCount)
	fmt.Printf("Average latency: %.2f ticks\n", stats.AverageLatency())
}
