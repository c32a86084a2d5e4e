package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Readm/csma_slotsim/core"
)

// BenchmarkResult stores performance measurements for one sweep point.
type BenchmarkResult struct {
	NodeCount      int
	SimDuration    int
	TotalDuration  time.Duration
	TicksPerSec    float64
	DurationPerTick time.Duration
}

// RunBenchmark runs a single Simulate call and times it. NodeCount and
// SimDuration override whatever the base config carries. TicksPerSec and
// DurationPerTick count node-ticks (SimDuration × NodeCount).
func RunBenchmark(base core.Config, nodeCount, simDuration int) *BenchmarkResult {
	cfg := base
	cfg.NodeCount = nodeCount
	cfg.SimDuration = simDuration

	rng := rand.New(rand.NewSource(cfg.Seed))
	start := time.Now()
	core.Simulate(cfg, rng, nil)
	elapsed := time.Since(start)

	totalTicks := simDuration * nodeCount
	if totalTicks == 0 {
		totalTicks = 1
	}
	return &BenchmarkResult{
		NodeCount:       nodeCount,
		SimDuration:     simDuration,
		TotalDuration:   elapsed,
		TicksPerSec:     float64(totalTicks) / elapsed.Seconds(),
		DurationPerTick: elapsed / time.Duration(totalTicks),
	}
}

// RunBenchmarkSuite sweeps node count and run length against the
// multi_node_default scenario, reporting node-ticks/sec at each point.
func RunBenchmarkSuite() {
	fmt.Println("=== Headless Engine Performance Benchmark ===")
	fmt.Println()

	base := *GetConfigByName("multi_node_default")

	nodeCounts := []int{4, 16, 64}
	durations := []int{1000, 10000, 100000}
	iterations := 3

	for _, nodeCount := range nodeCounts {
		for _, simDuration := range durations {
			fmt.Printf("nodes=%d duration=%d (%d iterations)...\n", nodeCount, simDuration, iterations)

			var totalTicksPerSec float64
			var totalElapsed time.Duration
			for i := 0; i < iterations; i++ {
				result := RunBenchmark(base, nodeCount, simDuration)
				totalTicksPerSec += result.TicksPerSec
				totalElapsed += result.TotalDuration
			}

			avgTicksPerSec := totalTicksPerSec / float64(iterations)
			avgElapsed := totalElapsed / time.Duration(iterations)
			fmt.Printf("  Average: %.2f node-ticks/sec\n", avgTicksPerSec)
			fmt.Printf("  Average time: %v\n", avgElapsed)
			fmt.Println()
		}
	}
}
