package main

import (
	"github.com/Readm/csma_slotsim/core"
	"github.com/Readm/csma_slotsim/policy"
)

// NamedConfig pairs a runnable core.Config with the display metadata the
// web /api/configs listing and the CLI -config flag use to select it.
type NamedConfig struct {
	Name        string
	Description string
	Config      core.Config
}

// GetPredefinedConfigs ships the concrete scenarios used to exercise every
// documented engine behavior, plus one general-purpose multi-node default.
func GetPredefinedConfigs() []NamedConfig {
	navSuppression := core.Config{
		SimDuration:      60,
		NodeCount:        2,
		DataSlots:        8,
		CollisionPenalty: 40,
		PE:               0,
		MinBE:            0,
		MaxBE:            2,
		MaxNB:            4,
		PacketGenMode:    core.ModeInterval,
		PacketInterval:   1000,
	}
	navSuppression.GeneratorOverrides = policy.Resolve(navSuppressionPolicy(&navSuppression), navSuppression.NodeCount)

	return []NamedConfig{
		{
			Name:        "trivial_idle",
			Description: "single node, no arrivals within the run horizon",
			Config: core.Config{
				SimDuration:      10,
				NodeCount:        1,
				DataSlots:        10,
				CollisionPenalty: 40,
				PE:               2,
				MinBE:            0,
				MaxBE:            0,
				MaxNB:            4,
				PacketGenMode:    core.ModeRandom,
				PacketProb:       0,
			},
		},
		{
			Name:        "single_packet",
			Description: "one node, one packet, no contention",
			Config: core.Config{
				SimDuration:      50,
				NodeCount:        1,
				DataSlots:        10,
				CollisionPenalty: 40,
				PE:               0,
				MinBE:            0,
				MaxBE:            0,
				MaxNB:            4,
				PacketGenMode:    core.ModeInterval,
				PacketInterval:   100,
			},
		},
		{
			Name:        "guaranteed_collision",
			Description: "two nodes arrive simultaneously and collide until dropped",
			Config: core.Config{
				SimDuration:      40,
				NodeCount:        2,
				DataSlots:        3,
				CollisionPenalty: 40,
				PE:               0,
				MinBE:            0,
				MaxBE:            0,
				MaxNB:            0,
				PacketGenMode:    core.ModeInterval,
				PacketInterval:   1000,
			},
		},
		{
			Name:        "nav_suppression",
			Description: "a second node arrives one tick behind the first, defers via NAV through its whole transmission, then succeeds without colliding",
			Config:      navSuppression,
		},
		{
			Name:        "backoff_freeze_resume",
			Description: "a mid-backoff node freezes while another transmits, then resumes",
			Config: core.Config{
				SimDuration:      80,
				NodeCount:        3,
				DataSlots:        6,
				CollisionPenalty: 40,
				PE:               1,
				MinBE:            2,
				MaxBE:            4,
				MaxNB:            4,
				PacketGenMode:    core.ModeInterval,
				PacketInterval:   40,
			},
		},
		{
			Name:        "drop_after_retries",
			Description: "two nodes collide repeatedly on the same packet until MaxNB is exceeded",
			Config: core.Config{
				SimDuration:      100,
				NodeCount:        2,
				DataSlots:        4,
				CollisionPenalty: 40,
				PE:               0,
				MinBE:            0,
				MaxBE:            0,
				MaxNB:            2,
				PacketGenMode:    core.ModeInterval,
				PacketInterval:   1000,
			},
		},
		{
			Name:        "multi_node_default",
			Description: "general-purpose multi-node run with light random traffic",
			Config: core.Config{
				SimDuration:      2000,
				NodeCount:        6,
				DataSlots:        10,
				CollisionPenalty: 40,
				PE:               1,
				MinBE:            2,
				MaxBE:            5,
				MaxNB:            4,
				PacketGenMode:    core.ModeRandom,
				PacketProb:       0.02,
			},
		},
	}
}

// navSuppressionPolicy staggers node 1's arrival one tick behind node 0's,
// so node 1 is already sensing (not idle) by the time it hears node 0's
// preamble and defers via NAV for the rest of node 0's transmission,
// rather than racing it into TxPreamble.
func navSuppressionPolicy(cfg *core.Config) policy.GeneratorPolicy {
	return policy.WithOverride(policy.NewDefaultPolicy(cfg), policy.GeneratorFunc(func(nodeID int) core.PacketGenerator {
		if nodeID == 1 {
			return core.IntervalGenerator{Interval: cfg.PacketInterval, Offset: 1}
		}
		return nil
	}))
}

// GetConfigByName looks up a predefined scenario by name, returning nil
// when no scenario carries that name.
func GetConfigByName(name string) *core.Config {
	for _, nc := range GetPredefinedConfigs() {
		if nc.Name == name {
			cfg := nc.Config
			return &cfg
		}
	}
	return nil
}
