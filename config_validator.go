package main

import (
	"errors"
	"fmt"

	"github.com/Readm/csma_slotsim/core"
)

// DefaultSlotDurationUs is applied when a config leaves the display-only
// slot duration at its zero value.
const DefaultSlotDurationUs = 320

// ValidateConfig applies the structural range checks spec section 6 leaves
// to the caller and fills defaults for fields the engine treats as
// display-only. Simulate itself performs no validation: behavior on an
// invalid config is undefined by design.
func ValidateConfig(cfg *core.Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if cfg.SimDuration < 1 {
		return fmt.Errorf("SimDuration must be >= 1, got %d", cfg.SimDuration)
	}
	if cfg.NodeCount < 1 {
		return fmt.Errorf("NodeCount must be >= 1, got %d", cfg.NodeCount)
	}
	if cfg.DataSlots < 1 {
		return fmt.Errorf("DataSlots must be >= 1, got %d", cfg.DataSlots)
	}
	if cfg.MinBE < 0 || cfg.MaxBE < cfg.MinBE {
		return fmt.Errorf("require 0 <= MinBE <= MaxBE, got MinBE=%d MaxBE=%d", cfg.MinBE, cfg.MaxBE)
	}
	if cfg.MaxNB < 0 {
		return fmt.Errorf("MaxNB must be >= 0, got %d", cfg.MaxNB)
	}
	if cfg.PE < 0 {
		return fmt.Errorf("PE must be >= 0, got %d", cfg.PE)
	}
	if cfg.CollisionPenalty < 0 {
		return fmt.Errorf("CollisionPenalty must be >= 0, got %d", cfg.CollisionPenalty)
	}

	switch cfg.PacketGenMode {
	case core.ModeRandom:
		if cfg.PacketProb < 0 || cfg.PacketProb > 1 {
			return fmt.Errorf("PacketProb must be within [0,1], got %.3f", cfg.PacketProb)
		}
	case core.ModeInterval:
		if cfg.PacketInterval < 1 {
			return fmt.Errorf("PacketInterval must be >= 1, got %d", cfg.PacketInterval)
		}
	default:
		return fmt.Errorf("unknown PacketGenMode %q", cfg.PacketGenMode)
	}

	if cfg.SlotDurationUs <= 0 {
		cfg.SlotDurationUs = DefaultSlotDurationUs
	}
	return nil
}
