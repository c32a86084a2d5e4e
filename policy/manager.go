// Package policy resolves, per node, which packet generator drives packet
// arrivals for a run — the global mode from core.Config by default, or a
// per-node override supplied by a caller building a scenario.
package policy

import "github.com/Readm/csma_slotsim/core"

// GeneratorPolicy resolves the arrival generator for a specific node.
type GeneratorPolicy interface {
	GeneratorFor(nodeID int) core.PacketGenerator
}

// GeneratorFunc adapts a plain function to a GeneratorPolicy.
type GeneratorFunc func(nodeID int) core.PacketGenerator

func (f GeneratorFunc) GeneratorFor(nodeID int) core.PacketGenerator {
	return f(nodeID)
}

type manager struct {
	base     GeneratorPolicy
	override GeneratorPolicy
}

// NewDefaultPolicy returns a policy that hands every node the same
// generator derived from cfg's global PacketGenMode/PacketProb/
// PacketInterval fields.
func NewDefaultPolicy(cfg *core.Config) GeneratorPolicy {
	return &manager{base: GeneratorFunc(func(nodeID int) core.PacketGenerator {
		return globalGenerator(cfg)
	})}
}

// WithOverride returns a copy of m that consults override first, falling
// back to m's own resolution when override has nothing for that node.
func WithOverride(m GeneratorPolicy, override GeneratorPolicy) GeneratorPolicy {
	base := asManager(m)
	base.override = override
	return base
}

// Resolve materializes a policy into a per-node generator map suitable for
// core.Config.GeneratorOverrides.
func Resolve(m GeneratorPolicy, nodeCount int) map[int]core.PacketGenerator {
	if m == nil {
		return nil
	}
	out := make(map[int]core.PacketGenerator, nodeCount)
	for i := 0; i < nodeCount; i++ {
		if g := m.GeneratorFor(i); g != nil {
			out[i] = g
		}
	}
	return out
}

func (m *manager) GeneratorFor(nodeID int) core.PacketGenerator {
	if m.override != nil {
		if g := m.override.GeneratorFor(nodeID); g != nil {
			return g
		}
	}
	if m.base != nil {
		return m.base.GeneratorFor(nodeID)
	}
	return nil
}

func globalGenerator(cfg *core.Config) core.PacketGenerator {
	if cfg == nil {
		return nil
	}
	if cfg.PacketGenMode == core.ModeRandom {
		return core.RandomGenerator{Prob: cfg.PacketProb}
	}
	return core.IntervalGenerator{Interval: cfg.PacketInterval}
}

func asManager(m GeneratorPolicy) *manager {
	if concrete, ok := m.(*manager); ok && concrete.override == nil {
		return &manager{base: concrete.base, override: concrete.override}
	}
	return &manager{base: m}
}
