package core

import (
	"math/rand"
	"testing"
)

func TestIntervalGeneratorFiresAtEveryMultipleIncludingZero(t *testing.T) {
	g := IntervalGenerator{Interval: 4}
	for tick := 0; tick < 12; tick++ {
		want := tick%4 == 0
		if got := g.Arrives(tick, nil); got != want {
			t.Errorf("tick %d: got %v, want %v", tick, got, want)
		}
	}
}

func TestIntervalGeneratorNonPositiveIntervalNeverFires(t *testing.T) {
	g := IntervalGenerator{Interval: 0}
	for tick := 0; tick < 5; tick++ {
		if g.Arrives(tick, nil) {
			t.Errorf("tick %d: zero-interval generator fired", tick)
		}
	}
}

func TestRandomGeneratorRespectsProbabilityBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	never := RandomGenerator{Prob: 0}
	always := RandomGenerator{Prob: 1}

	for i := 0; i < 100; i++ {
		if never.Arrives(0, rng) {
			t.Fatalf("zero-probability generator fired")
		}
		if !always.Arrives(0, rng) {
			t.Fatalf("probability-one generator failed to fire")
		}
	}
}

func TestGeneratorForPrefersOverrideThenFallsBackToGlobalMode(t *testing.T) {
	override := IntervalGenerator{Interval: 7}
	cfg := &Config{
		PacketGenMode:      ModeInterval,
		PacketInterval:     3,
		GeneratorOverrides: map[int]PacketGenerator{1: override},
	}

	if got := GeneratorFor(cfg, 1); got != PacketGenerator(override) {
		t.Errorf("node 1: got %+v, want override %+v", got, override)
	}
	if got := GeneratorFor(cfg, 2); got != PacketGenerator(IntervalGenerator{Interval: 3}) {
		t.Errorf("node 2: got %+v, want global interval generator", got)
	}

	randomCfg := &Config{PacketGenMode: ModeRandom, PacketProb: 0.5}
	if got, ok := GeneratorFor(randomCfg, 0).(RandomGenerator); !ok || got.Prob != 0.5 {
		t.Errorf("random mode: got %+v", got)
	}
}
