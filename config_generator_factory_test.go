package main

import (
	"math/rand"
	"testing"

	"github.com/Readm/csma_slotsim/core"
)

func TestGetPredefinedConfigsAreAllIndividuallyValid(t *testing.T) {
	for _, nc := range GetPredefinedConfigs() {
		cfg := nc.Config
		if err := ValidateConfig(&cfg); err != nil {
			t.Errorf("scenario %q fails validation: %v", nc.Name, err)
		}
	}
}

func TestGetPredefinedConfigsHaveUniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, nc := range GetPredefinedConfigs() {
		if seen[nc.Name] {
			t.Errorf("duplicate scenario name %q", nc.Name)
		}
		seen[nc.Name] = true
	}
}

func TestGetConfigByNameReturnsAnIndependentCopy(t *testing.T) {
	a := GetConfigByName("single_packet")
	if a == nil {
		t.Fatalf("expected single_packet to exist")
	}
	a.NodeCount = 999

	b := GetConfigByName("single_packet")
	if b.NodeCount == 999 {
		t.Errorf("GetConfigByName must return an independent copy, mutation leaked across calls")
	}
}

func TestGetConfigByNameUnknownReturnsNil(t *testing.T) {
	if cfg := GetConfigByName("does-not-exist"); cfg != nil {
		t.Errorf("expected nil for an unknown scenario name, got %+v", cfg)
	}
}

func TestNavSuppressionScenarioDefersInsteadOfColliding(t *testing.T) {
	cfg := GetConfigByName("nav_suppression")
	if cfg == nil {
		t.Fatalf("expected nav_suppression to exist")
	}
	if len(cfg.GeneratorOverrides) == 0 {
		t.Fatalf("expected nav_suppression to stagger arrivals via GeneratorOverrides")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	result := core.Simulate(*cfg, rng, nil)

	if result.Stats.CollisionCount != 0 {
		t.Errorf("expected node 1's NAV deferral to prevent any collision, got %d", result.Stats.CollisionCount)
	}
	if result.Stats.SuccessCount != 2 {
		t.Errorf("expected both nodes' single packet to succeed, got %d", result.Stats.SuccessCount)
	}
}
