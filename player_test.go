package main

import (
	"testing"

	"github.com/Readm/csma_slotsim/core"
	"github.com/Readm/csma_slotsim/visual"
)

func newTestResult(duration int) *core.Result {
	timeline := make([]core.Cell, duration)
	for i := range timeline {
		timeline[i] = core.Cell{State: core.StateIdle}
	}
	return &core.Result{Duration: duration, Timeline: map[int][]core.Cell{0: timeline}}
}

func TestPlayerAdvanceOncePublishesAndMovesCursor(t *testing.T) {
	var got []ReplayFrame
	p := NewPlayer(nil, func(f ReplayFrame) { got = append(got, f) })
	p.LoadResult(newTestResult(3))

	p.advanceOnce()
	p.advanceOnce()

	if len(got) != 2 || got[0].Tick != 0 || got[1].Tick != 1 {
		t.Fatalf("got %+v", got)
	}
	if p.cursor != 2 {
		t.Errorf("cursor: got %d, want 2", p.cursor)
	}
}

func TestPlayerAdvanceOnceStopsAtResultDuration(t *testing.T) {
	var count int
	p := NewPlayer(nil, func(f ReplayFrame) { count++ })
	p.LoadResult(newTestResult(1))

	p.advanceOnce()
	p.advanceOnce()
	p.advanceOnce()

	if count != 1 {
		t.Errorf("publish count: got %d, want 1 (must not run past Duration)", count)
	}
}

func TestPlayerApplyPauseResumeResetStep(t *testing.T) {
	var count int
	p := NewPlayer(nil, func(f ReplayFrame) { count++ })
	p.LoadResult(newTestResult(5))

	p.apply(visual.ControlCommand{Type: visual.CommandPause})
	p.advance()
	if count != 0 {
		t.Errorf("advance while paused must not publish, got count=%d", count)
	}

	p.apply(visual.ControlCommand{Type: visual.CommandStep})
	if count != 1 || p.cursor != 1 {
		t.Errorf("step: got count=%d cursor=%d, want count=1 cursor=1", count, p.cursor)
	}
	if !p.paused {
		t.Errorf("step must leave the player paused")
	}

	p.apply(visual.ControlCommand{Type: visual.CommandResume})
	p.advance()
	if count != 2 {
		t.Errorf("advance after resume must publish, got count=%d", count)
	}

	p.apply(visual.ControlCommand{Type: visual.CommandReset})
	if p.cursor != 0 || p.paused {
		t.Errorf("reset: got cursor=%d paused=%v, want cursor=0 paused=false", p.cursor, p.paused)
	}
}
