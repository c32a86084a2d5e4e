package main

import (
	"context"
	"time"

	"github.com/Readm/csma_slotsim/core"
	"github.com/Readm/csma_slotsim/visual"
)

// DefaultReplayDelay paces frame playback for a browser timeline. It never
// gates the simulation itself, which has already fully run by the time any
// frame is published; this is pacing of static data, not live simulation.
const DefaultReplayDelay = 50 * time.Millisecond

// Player replays an already-computed core.Result one tick at a time,
// publishing frames on a fixed cadence and reacting to pause/resume/reset/
// step commands pulled from a CommandQueue.
type Player struct {
	commands   CommandQueue
	publish    func(ReplayFrame)
	visualizer visual.Visualizer

	result *core.Result
	cursor int
	paused bool
}

// NewPlayer creates a player bound to a command queue and a frame sink.
func NewPlayer(commands CommandQueue, publish func(ReplayFrame)) *Player {
	return &Player{commands: commands, publish: publish}
}

// SetVisualizer installs an additional frame sink, activated by the
// visualization/* plugin family. A nil visualizer disables it again.
func (p *Player) SetVisualizer(v visual.Visualizer) {
	p.visualizer = v
}

// LoadResult resets the replay cursor to the start of a newly computed run.
func (p *Player) LoadResult(result *core.Result) {
	p.result = result
	p.cursor = 0
	p.paused = false
}

// Run drives the replay loop until ctx is cancelled. Callers run this in
// its own goroutine for the lifetime of the web server.
func (p *Player) Run(ctx context.Context) {
	ticker := time.NewTicker(DefaultReplayDelay)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.drainCommands()
			p.advance()
		}
	}
}

func (p *Player) drainCommands() {
	if p.commands == nil {
		return
	}
	for {
		cmd, ok := p.commands.TryDequeue()
		if !ok {
			return
		}
		p.apply(cmd)
	}
}

func (p *Player) apply(cmd visual.ControlCommand) {
	switch cmd.Type {
	case visual.CommandPause:
		p.paused = true
	case visual.CommandResume:
		p.paused = false
	case visual.CommandStep:
		p.paused = true
		p.advanceOnce()
	case visual.CommandReset:
		p.cursor = 0
		p.paused = false
	}
}

func (p *Player) advance() {
	if p.paused {
		return
	}
	p.advanceOnce()
}

func (p *Player) advanceOnce() {
	if p.result == nil || p.cursor >= p.result.Duration {
		return
	}
	frame := frameAt(p.result, p.cursor, p.paused)
	if p.publish != nil {
		p.publish(frame)
	}
	if p.visualizer != nil {
		p.visualizer.PublishFrame(frame)
	}
	p.cursor++
}
