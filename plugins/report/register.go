// Package report registers a periodic console reporter plugin: every N
// ticks it prints the running channel-utilization and collision counters,
// giving a long headless run some visible progress.
package report

import (
	"fmt"
	"io"

	"github.com/Readm/csma_slotsim/hooks"
)

// Options configure the reporter plugin.
type Options struct {
	Writer io.Writer
	Every  int // report cadence in ticks; defaults to 1000 if <= 0
}

// Register installs the "report/console" plugin into reg.
func Register(reg *hooks.Registry, opts Options) error {
	if reg == nil {
		return fmt.Errorf("registry is nil")
	}
	if opts.Writer == nil {
		return fmt.Errorf("Writer is required")
	}
	every := opts.Every
	if every <= 0 {
		every = 1000
	}

	desc := hooks.PluginDescriptor{
		Name:        "report/console",
		Category:    hooks.PluginCategoryReporting,
		Description: "prints channel utilization every N ticks",
	}

	return reg.RegisterGlobal(desc.Name, desc, func(broker *hooks.PluginBroker) error {
		broker.RegisterTick(func(ctx hooks.TickContext) {
			if ctx.Tick == 0 || ctx.Tick%every != 0 {
				return
			}
			fmt.Fprintf(opts.Writer, "tick %d: idle=%d tx=%d collision=%d backoff=%d\n",
				ctx.Tick, ctx.ChannelIdleTicks, ctx.ChannelTxTicks, ctx.ChannelCollisionTicks, ctx.ChannelBackoffTicks)
		})
		return nil
	})
}
