// Package visualization registers Visualizer plugins with a hooks.Registry:
// loading one by name invokes a factory that builds a visual.Visualizer and
// hands it to a caller-supplied setter, so the frame-consuming end of a run
// never has to link a specific visualizer implementation unconditionally.
package visualization

import (
	"fmt"

	"github.com/Readm/csma_slotsim/hooks"
	"github.com/Readm/csma_slotsim/visual"
)

// Factory creates a visualizer instance.
type Factory func() (visual.Visualizer, error)

// Options configure visualization plugin registration.
type Options struct {
	Factories     map[string]Factory
	SetVisualizer func(visual.Visualizer)
}

// Register installs one "visualization/<mode>" plugin per entry in
// opts.Factories.
func Register(reg *hooks.Registry, opts Options) error {
	if reg == nil {
		return fmt.Errorf("registry is nil")
	}
	if opts.SetVisualizer == nil {
		return fmt.Errorf("SetVisualizer callback is required")
	}
	for mode, factory := range opts.Factories {
		if factory == nil {
			continue
		}
		name := "visualization/" + mode
		desc := hooks.PluginDescriptor{
			Name:        name,
			Category:    hooks.PluginCategoryVisualization,
			Description: fmt.Sprintf("%s visualization plugin", mode),
		}
		factoryCopy := factory
		if err := reg.RegisterGlobal(name, desc, func(*hooks.PluginBroker) error {
			visualizer, err := factoryCopy()
			if err != nil {
				return err
			}
			opts.SetVisualizer(visualizer)
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}
