// Package exporter registers a JSON-lines log exporter plugin with a
// hooks.Registry: every LogEntry the engine produces is also written, as
// one JSON object per line, to an arbitrary io.Writer.
package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Readm/csma_slotsim/hooks"
)

// Options configure the exporter plugin.
type Options struct {
	Writer io.Writer
}

// Register installs the "exporter/jsonlines" plugin into reg.
func Register(reg *hooks.Registry, opts Options) error {
	if reg == nil {
		return fmt.Errorf("registry is nil")
	}
	if opts.Writer == nil {
		return fmt.Errorf("Writer is required")
	}

	desc := hooks.PluginDescriptor{
		Name:        "exporter/jsonlines",
		Category:    hooks.PluginCategoryInstrumentation,
		Description: "writes every log entry as a JSON line",
	}

	enc := json.NewEncoder(opts.Writer)
	return reg.RegisterGlobal(desc.Name, desc, func(broker *hooks.PluginBroker) error {
		broker.RegisterLog(func(ctx hooks.LogContext) {
			_ = enc.Encode(ctx)
		})
		return nil
	})
}
