package hooks

import (
	"fmt"
	"sync"
)

// GlobalPluginFactory installs hooks that apply to the whole run.
type GlobalPluginFactory func(broker *PluginBroker) error

type registryEntry struct {
	desc    PluginDescriptor
	factory GlobalPluginFactory
}

// Registry keeps plugin factories that can be activated by name, so a
// caller (e.g. a config's plugin list) can request "exporter/jsonlines"
// without linking every plugin package unconditionally.
type Registry struct {
	mu     sync.RWMutex
	broker *PluginBroker
	global map[string]registryEntry
}

// NewRegistry creates an empty plugin registry bound to a broker. A nil
// broker gets a fresh one, mirroring NewPluginBroker's zero-value safety.
func NewRegistry(broker *PluginBroker) *Registry {
	if broker == nil {
		broker = NewPluginBroker()
	}
	return &Registry{
		broker: broker,
		global: make(map[string]registryEntry),
	}
}

// Broker returns the underlying broker associated with the registry.
func (r *Registry) Broker() *PluginBroker {
	if r == nil {
		return nil
	}
	return r.broker
}

// RegisterGlobal registers a plugin factory under name.
func (r *Registry) RegisterGlobal(name string, desc PluginDescriptor, factory GlobalPluginFactory) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}
	if name == "" {
		return fmt.Errorf("plugin name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("plugin factory cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.global[name]; exists {
		return fmt.Errorf("plugin already registered: %s", name)
	}
	r.global[name] = registryEntry{desc: desc, factory: factory}
	return nil
}

// Load activates the requested plugins in order, wiring each into the
// registry's broker and recording its descriptor.
func (r *Registry) Load(names []string) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}
	for _, name := range names {
		entry, err := r.get(name)
		if err != nil {
			return err
		}
		if err := entry.factory(r.broker); err != nil {
			return fmt.Errorf("plugin %s failed: %w", name, err)
		}
		r.broker.RegisterPluginMetadata(entry.desc)
	}
	return nil
}

// Descriptor returns metadata registered under the provided name.
func (r *Registry) Descriptor(name string) (PluginDescriptor, bool) {
	if r == nil {
		return PluginDescriptor{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.global[name]
	return entry.desc, ok
}

func (r *Registry) get(name string) (registryEntry, error) {
	r.mu.RLock()
	entry, ok := r.global[name]
	r.mu.RUnlock()
	if !ok {
		return registryEntry{}, fmt.Errorf("plugin not found: %s", name)
	}
	return entry, nil
}
