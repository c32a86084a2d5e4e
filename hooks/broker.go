// Package hooks provides a plugin broker that lets external observers tap
// engine events without the engine depending on them. Every context struct
// here is built from primitive types only, never a core.* type, so the
// core package can import hooks without creating an import cycle.
package hooks

import "sync"

// PluginCategory is the high-level role of a registered plugin.
type PluginCategory string

const (
	// PluginCategoryInstrumentation covers metrics, tracing, and exporters.
	PluginCategoryInstrumentation PluginCategory = "instrumentation"
	// PluginCategoryReporting covers human-facing summaries and console output.
	PluginCategoryReporting PluginCategory = "reporting"
	// PluginCategoryVisualization covers UI, timeline, or monitoring plugins.
	PluginCategoryVisualization PluginCategory = "visualization"
)

// PluginDescriptor describes a plugin registered with the broker.
type PluginDescriptor struct {
	Name        string
	Category    PluginCategory
	Description string
}

// PacketGeneratedContext carries data for the OnPacketGenerated stage.
type PacketGeneratedContext struct {
	Tick       int
	NodeID     int
	QueueDepth int
}

// CollisionContext carries data for the OnCollision stage.
type CollisionContext struct {
	Tick   int
	NodeID int
}

// SuccessContext carries data for the OnSuccess stage.
type SuccessContext struct {
	Tick    int
	NodeID  int
	Latency int
	NB      int
}

// DropContext carries data for the OnDrop stage.
type DropContext struct {
	Tick   int
	NodeID int
}

// VcsContext carries data for the OnVcs stage.
type VcsContext struct {
	Tick     int
	NodeID   int
	NavValue int
	Reason   string // "preamble" or "fc"
}

// LogContext mirrors every log line the engine emits, regardless of kind.
type LogContext struct {
	Tick    int
	NodeID  int
	Kind    string
	Message string
}

// TickContext fires once per tick after the FSM driver has processed every
// node, carrying the running channel-utilization counters.
type TickContext struct {
	Tick                  int
	ChannelIdleTicks      int
	ChannelTxTicks        int
	ChannelCollisionTicks int
	ChannelBackoffTicks   int
}

type PacketGeneratedHook func(ctx PacketGeneratedContext)
type CollisionHook func(ctx CollisionContext)
type SuccessHook func(ctx SuccessContext)
type DropHook func(ctx DropContext)
type VcsHook func(ctx VcsContext)
type LogHook func(ctx LogContext)
type TickHook func(ctx TickContext)

// PluginBroker coordinates hook registration and firing. Handler slices are
// copied under RLock and invoked outside the lock, so a slow or reentrant
// handler never blocks registration.
type PluginBroker struct {
	mu sync.RWMutex

	packetGenerated []PacketGeneratedHook
	collision       []CollisionHook
	success         []SuccessHook
	drop            []DropHook
	vcs             []VcsHook
	log             []LogHook
	tick            []TickHook

	pluginCatalog map[PluginCategory][]PluginDescriptor
	pluginIndex   map[string]PluginDescriptor
}

// NewPluginBroker creates an empty broker instance.
func NewPluginBroker() *PluginBroker {
	return &PluginBroker{
		pluginCatalog: make(map[PluginCategory][]PluginDescriptor),
		pluginIndex:   make(map[string]PluginDescriptor),
	}
}

func (p *PluginBroker) RegisterPacketGenerated(h PacketGeneratedHook) {
	if p == nil || h == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.packetGenerated = append(p.packetGenerated, h)
}

func (p *PluginBroker) RegisterCollision(h CollisionHook) {
	if p == nil || h == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.collision = append(p.collision, h)
}

func (p *PluginBroker) RegisterSuccess(h SuccessHook) {
	if p == nil || h == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.success = append(p.success, h)
}

func (p *PluginBroker) RegisterDrop(h DropHook) {
	if p == nil || h == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.drop = append(p.drop, h)
}

func (p *PluginBroker) RegisterVcs(h VcsHook) {
	if p == nil || h == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.vcs = append(p.vcs, h)
}

func (p *PluginBroker) RegisterLog(h LogHook) {
	if p == nil || h == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.log = append(p.log, h)
}

func (p *PluginBroker) RegisterTick(h TickHook) {
	if p == nil || h == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tick = append(p.tick, h)
}

func (p *PluginBroker) EmitPacketGenerated(ctx PacketGeneratedContext) {
	if p == nil {
		return
	}
	p.mu.RLock()
	handlers := append([]PacketGeneratedHook(nil), p.packetGenerated...)
	p.mu.RUnlock()
	for _, h := range handlers {
		h(ctx)
	}
}

func (p *PluginBroker) EmitCollision(ctx CollisionContext) {
	if p == nil {
		return
	}
	p.mu.RLock()
	handlers := append([]CollisionHook(nil), p.collision...)
	p.mu.RUnlock()
	for _, h := range handlers {
		h(ctx)
	}
}

func (p *PluginBroker) EmitSuccess(ctx SuccessContext) {
	if p == nil {
		return
	}
	p.mu.RLock()
	handlers := append([]SuccessHook(nil), p.success...)
	p.mu.RUnlock()
	for _, h := range handlers {
		h(ctx)
	}
}

func (p *PluginBroker) EmitDrop(ctx DropContext) {
	if p == nil {
		return
	}
	p.mu.RLock()
	handlers := append([]DropHook(nil), p.drop...)
	p.mu.RUnlock()
	for _, h := range handlers {
		h(ctx)
	}
}

func (p *PluginBroker) EmitVcs(ctx VcsContext) {
	if p == nil {
		return
	}
	p.mu.RLock()
	handlers := append([]VcsHook(nil), p.vcs...)
	p.mu.RUnlock()
	for _, h := range handlers {
		h(ctx)
	}
}

func (p *PluginBroker) EmitLog(ctx LogContext) {
	if p == nil {
		return
	}
	p.mu.RLock()
	handlers := append([]LogHook(nil), p.log...)
	p.mu.RUnlock()
	for _, h := range handlers {
		h(ctx)
	}
}

func (p *PluginBroker) EmitTick(ctx TickContext) {
	if p == nil {
		return
	}
	p.mu.RLock()
	handlers := append([]TickHook(nil), p.tick...)
	p.mu.RUnlock()
	for _, h := range handlers {
		h(ctx)
	}
}

// RegisterPluginMetadata records a plugin's descriptor in the catalog,
// independent of which hook stages it actually subscribes to.
func (p *PluginBroker) RegisterPluginMetadata(desc PluginDescriptor) {
	if p == nil || desc.Name == "" {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.pluginIndex[desc.Name]; exists {
		return
	}
	p.pluginIndex[desc.Name] = desc
	p.pluginCatalog[desc.Category] = append(p.pluginCatalog[desc.Category], desc)
}

// ListPlugins returns descriptors for plugins in the requested category.
func (p *PluginBroker) ListPlugins(category PluginCategory) []PluginDescriptor {
	if p == nil {
		return nil
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	catalog := p.pluginCatalog[category]
	if len(catalog) == 0 {
		return nil
	}
	out := make([]PluginDescriptor, len(catalog))
	copy(out, catalog)
	return out
}

// ListAllPlugins returns descriptors of every registered plugin.
func (p *PluginBroker) ListAllPlugins() []PluginDescriptor {
	if p == nil {
		return nil
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]PluginDescriptor, 0, len(p.pluginIndex))
	for _, desc := range p.pluginIndex {
		out = append(out, desc)
	}
	return out
}
