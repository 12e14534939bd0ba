package tools

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/quaylabs/multisearch-mcp/pkg/engine"
)

// Registry holds the available tools. Disabled tools are never registered,
// so an unknown name and a disabled one are indistinguishable to callers.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

// Register adds a tool to the registry.
func (r *Registry) Register(tool *Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name] = tool
}

// Get retrieves a tool by name, or nil.
func (r *Registry) Get(name string) *Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools[name]
}

// Has checks if a tool exists by name.
func (r *Registry) Has(name string) bool {
	return r.Get(name) != nil
}

// All returns the registered tools sorted by name.
func (r *Registry) All() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]*Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name < tools[j].Name
	})
	return tools
}

// Config gates the optional tools. Flags are read once at startup and passed
// here explicitly.
type Config struct {
	FetchEnabled        bool
	LegacySearchEnabled bool
}

// DefaultRegistry builds the standard tool set: the five category tools,
// plus fetch_content and the legacy search tool when enabled.
func DefaultRegistry(adapter *engine.Adapter, cfg Config, log zerolog.Logger) *Registry {
	reg := NewRegistry()
	for _, tool := range NewCategoryTools(adapter, log) {
		reg.Register(tool)
	}
	if cfg.FetchEnabled {
		reg.Register(NewFetchTool(log))
	}
	if cfg.LegacySearchEnabled {
		reg.Register(NewLegacySearchTool(adapter, log))
	}
	return reg
}

// Dispatcher routes invocation requests to registered tools and converts
// failures into structured, per-call error results.
type Dispatcher struct {
	registry *Registry
	log      zerolog.Logger
}

// NewDispatcher creates a dispatcher over the registry.
func NewDispatcher(registry *Registry, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, log: log}
}

// Dispatch invokes a tool by name. Unknown names and handler failures come
// back as error-flagged results; the session stays usable either way.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) *Result {
	callID := xid.New().String()
	tool := d.registry.Get(name)
	if tool == nil {
		d.log.Warn().Str("call_id", callID).Str("tool", name).Msg("unknown tool requested")
		return ErrorResultf(name, "Unknown tool: %s", name)
	}

	d.log.Debug().Str("call_id", callID).Str("tool", name).Msg("tool call received")
	result, err := tool.Execute(ctx, args)
	if err != nil {
		d.log.Warn().Err(err).Str("call_id", callID).Str("tool", name).Msg("tool call failed")
		return ErrorResult(name, err.Error())
	}
	return result
}
