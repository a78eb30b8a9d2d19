package cardanomcp

import (
	"context"
	"sort"
	"sync"
)

// ToolHandler executes a tool with the given arguments and returns its
// text result.
type ToolHandler func(ctx context.Context, args map[string]any) (string, error)

// Tool describes one capability exposed to the protocol layer. Handlers
// for chain-specific checks are declarative stubs at this boundary; the
// transport that serves them lives outside this module.
type Tool struct {
	Name        string
	Description string
	Handler     ToolHandler
}

// ToolRegistry holds the tools available to protocol consumers. An
// instance is constructed explicitly and passed by reference; there is no
// process-wide registry.
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewToolRegistry creates an empty ToolRegistry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{tools: make(map[string]Tool)}
}

// Register adds a tool. Returns ECONFLICT if a tool with the same name is
// already registered.
func (r *ToolRegistry) Register(tool Tool) error {
	if tool.Name == "" {
		return Errorf(EINVALID, "tool name required")
	}
	if tool.Handler == nil {
		return Errorf(EINVALID, "tool %q handler required", tool.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[tool.Name]; exists {
		return Errorf(ECONFLICT, "tool %q already registered", tool.Name)
	}
	r.tools[tool.Name] = tool
	return nil
}

// Get returns the tool with the given name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools sorted by name.
func (r *ToolRegistry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	return tools
}
