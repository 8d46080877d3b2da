package mcp

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	cohere "github.com/PAIR-Systems-Inc/cohere4go"
)

// ServerName is the implementation name reported to MCP hosts.
const ServerName = "cohere4go"

// ToolHandler is the function signature for MCP tool handlers.
type ToolHandler func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error)

// ToolHandlerFactory creates a tool handler bound to a Cohere client.
// This allows tools to call the API while being registered at init time.
type ToolHandlerFactory func(client *cohere.CohereClient) ToolHandler

// ToolRegistration holds a tool definition and its handler factory.
type ToolRegistration struct {
	Tool           mcplib.Tool
	HandlerFactory ToolHandlerFactory
}

// ToolRegistry holds all available builtin tools.
// Builtin tools register themselves using init() functions.
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]ToolRegistration
}

// NewToolRegistry creates a new empty tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]ToolRegistration),
	}
}

// Register adds a builtin tool to the registry.
// If a tool with the same name already exists, it will be replaced.
func (r *ToolRegistry) Register(tool mcplib.Tool, handlerFactory ToolHandlerFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name] = ToolRegistration{
		Tool:           tool,
		HandlerFactory: handlerFactory,
	}
}

// Get returns a tool registration by name.
func (r *ToolRegistry) Get(name string) (ToolRegistration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.tools[name]
	return reg, ok
}

// All returns all registered tool registrations sorted by name.
func (r *ToolRegistry) All() []ToolRegistration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	regs := make([]ToolRegistration, 0, len(r.tools))
	for _, reg := range r.tools {
		regs = append(regs, reg)
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].Tool.Name < regs[j].Tool.Name })
	return regs
}

// Names returns the sorted names of all registered tools.
func (r *ToolRegistry) Names() []string {
	regs := r.All()
	names := make([]string, len(regs))
	for i, reg := range regs {
		names[i] = reg.Tool.Name
	}
	return names
}

// Count returns the number of registered tools.
func (r *ToolRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// DefaultToolRegistry is the global tool registry instance.
// Builtin tools should register themselves here using init() functions.
var DefaultToolRegistry = NewToolRegistry()

// NewServer returns an MCP server hosting every tool in registry, each bound to client.
func NewServer(version string, registry *ToolRegistry, client *cohere.CohereClient) *server.MCPServer {
	srv := server.NewMCPServer(ServerName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	for _, reg := range registry.All() {
		srv.AddTool(reg.Tool, server.ToolHandlerFunc(reg.HandlerFactory(client)))
	}
	return srv
}

// ServeStdio speaks MCP over in and out until ctx is cancelled or in is closed.
// Protocol errors are logged through logger; out carries only protocol frames.
func ServeStdio(ctx context.Context, srv *server.MCPServer, in io.Reader, out io.Writer, logger *slog.Logger) error {
	stdio := server.NewStdioServer(srv)
	stdio.SetErrorLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))

	logger.InfoContext(ctx, "serving MCP over stdio", "server", ServerName)
	return stdio.Listen(ctx, in, out)
}
