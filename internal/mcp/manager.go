// Package mcp exposes the Cohere client as Model Context Protocol tools.
// It wraps the github.com/mark3labs/mcp-go library both to serve the
// builtin tools and to connect to MCP servers for inspection.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/mark3labs/mcp-go/client"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolInfo contains tool metadata with server association.
type ToolInfo struct {
	Tool     mcplib.Tool
	ServerID string
	Client   *client.Client
}

// Manager manages MCP server connections and the tools they expose.
type Manager struct {
	clientName    string
	clientVersion string

	mu      sync.RWMutex
	clients map[string]*client.Client
	tools   map[string]ToolInfo // tool name -> tool info
}

// NewManager creates a new MCP manager identifying itself as name/version.
func NewManager(name, version string) *Manager {
	return &Manager{
		clientName:    name,
		clientVersion: version,
		clients:       make(map[string]*client.Client),
		tools:         make(map[string]ToolInfo),
	}
}

// AddServer connects to an MCP server via stdio and initializes it.
func (m *Manager) AddServer(ctx context.Context, id, command string, env []string, args ...string) error {
	c, err := client.NewStdioMCPClient(command, env, args...)
	if err != nil {
		return fmt.Errorf("failed to create client for %s: %w", id, err)
	}
	return m.register(ctx, id, c)
}

// AddInProcessServer connects to srv running in the current process.
func (m *Manager) AddInProcessServer(ctx context.Context, id string, srv *server.MCPServer) error {
	c, err := client.NewInProcessClient(srv)
	if err != nil {
		return fmt.Errorf("failed to create client for %s: %w", id, err)
	}
	if err := c.Start(ctx); err != nil {
		_ = c.Close()
		return fmt.Errorf("failed to start client for %s: %w", id, err)
	}
	return m.register(ctx, id, c)
}

func (m *Manager) register(ctx context.Context, id string, c *client.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.clients[id]; exists {
		_ = c.Close()
		return fmt.Errorf("server %s already exists", id)
	}

	initRequest := mcplib.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcplib.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcplib.Implementation{
		Name:    m.clientName,
		Version: m.clientVersion,
	}

	if _, err := c.Initialize(ctx, initRequest); err != nil {
		_ = c.Close()
		return fmt.Errorf("failed to initialize server %s: %w", id, err)
	}

	m.clients[id] = c

	if err := m.fetchTools(ctx, id, c); err != nil {
		return err
	}
	return nil
}

// fetchTools fetches tools from a server and registers them.
func (m *Manager) fetchTools(ctx context.Context, serverID string, c *client.Client) error {
	result, err := c.ListTools(ctx, mcplib.ListToolsRequest{})
	if err != nil {
		return fmt.Errorf("failed to list tools of %s: %w", serverID, err)
	}

	for _, tool := range result.Tools {
		m.tools[tool.Name] = ToolInfo{
			Tool:     tool,
			ServerID: serverID,
			Client:   c,
		}
	}

	return nil
}

// RemoveServer disconnects and removes an MCP server.
func (m *Manager) RemoveServer(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, exists := m.clients[id]
	if !exists {
		return fmt.Errorf("server %s not found", id)
	}

	for name, info := range m.tools {
		if info.ServerID == id {
			delete(m.tools, name)
		}
	}
	delete(m.clients, id)

	if err := c.Close(); err != nil {
		return fmt.Errorf("failed to close client for %s: %w", id, err)
	}
	return nil
}

// ListTools returns all available tools from all connected servers, sorted by name.
func (m *Manager) ListTools() []mcplib.Tool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tools := make([]mcplib.Tool, 0, len(m.tools))
	for _, info := range m.tools {
		tools = append(tools, info.Tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	return tools
}

// GetTool returns a tool by name.
func (m *Manager) GetTool(name string) (mcplib.Tool, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.tools[name]
	return info.Tool, ok
}

// ServerCount returns the number of connected servers.
func (m *Manager) ServerCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// CallTool executes a tool by name with the given arguments.
func (m *Manager) CallTool(ctx context.Context, name string, arguments map[string]any) (*mcplib.CallToolResult, error) {
	m.mu.RLock()
	info, ok := m.tools[name]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("tool not found: %s", name)
	}

	callRequest := mcplib.CallToolRequest{}
	callRequest.Params.Name = name
	callRequest.Params.Arguments = arguments

	result, err := info.Client.CallTool(ctx, callRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to call tool %s: %w", name, err)
	}

	return result, nil
}

// Close closes all client connections.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for id, c := range m.clients {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close %s: %w", id, err))
		}
	}

	m.clients = make(map[string]*client.Client)
	m.tools = make(map[string]ToolInfo)

	return errors.Join(errs...)
}

// ResultText joins the text blocks of a tool result.
func ResultText(result *mcplib.CallToolResult) string {
	if result == nil {
		return ""
	}
	var text string
	for _, c := range result.Content {
		if tc, ok := mcplib.AsTextContent(c); ok {
			if text != "" {
				text += "\n"
			}
			text += tc.Text
		}
	}
	return text
}
