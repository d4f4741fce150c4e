package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates the MCP server and registers every dispatcher tool
// on it. All tools route through Dispatcher.Call so dispatch behavior
// is identical on both the stdio and HTTP transports.
func NewServer(d *Dispatcher, name, version string) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)

	for _, tool := range d.Tools() {
		s.AddTool(tool, d.Call)
	}
	return s
}
