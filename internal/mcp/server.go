// ABOUTME: MCP server setup for the run log.
// ABOUTME: Wraps the MCP server around the tracker service.
package mcp

import (
	"context"

	"github.com/harperreed/runlog/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with tracker access.
type Server struct {
	mcpServer *mcp.Server
	tracker   *tracker.Service
}

// NewServer creates a new MCP server over the given tracker.
func NewServer(svc *tracker.Service, version string) (*Server, error) {
	if version == "" {
		version = "dev"
	}
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "runlog",
			Version: version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		tracker:   svc,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
