// ABOUTME: MCP server setup for the bodylog entry store.
// ABOUTME: Wraps the MCP server with store, config, and profile access.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/bodylog/internal/config"
	"github.com/harperreed/bodylog/internal/store"
)

// Server wraps the MCP server with access to the entry store and the
// current configuration.
type Server struct {
	mcpServer *mcp.Server
	st        *store.Store
	cfg       *config.Config
	profile   *config.Profile
}

// NewServer creates a new MCP server over the given store and config.
func NewServer(st *store.Store, cfg *config.Config, profile *config.Profile) *Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "bodylog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		st:        st,
		cfg:       cfg,
		profile:   profile,
	}

	s.registerTools()
	s.registerResources()

	return s
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
