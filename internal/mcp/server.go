// Package mcp exposes the draft lifecycle engine as a Model Context Protocol
// server, so an automated agent can stage LinkedIn content for human review
// without ever posting anything itself.
package mcp

import (
	"context"

	"github.com/draftline/draftline/internal/engine"
	"github.com/sirupsen/logrus"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server around the lifecycle manager.
type Server struct {
	mcpServer *mcp.Server
	manager   *engine.Manager
	log       logrus.FieldLogger
}

// Config holds configuration for the MCP server.
type Config struct {
	Manager *engine.Manager
	Logger  logrus.FieldLogger
	Version string
}

// NewServer creates an MCP server with all draft tools registered.
func NewServer(cfg Config) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "linkedin-drafts",
		Version: cfg.Version,
	}, nil)

	s := &Server{
		mcpServer: mcpServer,
		manager:   cfg.Manager,
		log:       cfg.Logger,
	}

	s.registerTools()

	return s
}

// Run serves MCP over stdio until the context is cancelled. Stdout carries
// only JSON-RPC frames; all logging goes to stderr.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
