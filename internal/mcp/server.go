// Package mcp exposes the Summa to AI agents as Model Context Protocol tools
// served over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/summa-explorer/summa/internal/resolver"
	"github.com/summa-explorer/summa/internal/search"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes browsing and search tools.
type Server struct {
	resolver *resolver.Resolver
	search   *search.Service
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server. svc may be nil, in which case
// search_summa reports that search is unavailable.
func NewServer(res *resolver.Resolver, svc *search.Service) *Server {
	s := &Server{
		resolver: res,
		search:   svc,
	}

	s.mcp = server.NewMCPServer(
		"summa",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listPartsTool, s.handleListParts)
	s.mcp.AddTool(browseTool, s.handleBrowse)
	s.mcp.AddTool(searchSummaTool, s.handleSearchSumma)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
