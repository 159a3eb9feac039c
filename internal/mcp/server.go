package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/pizzeria/internal/render"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes menu lookup tools.
type Server struct {
	renderer *render.Renderer
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server answering from r.
func NewServer(r *render.Renderer) *Server {
	s := &Server{renderer: r}

	s.mcp = server.NewMCPServer(
		"pizzeria",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listPizzasTool, s.handleListPizzas)
	s.mcp.AddTool(getPizzaTool, s.handleGetPizza)
	s.mcp.AddTool(listBeveragesTool, s.handleListBeverages)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
