package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/book-reader/internal/book"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the book's table of contents.
type Server struct {
	book *book.Book
	mcp  *server.MCPServer
}

// NewServer creates a new MCP server for b.
func NewServer(b *book.Book) *Server {
	s := &Server{book: b}

	s.mcp = server.NewMCPServer(
		"bookreader",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listChaptersTool, s.handleListChapters)
	s.mcp.AddTool(getSectionTool, s.handleGetSection)
	s.mcp.AddTool(resolveHeadingTool, s.handleResolveHeading)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
