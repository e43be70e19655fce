package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/book-reader/internal/book"
)

// handleListChapters returns the chapter tree as an indented outline.
func (s *Server) handleListChapters(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if len(s.book.Chapters) == 0 {
		return mcp.NewToolResultText("The book has no chapters."), nil
	}
	return mcp.NewToolResultText(formatChapters(s.book.Title, s.book.Chapters)), nil
}

// handleGetSection returns the raw markdown of one section. A chapter id
// returns the whole chapter, takeaways and other attached sections included.
func (s *Server) handleGetSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	section, ok := s.book.ChapterSection(id)
	if !ok {
		section, ok = s.book.Section(id)
	}
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"No heading with id %q. Use list_chapters to see the available ids.", id,
		)), nil
	}
	return mcp.NewToolResultText(section), nil
}

// handleResolveHeading reports the chapter owning a heading.
func (s *Server) handleResolveHeading(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	chapterID := book.ResolveActiveParent(s.book.Chapters, id)
	if chapterID == "" {
		return mcp.NewToolResultText(fmt.Sprintf("Heading %q does not belong to any chapter.", id)), nil
	}
	c, _ := s.book.Chapters.Find(chapterID)
	return mcp.NewToolResultText(fmt.Sprintf("%s (%s)", c.Title, c.ID)), nil
}

// formatChapters renders the tree as a markdown outline for AI agent
// consumption.
func formatChapters(title string, tree book.Tree) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	}
	sb.WriteString(fmt.Sprintf("%d chapter(s):\n", len(tree)))

	for _, c := range tree {
		sb.WriteString(fmt.Sprintf("\n- %s [%s]\n", c.Title, c.ID))
		for _, sub := range c.SubChapters {
			indent := "  "
			if sub.Level == 3 {
				indent = "    "
			}
			sb.WriteString(fmt.Sprintf("%s- %s [%s]\n", indent, sub.Title, sub.ID))
		}
	}

	return sb.String()
}
