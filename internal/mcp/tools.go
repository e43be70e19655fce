package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listChaptersTool defines the list_chapters MCP tool.
var listChaptersTool = mcp.NewTool("list_chapters",
	mcp.WithDescription("List the book's chapters with their sub-chapter headings and ids."),
)

// getSectionTool defines the get_section MCP tool.
var getSectionTool = mcp.NewTool("get_section",
	mcp.WithDescription("Get the markdown of one section. A chapter id returns the whole chapter with all its sub-chapters; any other heading id returns the text up to the next heading of the same or higher level."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Heading id as listed by list_chapters, e.g. chapter-1-getting-started"),
	),
)

// resolveHeadingTool defines the resolve_heading MCP tool.
var resolveHeadingTool = mcp.NewTool("resolve_heading",
	mcp.WithDescription("Find the chapter that owns a heading id."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Heading id to resolve"),
	),
)
