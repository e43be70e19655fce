package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/book-reader/internal/book"
)

const testBook = `# The Book

## Preface

## Chapter 1: Foo

Foo body.

### Sub A

Sub A body.

## Chapter 1: Foo: Key Takeaways

- one

## Chapter 2: Bar

Bar body.
`

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"list_chapters", listChaptersTool, "list_chapters"},
		{"get_section", getSectionTool, "get_section"},
		{"resolve_heading", resolveHeadingTool, "resolve_heading"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	b := book.Load(testBook)
	srv := NewServer(b)

	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.book != b {
		t.Error("book not set correctly")
	}
}

func TestHandleListChapters(t *testing.T) {
	ctx := context.Background()

	t.Run("outline", func(t *testing.T) {
		srv := NewServer(book.Load(testBook))
		result, err := srv.handleListChapters(ctx, mcp.CallToolRequest{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}

		text := extractText(result)
		for _, want := range []string{
			"# The Book",
			"2 chapter(s)",
			"- Chapter 1: Foo [chapter-1-foo]",
			"    - Sub A [sub-a]",
			"- Chapter 2: Bar [chapter-2-bar]",
		} {
			if !strings.Contains(text, want) {
				t.Errorf("outline missing %q:\n%s", want, text)
			}
		}
		if strings.Contains(text, "preface") {
			t.Error("headings before the first chapter should not be listed")
		}
	})

	t.Run("empty book", func(t *testing.T) {
		srv := NewServer(book.Load("just prose\n"))
		result, err := srv.handleListChapters(ctx, mcp.CallToolRequest{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Error("an empty book should not be an error")
		}
	})
}

func TestHandleGetSection(t *testing.T) {
	srv := NewServer(book.Load(testBook))
	ctx := context.Background()

	t.Run("chapter", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"id": "chapter-1-foo"}

		result, err := srv.handleGetSection(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		want := "## Chapter 1: Foo\n\nFoo body.\n\n### Sub A\n\nSub A body.\n\n" +
			"## Chapter 1: Foo: Key Takeaways\n\n- one"
		if got := extractText(result); got != want {
			t.Errorf("section = %q, want %q", got, want)
		}
	})

	t.Run("sub-chapter", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"id": "sub-a"}

		result, err := srv.handleGetSection(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, want := extractText(result), "### Sub A\n\nSub A body."; got != want {
			t.Errorf("section = %q, want %q", got, want)
		}
	})

	t.Run("heading outside the tree", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"id": "preface"}

		result, err := srv.handleGetSection(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, want := extractText(result), "## Preface"; got != want {
			t.Errorf("section = %q, want %q", got, want)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"id": "nope"}

		result, err := srv.handleGetSection(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for unknown id")
		}
	})

	t.Run("missing id", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleGetSection(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing id")
		}
	})
}

func TestHandleResolveHeading(t *testing.T) {
	srv := NewServer(book.Load(testBook))
	ctx := context.Background()

	tests := []struct {
		id   string
		want string
	}{
		{"sub-a", "Chapter 1: Foo (chapter-1-foo)"},
		{"chapter-2-bar", "Chapter 2: Bar (chapter-2-bar)"},
		{"preface", `Heading "preface" does not belong to any chapter.`},
		{"nope", `Heading "nope" does not belong to any chapter.`},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			req := mcp.CallToolRequest{}
			req.Params.Arguments = map[string]any{"id": tt.id}

			result, err := srv.handleResolveHeading(ctx, req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.IsError {
				t.Fatalf("unexpected tool error: %v", result.Content)
			}
			if got := extractText(result); got != tt.want {
				t.Errorf("resolve(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

// extractText gets the text content from a CallToolResult.
func extractText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}
