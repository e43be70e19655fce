package site

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/ziadkadry99/book-reader/internal/book"
)

// headingIDs gives rendered h1-h3 elements the ids produced by book.Extract,
// so sidebar links and visibility events agree with the rendered page.
// A rendered heading is paired with the record extracted from the source
// line it starts on. Headings that Extract does not see (setext, indented,
// inside a blockquote) carry no id, so every h1-h3 id on the page is an
// extracted one.
type headingIDs struct {
	byLine map[int]book.Heading
}

func (t *headingIDs) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	starts := lineStarts(source)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Level > 3 {
			return ast.WalkContinue, nil
		}
		h.RemoveAttributes()
		if h.Lines().Len() > 0 {
			line := sort.Search(len(starts), func(i int) bool {
				return starts[i] > h.Lines().At(0).Start
			})
			if rec, ok := t.byLine[line]; ok && rec.Level == h.Level && rec.ID != "" {
				h.SetAttributeString("id", []byte(rec.ID))
			}
		}
		return ast.WalkSkipChildren, nil
	})
}

// lineStarts returns the byte offset at which each line of source begins.
func lineStarts(source []byte) []int {
	starts := []int{0}
	for i, c := range source {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// newMarkdown builds a goldmark converter for b with the given chroma style.
func newMarkdown(b *book.Book, style string) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(&headingIDs{byLine: b.HeadingLines()}, 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// renderMarkdown converts the book source to HTML.
func renderMarkdown(b *book.Book, style string) (string, error) {
	var buf bytes.Buffer
	if err := newMarkdown(b, style).Convert([]byte(b.Source), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}
