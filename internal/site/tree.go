package site

import (
	"fmt"
	"html"
	"strings"

	"github.com/ziadkadry99/book-reader/internal/book"
)

// TreeHTML renders the chapter tree as the sidebar accordion. The chapter
// owning activeID is expanded and the link for activeID is marked active.
func TreeHTML(tree book.Tree, activeID string) string {
	open := book.ResolveActiveParent(tree, activeID)

	var b strings.Builder
	b.WriteString(`<div class="accordion" id="toc">` + "\n")
	for _, c := range tree {
		expanded := ""
		if c.ID == open {
			expanded = " expanded"
		}
		fmt.Fprintf(&b, `<div class="chapter%s" data-chapter="%s">`+"\n", expanded, attr(c.ID))
		fmt.Fprintf(&b, `<a class="chapter-link%s" href="#%s" data-target="%s">%s</a>`+"\n",
			activeClass(c.ID, activeID), attr(c.ID), attr(c.ID), html.EscapeString(c.Title))
		renderSubChapters(&b, c, activeID)
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
	return b.String()
}

func renderSubChapters(b *strings.Builder, c book.Chapter, activeID string) {
	if len(c.SubChapters) == 0 {
		return
	}
	b.WriteString(`<ul class="sub-chapters">` + "\n")
	for _, sub := range c.SubChapters {
		fmt.Fprintf(b, `<li><a class="sub-link level-%d%s" href="#%s" data-target="%s" data-chapter="%s">%s</a></li>`+"\n",
			sub.Level, activeClass(sub.ID, activeID), attr(sub.ID), attr(sub.ID), attr(c.ID), html.EscapeString(sub.Title))
	}
	b.WriteString("</ul>\n")
}

func activeClass(id, activeID string) string {
	if activeID != "" && id == activeID {
		return " active"
	}
	return ""
}

// attr escapes s for use inside a double-quoted attribute.
func attr(s string) string {
	return html.EscapeString(s)
}
