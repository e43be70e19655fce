package book

import (
	"strconv"
	"strings"
)

// Heading is a single markdown heading line, in document order.
type Heading struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Level int    `json:"level" yaml:"level"`
}

// headingPrefixes maps the supported ATX markers to their level.
// Deeper headings are not part of the table of contents.
var headingPrefixes = []struct {
	prefix string
	level  int
}{
	{"# ", 1},
	{"## ", 2},
	{"### ", 3},
}

// Extract scans markdown line by line and returns every level 1-3 heading.
// Ids are slugs of the heading title; repeated slugs get an occurrence
// suffix ("-1", "-2", ...) so ids within one call are unique.
func Extract(markdown string) []Heading {
	var headings []Heading
	seen := make(map[string]int)

	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSuffix(line, "\r")
		for _, hp := range headingPrefixes {
			if !strings.HasPrefix(line, hp.prefix) {
				continue
			}
			title := line[len(hp.prefix):]
			if title == "" {
				break
			}
			headings = append(headings, Heading{
				ID:    uniqueID(Slug(title), seen),
				Title: title,
				Level: hp.level,
			})
			break
		}
	}

	return headings
}

// uniqueID records slug in seen and returns it, suffixed with its occurrence
// count when it has been handed out before.
func uniqueID(slug string, seen map[string]int) string {
	if slug == "" {
		return ""
	}
	n, dup := seen[slug]
	seen[slug] = n + 1
	if !dup {
		return slug
	}
	id := slug + "-" + strconv.Itoa(n)
	for seen[id] > 0 {
		n++
		seen[slug] = n + 1
		id = slug + "-" + strconv.Itoa(n)
	}
	seen[id] = 1
	return id
}

// Slug converts a heading title into a URL-safe id: lowercase, only
// [a-z0-9 ] kept, trimmed, whitespace runs replaced by a single hyphen.
func Slug(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}
