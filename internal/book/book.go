package book

import (
	"fmt"
	"os"
	"strings"
)

// Book is a markdown document with its derived table of contents.
// It is built once and not modified afterwards.
type Book struct {
	Title    string
	Author   string
	Source   string
	Headings []Heading
	Chapters Tree
}

// Option customizes Load.
type Option func(*loadOptions)

type loadOptions struct {
	title   string
	author  string
	builder Builder
}

// WithTitle overrides the title taken from the first level-1 heading.
func WithTitle(title string) Option {
	return func(o *loadOptions) { o.title = title }
}

// WithAuthor sets the book's author.
func WithAuthor(author string) Option {
	return func(o *loadOptions) { o.author = author }
}

// WithBuilder replaces the default chapter markers.
func WithBuilder(b Builder) Option {
	return func(o *loadOptions) { o.builder = b }
}

// Load derives headings and chapters from markdown source.
func Load(source string, opts ...Option) *Book {
	o := loadOptions{builder: DefaultBuilder()}
	for _, opt := range opts {
		opt(&o)
	}

	headings := Extract(source)
	b := &Book{
		Title:    o.title,
		Author:   o.author,
		Source:   source,
		Headings: headings,
		Chapters: o.builder.Build(headings),
	}
	if b.Title == "" {
		for _, h := range headings {
			if h.Level == 1 {
				b.Title = h.Title
				break
			}
		}
	}
	return b
}

// LoadFile reads a markdown file and loads it.
func LoadFile(path string, opts ...Option) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading book %s: %w", path, err)
	}
	return Load(string(data), opts...), nil
}

// Heading returns the heading with the given id.
func (b *Book) Heading(id string) (Heading, bool) {
	for _, h := range b.Headings {
		if h.ID == id {
			return h, true
		}
	}
	return Heading{}, false
}

// Section returns the markdown under the heading with the given id, from its
// heading line up to the next heading of the same or a higher level.
func (b *Book) Section(id string) (string, bool) {
	k := b.headingIndex(id)
	if k < 0 {
		return "", false
	}

	lines, at := b.lineIndex()
	end := len(lines)
	for j := k + 1; j < len(b.Headings); j++ {
		if b.Headings[j].Level <= b.Headings[k].Level {
			end = at[j]
			break
		}
	}
	return joinLines(lines[at[k]:end]), true
}

// ChapterSection returns the markdown of a chapter in the tree: its heading
// line and everything the tree attaches to it, up to the next chapter or the
// next level-1 heading.
func (b *Book) ChapterSection(id string) (string, bool) {
	if _, ok := b.Chapters.Find(id); id == "" || !ok {
		return "", false
	}
	k := b.headingIndex(id)
	if k < 0 {
		return "", false
	}

	next := make(map[string]bool, len(b.Chapters))
	for _, c := range b.Chapters {
		next[c.ID] = true
	}

	lines, at := b.lineIndex()
	end := len(lines)
	for j := k + 1; j < len(b.Headings); j++ {
		h := b.Headings[j]
		if h.Level == 1 || (h.Level == 2 && next[h.ID]) {
			end = at[j]
			break
		}
	}
	return joinLines(lines[at[k]:end]), true
}

// HeadingLines maps the 1-based source line of every extracted heading to
// its record.
func (b *Book) HeadingLines() map[int]Heading {
	_, at := b.lineIndex()
	m := make(map[int]Heading, len(at))
	for k, line := range at {
		m[line+1] = b.Headings[k]
	}
	return m
}

func (b *Book) headingIndex(id string) int {
	if id == "" {
		return -1
	}
	for k, h := range b.Headings {
		if h.ID == id {
			return k
		}
	}
	return -1
}

// lineIndex splits the source into lines and returns, for each extracted
// heading, the index of the line it came from.
func (b *Book) lineIndex() ([]string, []int) {
	lines := strings.Split(b.Source, "\n")
	at := make([]int, 0, len(b.Headings))
	for i, line := range lines {
		if len(at) == len(b.Headings) {
			break
		}
		if len(Extract(line)) == 1 {
			at = append(at, i)
		}
	}
	return lines, at
}

func joinLines(lines []string) string {
	return strings.TrimRight(strings.Join(lines, "\n"), "\r\n")
}
