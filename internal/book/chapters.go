package book

import "strings"

const (
	// DefaultChapterPrefix marks a level-2 heading that opens a chapter.
	DefaultChapterPrefix = "Chapter"
	// DefaultTakeawaysMarker marks a chapter-shaped heading that belongs to
	// the preceding chapter instead of opening a new one.
	DefaultTakeawaysMarker = ": Key Takeaways"
)

// Chapter is a top-level table of contents entry with its nested sections.
type Chapter struct {
	Heading     `yaml:",inline"`
	SubChapters []Heading `json:"subChapters" yaml:"subChapters"`
}

// Tree is the ordered list of chapters derived from a book's headings.
type Tree []Chapter

// Builder folds a flat heading list into a chapter tree.
type Builder struct {
	ChapterPrefix   string
	TakeawaysMarker string
}

// DefaultBuilder returns a Builder using the standard chapter markers.
func DefaultBuilder() Builder {
	return Builder{
		ChapterPrefix:   DefaultChapterPrefix,
		TakeawaysMarker: DefaultTakeawaysMarker,
	}
}

// BuildTree builds a chapter tree with the default markers.
func BuildTree(headings []Heading) Tree {
	return DefaultBuilder().Build(headings)
}

// Build makes a single forward pass over headings. Level-1 headings are
// skipped, headings seen before the first chapter are dropped, and
// everything else lands under the most recent chapter in document order.
func (b Builder) Build(headings []Heading) Tree {
	tree := Tree{}
	current := -1

	for _, h := range headings {
		switch {
		case h.Level == 1:
			continue
		case h.Level == 2 && b.isChapter(h.Title) && !b.isTakeaways(h.Title):
			tree = append(tree, Chapter{Heading: h, SubChapters: []Heading{}})
			current = len(tree) - 1
		case h.Level == 2 || h.Level == 3:
			if current >= 0 {
				tree[current].SubChapters = append(tree[current].SubChapters, h)
			}
		}
	}

	return tree
}

func (b Builder) isChapter(title string) bool {
	return strings.HasPrefix(title, b.ChapterPrefix)
}

func (b Builder) isTakeaways(title string) bool {
	return b.TakeawaysMarker != "" && strings.Contains(title, b.TakeawaysMarker)
}

// Len returns the total number of headings in the tree, chapters included.
func (t Tree) Len() int {
	n := len(t)
	for _, c := range t {
		n += len(c.SubChapters)
	}
	return n
}

// Find returns the chapter whose own id is id.
func (t Tree) Find(id string) (Chapter, bool) {
	for _, c := range t {
		if c.ID == id {
			return c, true
		}
	}
	return Chapter{}, false
}
