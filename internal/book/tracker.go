package book

import "sync"

// Position is the reader's current place in the book.
type Position struct {
	ActiveID  string `json:"active_id"`
	ChapterID string `json:"chapter_id"`
}

// Tracker turns visibility events from a rendered book into a Position.
// Each event carries one heading id; the last event wins.
type Tracker struct {
	mu        sync.Mutex
	tree      Tree
	known     map[string]bool
	pos       Position
	listeners []func(Position)
	closed    bool
}

// NewTracker creates a Tracker for the given headings and chapter tree.
// Ids that are not among headings are ignored by Report and Click.
func NewTracker(headings []Heading, tree Tree) *Tracker {
	known := make(map[string]bool, len(headings))
	for _, h := range headings {
		if h.ID != "" {
			known[h.ID] = true
		}
	}
	return &Tracker{tree: tree, known: known}
}

// OnChange registers fn to be called after every position change.
func (t *Tracker) OnChange(fn func(Position)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.listeners = append(t.listeners, fn)
}

// Report records that the heading id crossed into view. It reports whether
// the position changed.
func (t *Tracker) Report(id string) bool {
	t.mu.Lock()
	if t.closed || !t.known[id] || id == t.pos.ActiveID {
		t.mu.Unlock()
		return false
	}

	t.pos = Position{ActiveID: id, ChapterID: ResolveActiveParent(t.tree, id)}
	pos := t.pos
	listeners := append([]func(Position){}, t.listeners...)
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(pos)
	}
	return true
}

// Click records a navigation to id from the table of contents.
func (t *Tracker) Click(id string) bool {
	return t.Report(id)
}

// Position returns the current position.
func (t *Tracker) Position() Position {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pos
}

// Close drops all listeners. Later events are ignored.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.listeners = nil
}
