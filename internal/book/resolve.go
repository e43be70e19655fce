package book

// ResolveActiveParent returns the id of the chapter that owns activeID,
// either because it is the chapter itself or one of its sub-chapters.
// It returns "" when activeID is empty or not in the tree.
func ResolveActiveParent(tree Tree, activeID string) string {
	if activeID == "" {
		return ""
	}
	for _, c := range tree {
		if c.ID == activeID {
			return c.ID
		}
		for _, sub := range c.SubChapters {
			if sub.ID == activeID {
				return c.ID
			}
		}
	}
	return ""
}

// Owners maps every heading id in the tree to its owning chapter id.
// When an id appears more than once the first owner in document order wins,
// matching ResolveActiveParent.
func (t Tree) Owners() map[string]string {
	owners := make(map[string]string, t.Len())
	set := func(id, owner string) {
		if id == "" {
			return
		}
		if _, ok := owners[id]; !ok {
			owners[id] = owner
		}
	}
	for _, c := range t {
		set(c.ID, c.ID)
		for _, sub := range c.SubChapters {
			set(sub.ID, c.ID)
		}
	}
	return owners
}
