// Package nav tracks which navigation entry is marked current.
package nav

// Home is the navigation target that has no panel.
const Home = "home"

// Entry is a navigation item. Section is a panel id or Home.
type Entry struct {
	Section string
	Label   string
}

// Tracker holds the single selected entry, if any.
type Tracker struct {
	entries []Entry
	current string
}

// NewTracker creates a tracker over a fixed set of entries with nothing selected.
func NewTracker(entries []Entry) *Tracker {
	e := make([]Entry, len(entries))
	copy(e, entries)
	return &Tracker{entries: e}
}

// SelectOnly marks the entry for section as the only selected one.
// A section with no entry leaves every entry deselected.
func (t *Tracker) SelectOnly(section string) {
	t.current = ""
	for _, e := range t.entries {
		if e.Section == section {
			t.current = section
			return
		}
	}
}

// ClearAll deselects every entry.
func (t *Tracker) ClearAll() {
	t.current = ""
}

// Current returns the selected section.
func (t *Tracker) Current() (string, bool) {
	return t.current, t.current != ""
}

// IsSelected reports whether the entry for section is selected.
func (t *Tracker) IsSelected(section string) bool {
	return section != "" && t.current == section
}

// Has reports whether any entry targets section.
func (t *Tracker) Has(section string) bool {
	for _, e := range t.entries {
		if e.Section == section {
			return true
		}
	}
	return false
}

// Entries returns the entries in display order.
func (t *Tracker) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Selected returns a per-entry selection flag aligned with Entries.
func (t *Tracker) Selected() []bool {
	out := make([]bool, len(t.entries))
	for i, e := range t.entries {
		out[i] = t.IsSelected(e.Section)
	}
	return out
}
