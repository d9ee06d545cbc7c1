package nav

import "testing"

func testEntries() []Entry {
	return []Entry{
		{Section: Home, Label: "Home"},
		{Section: "about", Label: "About"},
		{Section: "skills", Label: "Skills"},
		{Section: "projects", Label: "Projects"},
	}
}

func countSelected(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

func TestSelectOnly(t *testing.T) {
	tr := NewTracker(testEntries())

	tr.SelectOnly("projects")
	if !tr.IsSelected("projects") {
		t.Error("projects should be selected")
	}
	if n := countSelected(tr.Selected()); n != 1 {
		t.Errorf("selected count = %d, want 1", n)
	}

	tr.SelectOnly("about")
	if tr.IsSelected("projects") {
		t.Error("projects should be deselected after selecting about")
	}
	if cur, ok := tr.Current(); !ok || cur != "about" {
		t.Errorf("Current() = %q, %v; want about, true", cur, ok)
	}
}

func TestSelectOnlyIdempotent(t *testing.T) {
	tr := NewTracker(testEntries())
	tr.SelectOnly("skills")
	before := tr.Selected()
	tr.SelectOnly("skills")
	after := tr.Selected()

	for i := range before {
		if before[i] != after[i] {
			t.Errorf("entry %d changed on repeated SelectOnly", i)
		}
	}
}

func TestSelectOnlyUnknownDeselectsAll(t *testing.T) {
	tr := NewTracker(testEntries())
	tr.SelectOnly("about")
	tr.SelectOnly("contact")

	if _, ok := tr.Current(); ok {
		t.Error("expected no selection for a section without an entry")
	}
	if n := countSelected(tr.Selected()); n != 0 {
		t.Errorf("selected count = %d, want 0", n)
	}
}

func TestClearAll(t *testing.T) {
	tr := NewTracker(testEntries())
	tr.SelectOnly(Home)
	tr.ClearAll()

	if n := countSelected(tr.Selected()); n != 0 {
		t.Errorf("selected count = %d, want 0", n)
	}
	if tr.IsSelected("") {
		t.Error("empty section must never be selected")
	}
}

func TestHas(t *testing.T) {
	tr := NewTracker(testEntries())
	if !tr.Has(Home) || !tr.Has("skills") {
		t.Error("expected home and skills entries")
	}
	if tr.Has("contact") {
		t.Error("contact has no entry")
	}
}
