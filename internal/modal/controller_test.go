package modal

import (
	"math/rand"
	"testing"

	"github.com/marcus/folio/internal/nav"
	"github.com/marcus/folio/internal/registry"
)

type countingRevealer struct{ n int }

func (r *countingRevealer) Reveal() { r.n++ }

func newTestController(opts ...Option) *Controller {
	panels := registry.New(
		registry.Panel{ID: "about"},
		registry.Panel{ID: "skills"},
		registry.Panel{ID: "projects"},
		registry.Panel{ID: "contact"},
	)
	tracker := nav.NewTracker([]nav.Entry{
		{Section: nav.Home},
		{Section: "about"},
		{Section: "skills"},
		{Section: "projects"},
	})
	return New(panels, tracker, opts...)
}

func checkInvariants(t *testing.T, c *Controller) {
	t.Helper()
	s := c.State()
	if s.ScrollLocked != s.Open {
		t.Fatalf("ScrollLocked = %v but Open = %v", s.ScrollLocked, s.Open)
	}
	if !s.Open && s.Panel.ID != "" {
		t.Fatalf("closed controller still holds panel %q", s.Panel.ID)
	}
	if s.Open && s.Panel.ID == "" {
		t.Fatal("open controller has no panel")
	}
}

func TestOpenClose(t *testing.T) {
	c := newTestController()

	if !c.Open("projects") {
		t.Fatal("Open(projects) returned false")
	}
	if id, ok := c.Current(); !ok || id != "projects" {
		t.Errorf("Current() = %q, %v; want projects, true", id, ok)
	}
	if !c.State().ScrollLocked {
		t.Error("scroll should be locked while open")
	}
	checkInvariants(t, c)

	if !c.Close() {
		t.Fatal("Close() returned false while open")
	}
	if _, ok := c.Current(); ok {
		t.Error("expected closed after Close()")
	}
	if c.State().ScrollLocked {
		t.Error("scroll should be unlocked after close")
	}
	checkInvariants(t, c)
}

func TestCloseWhenClosedIsNoop(t *testing.T) {
	var transitions int
	c := newTestController(WithHook(func(Transition) { transitions++ }))

	before := c.State()
	if c.Close() {
		t.Error("Close() on closed controller returned true")
	}
	if c.State() != before {
		t.Errorf("state changed: %+v -> %+v", before, c.State())
	}
	if transitions != 0 {
		t.Errorf("hooks ran %d times, want 0", transitions)
	}
}

func TestOpenSwapsAtomically(t *testing.T) {
	var seen []Transition
	c := newTestController(WithHook(func(tr Transition) { seen = append(seen, tr) }))

	c.Open("about")
	c.Open("projects")

	if len(seen) != 2 {
		t.Fatalf("got %d transitions, want 2", len(seen))
	}
	swap := seen[1]
	if swap.Kind != Opened {
		t.Errorf("swap kind = %v, want opened", swap.Kind)
	}
	if swap.From.PanelID() != "about" || swap.To.PanelID() != "projects" {
		t.Errorf("swap %q -> %q, want about -> projects", swap.From.PanelID(), swap.To.PanelID())
	}
	if c.IsOpen("about") {
		t.Error("about still open after swap")
	}
}

func TestReopenSkillsRevealsEachTime(t *testing.T) {
	r := &countingRevealer{}
	c := newTestController(WithRevealer("skills", r))

	c.Open("skills")
	c.Open("skills")
	if r.n != 2 {
		t.Errorf("reveal count = %d, want 2", r.n)
	}

	c.Open("about")
	if r.n != 2 {
		t.Errorf("reveal ran for about: count = %d", r.n)
	}
}

func TestOpenUnknownIsNoop(t *testing.T) {
	c := newTestController()

	if c.Open("nonexistent") {
		t.Error("Open(nonexistent) returned true")
	}
	if _, ok := c.Current(); ok {
		t.Error("unknown id opened a panel")
	}

	c.Open("projects")
	before := c.State()
	c.Open("nonexistent")
	if c.State() != before {
		t.Errorf("state changed on unknown id: %+v -> %+v", before, c.State())
	}
}

func TestSelectionTracksNavID(t *testing.T) {
	c := newTestController()

	c.SelectOnly("projects")
	if c.State().NavID != "projects" {
		t.Errorf("NavID = %q, want projects", c.State().NavID)
	}
	if !c.NavSelected("projects") || c.NavSelected("about") {
		t.Error("expected only projects selected")
	}

	c.ClearSelection()
	if c.State().NavID != "" {
		t.Errorf("NavID = %q after ClearSelection", c.State().NavID)
	}
	for _, e := range c.NavEntries() {
		if c.NavSelected(e.Section) {
			t.Errorf("%q still selected", e.Section)
		}
	}
}

func TestRandomSequencesKeepInvariants(t *testing.T) {
	c := newTestController(WithRevealer("skills", &countingRevealer{}))
	ids := []string{"about", "skills", "projects", "contact", "nonexistent", ""}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		if rng.Intn(3) == 0 {
			c.Close()
		} else {
			c.Open(ids[rng.Intn(len(ids))])
		}
		checkInvariants(t, c)
	}
}

func TestTransitionKindString(t *testing.T) {
	if Opened.String() != "opened" || Closed.String() != "closed" {
		t.Errorf("unexpected strings %q %q", Opened, Closed)
	}
}
