package router

import (
	"testing"

	"github.com/marcus/folio/internal/modal"
	"github.com/marcus/folio/internal/nav"
	"github.com/marcus/folio/internal/registry"
)

type fakeViewport struct{ tops int }

func (v *fakeViewport) ScrollToTop() { v.tops++ }

type fakePrefs struct{ themes, langs int }

func (p *fakePrefs) ToggleTheme()    { p.themes++ }
func (p *fakePrefs) ToggleLanguage() { p.langs++ }

type fixture struct {
	ctrl     *modal.Controller
	router   *Router
	viewport *fakeViewport
	reveals  int
}

func newFixture(t *testing.T, width int) *fixture {
	t.Helper()
	f := &fixture{viewport: &fakeViewport{}}
	panels := registry.New(
		registry.Panel{ID: "about"},
		registry.Panel{ID: "skills"},
		registry.Panel{ID: "projects"},
		registry.Panel{ID: "contact"},
	)
	// contact intentionally has no nav entry
	tracker := nav.NewTracker([]nav.Entry{
		{Section: nav.Home},
		{Section: "about"},
		{Section: "skills"},
		{Section: "projects"},
	})
	f.ctrl = modal.New(panels, tracker, modal.WithRevealer("skills", modal.RevealFunc(func() { f.reveals++ })))
	f.router = New(f.ctrl, WithViewport(f.viewport), WithWidth(width))
	return f
}

func onlySelected(t *testing.T, c *modal.Controller, want string) {
	t.Helper()
	for _, e := range c.NavEntries() {
		got := c.NavSelected(e.Section)
		if got != (e.Section == want) {
			t.Errorf("entry %q selected = %v, want %v", e.Section, got, e.Section == want)
		}
	}
}

func TestNavToPanel(t *testing.T) {
	f := newFixture(t, 1200)

	f.router.Dispatch(NavActivated{Section: "projects"})

	s := f.ctrl.State()
	if s.PanelID() != "projects" {
		t.Errorf("panel = %q, want projects", s.PanelID())
	}
	if !s.ScrollLocked {
		t.Error("scroll should be locked")
	}
	onlySelected(t, f.ctrl, "projects")
}

func TestNavHomeClosesAndScrollsTop(t *testing.T) {
	f := newFixture(t, 1200)
	f.router.Dispatch(NavActivated{Section: "projects"})

	f.router.Dispatch(NavActivated{Section: nav.Home})

	s := f.ctrl.State()
	if s.Open {
		t.Errorf("expected closed, still on %q", s.PanelID())
	}
	if s.ScrollLocked {
		t.Error("scroll should be unlocked")
	}
	if f.viewport.tops != 1 {
		t.Errorf("ScrollToTop calls = %d, want 1", f.viewport.tops)
	}
	onlySelected(t, f.ctrl, nav.Home)
}

func TestNavHomeWhenClosedStillSelects(t *testing.T) {
	f := newFixture(t, 1200)
	f.router.Dispatch(NavActivated{Section: nav.Home})
	onlySelected(t, f.ctrl, nav.Home)
}

func TestNavToUnknownPanelSelectsNothingOpens(t *testing.T) {
	f := newFixture(t, 1200)
	f.router.Dispatch(NavActivated{Section: "projects"})
	f.router.Dispatch(NavActivated{Section: "blog"})

	if f.ctrl.State().PanelID() != "projects" {
		t.Errorf("unknown panel changed open panel to %q", f.ctrl.State().PanelID())
	}
}

func TestCTA(t *testing.T) {
	tests := []struct {
		name       string
		section    string
		wantPanel  string
		wantSelect string
	}{
		{"target with nav entry", "skills", "skills", "skills"},
		{"target without nav entry deselects all", "contact", "contact", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 1200)
			f.router.Dispatch(NavActivated{Section: "about"})

			f.router.Dispatch(CTAActivated{Section: tt.section})

			if got := f.ctrl.State().PanelID(); got != tt.wantPanel {
				t.Errorf("panel = %q, want %q", got, tt.wantPanel)
			}
			onlySelected(t, f.ctrl, tt.wantSelect)
		})
	}
}

func TestCTASkillsReveals(t *testing.T) {
	f := newFixture(t, 1200)
	f.router.Dispatch(CTAActivated{Section: "skills"})
	f.router.Dispatch(NavActivated{Section: "skills"})
	if f.reveals != 2 {
		t.Errorf("reveals = %d, want 2", f.reveals)
	}
}

func TestCloseAndEscape(t *testing.T) {
	for _, ev := range []Event{CloseActivated{}, EscapePressed{}} {
		f := newFixture(t, 1200)
		f.router.Dispatch(NavActivated{Section: "about"})
		f.router.Dispatch(ev)
		if f.ctrl.State().Open {
			t.Errorf("%T did not close the panel", ev)
		}
		// second dispatch on a closed controller is harmless
		f.router.Dispatch(ev)
		if f.ctrl.State().Open {
			t.Errorf("%T reopened a panel", ev)
		}
	}
}

func TestOverlayShouldClose(t *testing.T) {
	tests := []struct {
		y, top int
		want   bool
	}{
		{10, 5, true},
		{6, 5, true},
		{5, 5, false},
		{2, 5, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := OverlayShouldClose(tt.y, tt.top); got != tt.want {
			t.Errorf("OverlayShouldClose(%d, %d) = %v, want %v", tt.y, tt.top, got, tt.want)
		}
	}
}

func TestOverlayClickGuard(t *testing.T) {
	f := newFixture(t, 1200)
	f.router.Dispatch(NavActivated{Section: "about"})

	f.router.Dispatch(OverlayClicked{Y: 2, ContentTop: 2})
	if !f.ctrl.State().Open {
		t.Fatal("click at content top closed the panel")
	}
	f.router.Dispatch(OverlayClicked{Y: 1, ContentTop: 2})
	if !f.ctrl.State().Open {
		t.Fatal("click above content closed the panel")
	}
	f.router.Dispatch(OverlayClicked{Y: 3, ContentTop: 2})
	if f.ctrl.State().Open {
		t.Fatal("click below content top did not close the panel")
	}
}

func TestMenuToggleMobile(t *testing.T) {
	f := newFixture(t, 500)

	f.router.Dispatch(MenuToggled{})
	if !f.router.MenuShown() {
		t.Error("menu hidden after first toggle")
	}
	f.router.Dispatch(MenuToggled{})
	if f.router.MenuShown() {
		t.Error("menu shown after second toggle")
	}
}

func TestMenuToggleDesktopIsNoop(t *testing.T) {
	f := newFixture(t, 1024)
	f.router.Dispatch(MenuToggled{})
	if f.router.MenuShown() {
		t.Error("menu toggled above breakpoint")
	}
}

func TestMenuBreakpointBoundary(t *testing.T) {
	f := newFixture(t, DefaultBreakpoint)
	f.router.Dispatch(MenuToggled{})
	if !f.router.MenuShown() {
		t.Error("width equal to breakpoint should count as mobile")
	}
}

func TestResizeHidesMenu(t *testing.T) {
	f := newFixture(t, 500)
	f.router.Dispatch(MenuToggled{})

	f.router.Dispatch(Resized{Width: 700})
	if !f.router.MenuShown() {
		t.Error("resize within mobile range hid the menu")
	}

	f.router.Dispatch(Resized{Width: 769})
	if f.router.MenuShown() {
		t.Error("resize above breakpoint left menu shown")
	}
	if f.router.Mobile() {
		t.Error("769 should not be mobile")
	}
}

func TestNavOnMobileHidesMenu(t *testing.T) {
	f := newFixture(t, 500)
	f.router.Dispatch(MenuToggled{})

	f.router.Dispatch(NavActivated{Section: "skills"})

	if f.router.MenuShown() {
		t.Error("menu still shown after navigating on mobile")
	}
	if f.ctrl.State().PanelID() != "skills" {
		t.Errorf("panel = %q, want skills", f.ctrl.State().PanelID())
	}
}

func TestPreferenceToggles(t *testing.T) {
	f := newFixture(t, 1200)
	p := &fakePrefs{}
	r := New(f.ctrl, WithPreferences(p))

	r.Dispatch(ThemeToggled{})
	r.Dispatch(LanguageToggled{})
	r.Dispatch(ThemeToggled{})

	if p.themes != 2 || p.langs != 1 {
		t.Errorf("toggles = theme %d lang %d, want 2 and 1", p.themes, p.langs)
	}
	// no preferences configured: toggles are ignored
	f.router.Dispatch(ThemeToggled{})
}

func TestWithBreakpoint(t *testing.T) {
	f := newFixture(t, 0)
	r := New(f.ctrl, WithBreakpoint(600), WithWidth(700))
	if r.Mobile() {
		t.Error("700 > 600 should not be mobile")
	}
	if r.Breakpoint() != 600 {
		t.Errorf("Breakpoint = %d, want 600", r.Breakpoint())
	}
}
