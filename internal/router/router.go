// Package router translates interaction events into modal controller calls.
//
// Each event handler applies its guard first. Guards are plain predicates so
// they can be tested without a display.
package router

import (
	"io"
	"log/slog"

	"github.com/marcus/folio/internal/modal"
	"github.com/marcus/folio/internal/nav"
)

// DefaultBreakpoint is the widest viewport, in logical pixels, that uses the
// collapsible mobile menu.
const DefaultBreakpoint = 768

// Event is an interaction delivered to the router.
type Event interface {
	event()
}

// NavActivated is a click on a navigation entry.
type NavActivated struct{ Section string }

// CTAActivated is a click on a call-to-action control.
type CTAActivated struct{ Section string }

// CloseActivated is a click on a panel's close button.
type CloseActivated struct{}

// OverlayClicked is a click on the overlay layer behind an open panel.
// Y and ContentTop are in the same vertical coordinate space.
type OverlayClicked struct{ Y, ContentTop int }

// EscapePressed is the Escape key in any focus context.
type EscapePressed struct{}

// MenuToggled is a click on the mobile menu toggle.
type MenuToggled struct{}

// Resized reports a new viewport width in logical pixels.
type Resized struct{ Width int }

// ThemeToggled is a click on the theme toggle.
type ThemeToggled struct{}

// LanguageToggled is a click on the language toggle.
type LanguageToggled struct{}

func (NavActivated) event()    {}
func (CTAActivated) event()    {}
func (CloseActivated) event()  {}
func (OverlayClicked) event()  {}
func (EscapePressed) event()   {}
func (MenuToggled) event()     {}
func (Resized) event()         {}
func (ThemeToggled) event()    {}
func (LanguageToggled) event() {}

// OverlayShouldClose reports whether an overlay click at y closes the panel
// whose content starts at top. Only clicks below the content top qualify.
func OverlayShouldClose(y, top int) bool {
	return y > top
}

// IsMobile reports whether width uses the mobile menu.
func IsMobile(width, breakpoint int) bool {
	return width <= breakpoint
}

// Viewport scrolls the page behind the panels.
type Viewport interface {
	ScrollToTop()
}

// Preferences receives the theme and language toggles.
type Preferences interface {
	ToggleTheme()
	ToggleLanguage()
}

// Option configures a Router.
type Option func(*Router)

// WithBreakpoint overrides DefaultBreakpoint.
func WithBreakpoint(px int) Option {
	return func(r *Router) {
		if px > 0 {
			r.breakpoint = px
		}
	}
}

// WithViewport sets the page scroller used by the home entry.
func WithViewport(v Viewport) Option {
	return func(r *Router) { r.viewport = v }
}

// WithPreferences sets the receiver of theme and language toggles.
func WithPreferences(p Preferences) Option {
	return func(r *Router) { r.prefs = p }
}

// WithWidth sets the initial viewport width.
func WithWidth(px int) Option {
	return func(r *Router) { r.width = px }
}

// WithLogger sets the router logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.log = l
		}
	}
}

// Router dispatches events. It also owns the mobile menu visibility, which
// depends only on events and width.
type Router struct {
	ctrl       *modal.Controller
	viewport   Viewport
	prefs      Preferences
	breakpoint int
	width      int
	menuShown  bool
	log        *slog.Logger
}

// New creates a router over ctrl.
func New(ctrl *modal.Controller, opts ...Option) *Router {
	r := &Router{
		ctrl:       ctrl,
		breakpoint: DefaultBreakpoint,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dispatch handles one event to completion.
func (r *Router) Dispatch(ev Event) {
	switch e := ev.(type) {
	case NavActivated:
		r.navigate(e.Section)
	case CTAActivated:
		r.callToAction(e.Section)
	case CloseActivated:
		r.ctrl.Close()
	case OverlayClicked:
		if OverlayShouldClose(e.Y, e.ContentTop) {
			r.ctrl.Close()
		}
	case EscapePressed:
		r.ctrl.Close()
	case MenuToggled:
		if r.Mobile() {
			r.menuShown = !r.menuShown
		}
	case Resized:
		r.width = e.Width
		if !r.Mobile() {
			r.menuShown = false
		}
	case ThemeToggled:
		if r.prefs != nil {
			r.prefs.ToggleTheme()
		}
	case LanguageToggled:
		if r.prefs != nil {
			r.prefs.ToggleLanguage()
		}
	default:
		r.log.Debug("unhandled event", "event", ev)
	}
}

func (r *Router) navigate(section string) {
	if section == nav.Home {
		r.ctrl.Close()
		if r.viewport != nil {
			r.viewport.ScrollToTop()
		}
		r.ctrl.SelectOnly(section)
	} else {
		r.ctrl.SelectOnly(section)
		r.ctrl.Open(section)
	}

	if r.Mobile() {
		r.menuShown = false
	}
}

// callToAction opens section and mirrors it in the navigation. With no entry
// for section every entry is deselected.
func (r *Router) callToAction(section string) {
	r.ctrl.Open(section)
	if r.ctrl.HasNavEntry(section) {
		r.ctrl.SelectOnly(section)
	} else {
		r.ctrl.ClearSelection()
	}
}

// MenuShown reports whether the mobile menu is visible.
func (r *Router) MenuShown() bool {
	return r.menuShown
}

// Mobile reports whether the current width uses the mobile menu.
func (r *Router) Mobile() bool {
	return IsMobile(r.width, r.breakpoint)
}

// Width returns the last known viewport width.
func (r *Router) Width() int {
	return r.width
}

// Breakpoint returns the mobile breakpoint in logical pixels.
func (r *Router) Breakpoint() int {
	return r.breakpoint
}
