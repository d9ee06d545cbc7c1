// Package modal owns the "currently open panel" slot and the navigation
// selection that goes with it.
//
// The controller is a two-state machine, Closed and Open(panel). Open on an
// already-open controller replaces the current panel in one step, so no
// observer ever sees two panels current or a closed gap between them. Every
// successful Open runs the entry side effects again, even when the same panel
// is reopened.
package modal

import (
	"io"
	"log/slog"

	"github.com/marcus/folio/internal/nav"
	"github.com/marcus/folio/internal/registry"
)

// State is a snapshot of the controller.
type State struct {
	Panel        registry.Panel
	Open         bool
	NavID        string
	ScrollLocked bool
}

// PanelID returns the current panel id, or "" when closed.
func (s State) PanelID() string {
	if !s.Open {
		return ""
	}
	return s.Panel.ID
}

// TransitionKind names a state change.
type TransitionKind int

const (
	Opened TransitionKind = iota
	Closed
)

func (k TransitionKind) String() string {
	switch k {
	case Opened:
		return "opened"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Transition describes a completed state change.
type Transition struct {
	Kind TransitionKind
	From State
	To   State
}

// Hook runs after a transition has been applied.
type Hook func(Transition)

// Revealer triggers the skill-bar reveal animation.
type Revealer interface {
	Reveal()
}

// RevealFunc adapts a function to Revealer.
type RevealFunc func()

func (f RevealFunc) Reveal() { f() }

// Option configures a Controller.
type Option func(*Controller)

// WithRevealer sets the animation triggered when panelID is opened.
func WithRevealer(panelID string, r Revealer) Option {
	return func(c *Controller) {
		c.revealPanel = panelID
		c.revealer = r
	}
}

// WithHook appends a post-transition hook.
func WithHook(h Hook) Option {
	return func(c *Controller) {
		if h != nil {
			c.hooks = append(c.hooks, h)
		}
	}
}

// WithLogger sets the logger used for ignored operations.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Controller is the single owner of State.
type Controller struct {
	panels  *registry.Registry
	tracker *nav.Tracker
	state   State

	revealPanel string
	revealer    Revealer
	hooks       []Hook
	log         *slog.Logger
}

// New creates a closed controller with no navigation selection.
func New(panels *registry.Registry, tracker *nav.Tracker, opts ...Option) *Controller {
	if tracker == nil {
		tracker = nav.NewTracker(nil)
	}
	c := &Controller{
		panels:  panels,
		tracker: tracker,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Current returns the open panel id.
func (c *Controller) Current() (string, bool) {
	return c.state.PanelID(), c.state.Open
}

// IsOpen reports whether id is the current panel.
func (c *Controller) IsOpen(id string) bool {
	return c.state.Open && c.state.Panel.ID == id
}

// Open makes id the current panel. Unknown ids are ignored and false is
// returned. Opening the current panel again re-runs entry side effects.
func (c *Controller) Open(id string) bool {
	p, ok := c.panels.Lookup(id)
	if !ok {
		c.log.Debug("open ignored: unknown panel", "panel", id)
		return false
	}

	from := c.state
	c.state.Panel = p
	c.state.Open = true
	c.state.ScrollLocked = true

	if p.ID == c.revealPanel && c.revealer != nil {
		c.revealer.Reveal()
	}
	c.log.Debug("panel opened", "panel", p.ID, "replaced", from.PanelID())
	c.emit(Transition{Kind: Opened, From: from, To: c.state})
	return true
}

// Close clears the current panel. Closing a closed controller is a no-op.
func (c *Controller) Close() bool {
	if !c.state.Open {
		return false
	}
	from := c.state
	c.state.Panel = registry.Panel{}
	c.state.Open = false
	c.state.ScrollLocked = false

	c.log.Debug("panel closed", "panel", from.Panel.ID)
	c.emit(Transition{Kind: Closed, From: from, To: c.state})
	return true
}

// SelectOnly marks the navigation entry for section as the only selected one.
func (c *Controller) SelectOnly(section string) {
	c.tracker.SelectOnly(section)
	c.state.NavID, _ = c.tracker.Current()
}

// ClearSelection deselects all navigation entries.
func (c *Controller) ClearSelection() {
	c.tracker.ClearAll()
	c.state.NavID = ""
}

// HasNavEntry reports whether a navigation entry targets section.
func (c *Controller) HasNavEntry(section string) bool {
	return c.tracker.Has(section)
}

// NavEntries returns the navigation entries in display order.
func (c *Controller) NavEntries() []nav.Entry {
	return c.tracker.Entries()
}

// NavSelected reports whether the entry for section is selected.
func (c *Controller) NavSelected(section string) bool {
	return c.tracker.IsSelected(section)
}

func (c *Controller) emit(t Transition) {
	for _, h := range c.hooks {
		h(t)
	}
}
