// Package page is the interactive portfolio: a home view with a navigation
// bar, and content panels opened on top of it.
package page

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/folio/internal/contact"
	"github.com/marcus/folio/internal/content"
	"github.com/marcus/folio/internal/locale"
	lifecycle "github.com/marcus/folio/internal/modal"
	"github.com/marcus/folio/internal/nav"
	"github.com/marcus/folio/internal/prefs"
	"github.com/marcus/folio/internal/router"
	"github.com/marcus/folio/internal/skills"
	"github.com/marcus/folio/pkg/page/mouse"
)

// DefaultCellWidth is the number of logical pixels one terminal column
// stands for when comparing against the breakpoint.
const DefaultCellWidth = 8

// Options configures a Model.
type Options struct {
	Doc           *content.Document
	Prefs         *prefs.Prefs
	Catalog       *locale.Catalog
	Breakpoint    int           // logical pixels; 0 uses router.DefaultBreakpoint
	CellWidth     int           // logical pixels per column; 0 uses DefaultCellWidth
	FeedbackDelay time.Duration // 0 uses contact.FeedbackDelay
	Logger        *slog.Logger
}

// layout holds positions measured during the last render. It lives behind a
// pointer so View, which has a value receiver, can record what it drew.
type layout struct {
	navHeight   int
	contentTop  int
	panelScroll int
	panelMax    int
}

// Model is the Bubble Tea model for the portfolio page.
type Model struct {
	// Window dimensions in cells
	Width  int
	Height int

	// Clipboard function (nil = real system clipboard)
	ClipboardFn func(string) error

	doc     *content.Document
	prefs   *prefs.Prefs
	catalog *locale.Catalog
	log     *slog.Logger

	ctrl   *lifecycle.Controller
	router *router.Router

	skillsPanel string
	formPanel   string
	skills      *skills.Animator
	form        *contactForm

	board         *contact.Board
	feedbackDelay time.Duration

	home      *homeView
	markdown  *markdownCache
	mouse     *mouse.Handler
	layout    *layout
	cellWidth int

	jumping bool
	jump    textinput.Model
}

// feedbackExpiredMsg clears the feedback with the given sequence number.
type feedbackExpiredMsg struct {
	seq int
}

// New builds the page. The navigation starts on the home entry with every
// panel closed.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	cat := opts.Catalog
	if cat == nil {
		cat = locale.NewCatalog()
	}
	p := opts.Prefs
	if p == nil {
		p = prefs.Load(prefs.MemStore{}, log)
	}
	cellWidth := opts.CellWidth
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	delay := opts.FeedbackDelay
	if delay <= 0 {
		delay = contact.FeedbackDelay
	}
	breakpoint := opts.Breakpoint
	if breakpoint <= 0 {
		breakpoint = router.DefaultBreakpoint
	}

	lang := p.Language()
	m := Model{
		doc:           opts.Doc,
		prefs:         p,
		catalog:       cat,
		log:           log,
		board:         &contact.Board{},
		feedbackDelay: delay,
		home:          newHomeView(),
		markdown:      newMarkdownCache(),
		mouse:         mouse.NewHandler(),
		layout:        &layout{navHeight: 1, contentTop: 2},
		cellWidth:     cellWidth,
		form:          newContactForm(),
	}
	m.skillsPanel, _ = opts.Doc.SkillsPanel()
	m.formPanel, _ = opts.Doc.FormPanel()
	m.skills = skills.New(opts.Doc.SkillBars(m.skillsPanel, lang), 0)

	ctrlOpts := []lifecycle.Option{
		lifecycle.WithLogger(log),
		lifecycle.WithHook(m.onTransition),
	}
	if m.skillsPanel != "" {
		ctrlOpts = append(ctrlOpts, lifecycle.WithRevealer(m.skillsPanel, m.skills))
	}
	m.ctrl = lifecycle.New(opts.Doc.Registry(lang), nav.NewTracker(opts.Doc.NavEntries(lang)), ctrlOpts...)
	m.router = router.New(m.ctrl,
		router.WithBreakpoint(breakpoint),
		router.WithViewport(m.home),
		router.WithPreferences(p),
		router.WithLogger(log),
	)
	m.ctrl.SelectOnly(nav.Home)

	m.jump = textinput.New()
	m.jump.Prompt = ""
	m.jump.CharLimit = 64

	p.OnChange(func(prefs.Prefs) {
		m.markdown.reset()
		m.form.setLabels(m.catalog, m.prefs.Language())
	})
	m.form.setLabels(cat, lang)
	return m
}

// onTransition runs after every open and close. The controller has already
// revealed the skill bars when the skills panel opened.
func (m Model) onTransition(t lifecycle.Transition) {
	m.layout.panelScroll = 0
	switch t.Kind {
	case lifecycle.Opened:
		if t.To.Panel.ID == m.formPanel {
			m.form.focusField(0)
		} else {
			m.form.blur()
		}
	case lifecycle.Closed:
		m.form.blur()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.doc.Owner.Name)
}

// State returns the panel and navigation state.
func (m Model) State() lifecycle.State {
	return m.ctrl.State()
}

// MenuShown reports whether the mobile menu is visible.
func (m Model) MenuShown() bool {
	return m.router.MenuShown()
}

// Feedback returns the transient message being shown, if any.
func (m Model) Feedback() (contact.Feedback, bool) {
	return m.board.Current()
}

// dispatch routes ev and collects the side-effect commands it queued.
func (m Model) dispatch(ev router.Event) tea.Cmd {
	m.router.Dispatch(ev)
	return m.pendingCmds()
}

func (m Model) pendingCmds() tea.Cmd {
	return tea.Batch(m.skills.Cmd(), m.form.cmd())
}

// expireAfter schedules removal of the feedback with seq.
func expireAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return feedbackExpiredMsg{seq: seq}
	})
}
