package page

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/folio/internal/router"
	"github.com/marcus/folio/pkg/page/mouse"
)

// Hit region ids.
const (
	regionOverlay = "overlay"
	regionContent = "content"
	regionClose   = "close"
	regionNav     = "nav"
	regionCTA     = "cta"
	regionMenu    = "menu"
	regionTheme   = "theme"
	regionLang    = "lang"
	regionField   = "field"
	regionSend    = "send"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, m.dispatch(router.Resized{Width: msg.Width * m.cellWidth})

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case progress.FrameMsg:
		return m, m.skills.Update(msg)

	case feedbackExpiredMsg:
		m.board.Expire(msg.seq)
		return m, nil
	}

	// Cursor blink and other messages for the focused input
	if m.jumping {
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		return m, cmd
	}
	if m.formActive() {
		return m, m.form.update(msg)
	}
	return m, nil
}

// formActive reports whether the contact panel is open with its form focused.
func (m Model) formActive() bool {
	return m.formPanel != "" && m.ctrl.IsOpen(m.formPanel) && m.form.focused
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.jumping {
		return m.handleJumpKey(msg)
	}

	if m.formActive() {
		switch key {
		case "esc":
			return m, m.dispatch(router.EscapePressed{})
		case "tab", "down":
			m.form.next()
			return m, m.form.cmd()
		case "shift+tab", "up":
			m.form.prev()
			return m, m.form.cmd()
		case "ctrl+s":
			return m.submitForm()
		case "enter":
			if m.form.focus != fieldMessage {
				m.form.next()
				return m, m.form.cmd()
			}
		}
		return m, m.form.update(msg)
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "esc":
		return m, m.dispatch(router.EscapePressed{})
	case "x":
		return m, m.dispatch(router.CloseActivated{})
	case "t":
		return m, m.dispatch(router.ThemeToggled{})
	case "l":
		return m, m.dispatch(router.LanguageToggled{})
	case "m":
		return m, m.dispatch(router.MenuToggled{})
	case "c", "enter":
		if _, open := m.ctrl.Current(); open && key == "enter" {
			// enter on an open contact panel puts focus back in the form
			if m.ctrl.IsOpen(m.formPanel) {
				m.form.focusField(m.form.focus)
				return m, m.form.cmd()
			}
			return m, nil
		}
		return m, m.callToAction()
	case "/":
		m.jumping = true
		m.jump.SetValue("")
		return m, m.jump.Focus()
	case "y":
		return m.copyPanel()
	case "up", "k":
		m.scroll(-1)
	case "down", "j":
		m.scroll(1)
	case "pgup":
		m.scroll(-m.pageSize())
	case "pgdown", " ":
		m.scroll(m.pageSize())
	case "home", "g":
		m.scroll(-1 << 20)
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		entries := m.ctrl.NavEntries()
		if i := int(key[0] - '1'); i < len(entries) {
			return m, m.dispatch(router.NavActivated{Section: entries[i].Section})
		}
	}
	return m, nil
}

// handleJumpKey drives the fuzzy jump prompt. Enter opens the best match the
// same way the call-to-action does.
func (m Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.jumping = false
		m.jump.Blur()
		return m, m.dispatch(router.EscapePressed{})
	case "enter":
		m.jumping = false
		m.jump.Blur()
		query := strings.TrimSpace(m.jump.Value())
		p, ok := m.doc.Registry(m.prefs.Language()).Find(query)
		if !ok {
			m.log.Debug("jump: no match", "query", query)
			return m, nil
		}
		return m, m.dispatch(router.CTAActivated{Section: p.ID})
	}
	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

// callToAction follows the home call-to-action. A document without a CTA
// target leaves the selection alone.
func (m Model) callToAction() tea.Cmd {
	section := m.doc.Home.CTA.Section
	if section == "" {
		return nil
	}
	return m.dispatch(router.CTAActivated{Section: section})
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	action := m.mouse.HandleMouse(msg)

	switch action.Type {
	case mouse.ActionScrollUp:
		m.scroll(-3)
		return m, nil
	case mouse.ActionScrollDown:
		m.scroll(3)
		return m, nil
	case mouse.ActionClick:
	default:
		return m, nil
	}

	if action.Region == nil {
		return m, nil
	}
	switch action.Region.ID {
	case regionNav:
		section, _ := action.Region.Data.(string)
		return m, m.dispatch(router.NavActivated{Section: section})
	case regionCTA:
		return m, m.callToAction()
	case regionClose:
		return m, m.dispatch(router.CloseActivated{})
	case regionOverlay:
		return m, m.dispatch(router.OverlayClicked{Y: action.Y, ContentTop: m.layout.contentTop})
	case regionMenu:
		return m, m.dispatch(router.MenuToggled{})
	case regionTheme:
		return m, m.dispatch(router.ThemeToggled{})
	case regionLang:
		return m, m.dispatch(router.LanguageToggled{})
	case regionField:
		i, _ := action.Region.Data.(int)
		m.form.focusField(i)
		return m, m.form.cmd()
	case regionSend:
		return m.submitForm()
	}
	// regionContent: clicks inside a panel stay there
	return m, nil
}

// scroll moves the open panel, or the home view when nothing is open. The
// home view does not move while a panel holds the scroll lock.
func (m Model) scroll(delta int) {
	if m.ctrl.State().ScrollLocked {
		m.layout.panelScroll = min(max(m.layout.panelScroll+delta, 0), m.layout.panelMax)
		return
	}
	m.home.scroll(delta)
}

func (m Model) pageSize() int {
	return max(m.Height-m.layout.contentTop-2, 1)
}
