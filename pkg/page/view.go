package page

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/marcus/folio/internal/contact"
	"github.com/marcus/folio/internal/locale"
	"github.com/marcus/folio/internal/theme"
	"github.com/marcus/folio/pkg/page/modal"
	"github.com/marcus/folio/pkg/page/mouse"
)

const footerHeight = 1

// segment is a piece of a row, clickable when id is set.
type segment struct {
	text string
	id   string
	data any
}

// View implements tea.Model.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	m.mouse.Clear()

	th := m.prefs.Theme()
	st := th.Styles()
	lang := m.prefs.Language()
	rtl := lang.Dir() == locale.RTL

	navRows, navHits := m.renderNav(st, lang, rtl)
	m.layout.navHeight = len(navRows)
	m.layout.contentTop = m.layout.navHeight + 1
	bodyHeight := max(m.Height-m.layout.contentTop-footerHeight, 0)

	m.home.setSize(m.Width, bodyHeight)
	m.home.setContent(m.doc, lang, st)

	body := append([]string{""}, strings.Split(m.home.vp.View(), "\n")...)
	footer := m.renderFooter(st, lang)

	state := m.ctrl.State()
	if !state.Open {
		if x, y, ok := m.home.ctaRect(rtl); ok {
			m.mouse.HitMap.AddRect(regionCTA, x, m.layout.contentTop+y, m.home.ctaW, 1, nil)
		}
		screen := fitRows(slices.Concat(navRows, body, []string{footer}), m.Height)
		m.addHits(navHits)
		return screen
	}

	base := strings.Join(body, "\n")
	base = modal.Dim(base, st.Overlay)
	screen := fitRows(slices.Concat(navRows, strings.Split(base, "\n"), []string{footer}), m.Height)

	m.mouse.HitMap.AddRect(regionOverlay, 0, 0, m.Width, m.Height, nil)
	panel, x, y, hits := m.renderPanel(th, st, lang, rtl)
	screen = modal.Place(screen, panel.View, x, y, m.Width, m.Height)
	m.addHits(hits)
	m.addHits(navHits)
	return screen
}

func (m Model) addHits(regions []mouse.Region) {
	for _, r := range regions {
		m.mouse.HitMap.Add(r)
	}
}

// fitRows pads or cuts rows to exactly n lines.
func fitRows(rows []string, n int) string {
	if len(rows) > n {
		rows = rows[:n]
	}
	for len(rows) < n {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

// renderNav draws the navigation bar. On narrow screens the entries move into
// a menu below a toggle. Right-to-left layouts mirror the bar.
func (m Model) renderNav(st theme.Styles, lang locale.Lang, rtl bool) ([]string, []mouse.Region) {
	var entries []segment
	for _, e := range m.doc.Nav {
		style := st.NavItem
		if m.ctrl.NavSelected(e.Section) {
			style = st.NavActive
		}
		entries = append(entries, segment{text: style.Render(e.Label.In(lang)), id: regionNav, data: e.Section})
	}

	brand := segment{text: st.Brand.Render(m.doc.Owner.Name) + " "}
	toggles := []segment{
		{text: st.Toggle.Render(m.prefs.Theme().Icon()), id: regionTheme},
		{text: st.Toggle.Render(lang.ToggleLabel()), id: regionLang},
	}

	if !m.router.Mobile() {
		row, hits := layoutRow(append([]segment{brand}, entries...), toggles, m.Width, rtl, 0)
		return []string{row}, hits
	}

	menu := segment{text: st.Toggle.Render("☰ " + m.catalog.Text(lang, locale.MsgMenu)), id: regionMenu}
	row, hits := layoutRow([]segment{brand}, append([]segment{menu}, toggles...), m.Width, rtl, 0)
	rows := []string{row}
	if m.router.MenuShown() {
		for i, e := range entries {
			y := len(rows)
			w := lipgloss.Width(e.text)
			x := 0
			line := e.text
			if rtl {
				x = max(m.Width-w, 0)
				line = lipgloss.PlaceHorizontal(m.Width, lipgloss.Right, e.text)
			}
			rows = append(rows, line)
			hits = append(hits, mouse.Region{ID: regionNav, Rect: mouse.Rect{X: x, Y: y, W: w, H: 1}, Data: m.doc.Nav[i].Section})
		}
	}
	return rows, hits
}

// layoutRow places lead at the start of the row and trail at its end,
// reversing the whole row for right-to-left text. It returns the row and
// the click targets measured while laying it out.
func layoutRow(lead, trail []segment, width int, rtl bool, y int) (string, []mouse.Region) {
	used := 0
	for _, s := range slices.Concat(lead, trail) {
		used += lipgloss.Width(s.text)
	}
	spacer := segment{text: strings.Repeat(" ", max(width-used, 1))}
	all := slices.Concat(lead, []segment{spacer}, trail)
	if rtl {
		slices.Reverse(all)
	}

	var sb strings.Builder
	var hits []mouse.Region
	x := 0
	for _, s := range all {
		w := lipgloss.Width(s.text)
		if s.id != "" && x < width {
			hits = append(hits, mouse.Region{ID: s.id, Rect: mouse.Rect{X: x, Y: y, W: min(w, width-x), H: 1}, Data: s.data})
		}
		sb.WriteString(s.text)
		x += w
	}
	return ansi.Truncate(sb.String(), width, ""), hits
}

// panelDimensions returns the outer width and the height limit of the open
// panel.
func (m Model) panelDimensions() (int, int) {
	w := m.Width * 80 / 100
	if w > 90 {
		w = 90
	}
	if w < 40 {
		w = 40
	}
	w = min(w, m.Width)
	h := max(m.Height-m.layout.contentTop-footerHeight, 6)
	return w, h
}

// renderPanel draws the open panel and returns it with its screen position
// and click targets.
func (m Model) renderPanel(th theme.Theme, st theme.Styles, lang locale.Lang, rtl bool) (modal.Layout, int, int, []mouse.Region) {
	id := m.ctrl.State().Panel.ID
	p, _ := m.doc.Panel(id)
	w, h := m.panelDimensions()

	frame := modal.Frame{
		Title:      p.Title.In(lang),
		Close:      "✕ " + m.catalog.Text(lang, locale.MsgClose),
		Width:      w,
		MaxHeight:  h,
		RTL:        rtl,
		Style:      st.PanelFrame,
		TitleStyle: st.PanelTitle,
		CloseStyle: st.CloseButton,
	}
	inner := frame.InnerWidth()

	var rows []string
	if md := m.markdown.render(id, lang.String(), th.MarkdownStyle(), p.Body.In(lang), inner); md != "" {
		rows = strings.Split(md, "\n")
	}

	if id == m.skillsPanel {
		rows = append(rows, "")
		rows = append(rows, m.renderSkills(st, lang, inner)...)
	}

	var (
		formTop = -1
		sendRow int
		spans   [fieldCount]span
	)
	if id == m.formPanel {
		m.form.setWidth(inner)
		view, send, fieldSpans := m.form.view(st)
		rows = append(rows, "")
		formTop = len(rows)
		sendRow, spans = send, fieldSpans
		rows = append(rows, strings.Split(view, "\n")...)
		if fb, ok := m.board.Current(); ok {
			rows = append(rows, "")
			rows = append(rows, strings.Split(feedbackView(st, fb, inner), "\n")...)
		}
	}

	frame.Body = strings.Join(rows, "\n")
	frame.Scroll = m.layout.panelScroll
	out := frame.Render()
	m.layout.panelMax = out.MaxScroll
	m.layout.panelScroll = min(m.layout.panelScroll, out.MaxScroll)

	x := max((m.Width-out.Width)/2, 0)
	y := m.layout.contentTop

	hits := []mouse.Region{
		{ID: regionContent, Rect: mouse.Rect{X: x, Y: y, W: out.Width, H: out.Height}},
		{ID: regionClose, Rect: mouse.Rect{X: x + out.CloseX, Y: y + out.CloseY, W: out.CloseW, H: 1}},
	}

	// bodyHit registers a one-row target for body row r if it is visible.
	bodyHit := func(regionID string, r int, data any) {
		r -= m.layout.panelScroll
		if r < 0 || r >= out.BodyLines {
			return
		}
		hits = append(hits, mouse.Region{
			ID:   regionID,
			Rect: mouse.Rect{X: x + out.BodyX, Y: y + out.BodyY + r, W: inner, H: 1},
			Data: data,
		})
	}
	if formTop >= 0 {
		for i, s := range spans {
			for r := s.start; r < s.end; r++ {
				bodyHit(regionField, formTop+r, i)
			}
		}
		bodyHit(regionSend, formTop+sendRow, nil)
	}
	return out, x, y, hits
}

// renderSkills draws one labelled bar per skill.
func (m Model) renderSkills(st theme.Styles, lang locale.Lang, width int) []string {
	bars := m.doc.SkillBars(m.skillsPanel, lang)
	labelW := 0
	for _, b := range bars {
		labelW = max(labelW, lipgloss.Width(b.Label))
	}
	// label, two gaps and a right-aligned percentage
	m.skills.SetWidth(max(width-labelW-7, 10))

	rows := make([]string, 0, len(bars))
	for i, b := range bars {
		label := st.Body.Render(b.Label + strings.Repeat(" ", labelW-lipgloss.Width(b.Label)))
		pct := st.Muted.Render(fmt.Sprintf("%4d%%", b.Level))
		rows = append(rows, label+" "+m.skills.View(i)+" "+pct)
	}
	return rows
}

func feedbackView(st theme.Styles, fb contact.Feedback, width int) string {
	style := st.Success
	if fb.Kind == contact.KindError {
		style = st.Error
	}
	return style.Render(cellbuf.Wrap(fb.Message, width, ""))
}

// renderFooter shows the jump prompt, a transient message or the key help.
func (m Model) renderFooter(st theme.Styles, lang locale.Lang) string {
	if m.jumping {
		return ansi.Truncate(st.Muted.Render(m.catalog.Text(lang, locale.MsgJump))+m.jump.View(), m.Width, "")
	}
	if fb, ok := m.board.Current(); ok && !m.ctrl.IsOpen(m.formPanel) {
		line, _, _ := strings.Cut(feedbackView(st, fb, m.Width), "\n")
		return line
	}
	return ansi.Truncate(st.Muted.Render(m.catalog.Text(lang, locale.MsgHelp)), m.Width, "…")
}
