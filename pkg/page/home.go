package page

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/marcus/folio/internal/content"
	"github.com/marcus/folio/internal/locale"
	"github.com/marcus/folio/internal/theme"
)

// homeView is the scrollable page behind the panels.
type homeView struct {
	vp      viewport.Model
	ctaLine int
	ctaW    int
}

func newHomeView() *homeView {
	return &homeView{vp: viewport.New(0, 0)}
}

// ScrollToTop scrolls the home view back to its first line.
func (h *homeView) ScrollToTop() {
	h.vp.GotoTop()
}

func (h *homeView) setSize(w, ht int) {
	h.vp.Width = max(w, 0)
	h.vp.Height = max(ht, 0)
}

func (h *homeView) scroll(delta int) {
	if delta < 0 {
		h.vp.ScrollUp(-delta)
	} else {
		h.vp.ScrollDown(delta)
	}
}

// setContent lays out the home page for the current language and theme and
// records where the call-to-action button landed.
func (h *homeView) setContent(doc *content.Document, lang locale.Lang, st theme.Styles) {
	width := max(h.vp.Width-4, 10)
	align := lipgloss.Left
	if lang.Dir() == locale.RTL {
		align = lipgloss.Right
	}
	block := func(s string) []string {
		s = lipgloss.PlaceHorizontal(h.vp.Width, align, s)
		return strings.Split(s, "\n")
	}

	var rows []string
	rows = append(rows, "")
	rows = append(rows, block(st.Headline.Render(doc.Home.Headline.In(lang)))...)
	rows = append(rows, block(st.Muted.Render(doc.Owner.Name+" · "+doc.Owner.Role.In(lang)))...)
	rows = append(rows, "")
	for _, l := range strings.Split(cellbuf.Wrap(doc.Home.Intro.In(lang), width, ""), "\n") {
		rows = append(rows, block(st.Body.Render(l))...)
	}
	rows = append(rows, "")

	cta := st.Button.Render(doc.Home.CTA.Label.In(lang))
	h.ctaLine = len(rows)
	h.ctaW = lipgloss.Width(cta)
	rows = append(rows, block(cta)...)

	h.vp.SetContent(strings.Join(rows, "\n"))
}

// ctaRect returns the CTA button position relative to the viewport, or
// false when it is scrolled out of view.
func (h *homeView) ctaRect(rtl bool) (x, y int, ok bool) {
	y = h.ctaLine - h.vp.YOffset
	if y < 0 || y >= h.vp.Height {
		return 0, 0, false
	}
	if rtl {
		x = max(h.vp.Width-h.ctaW, 0)
	}
	return x, y, true
}
