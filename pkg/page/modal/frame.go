package modal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Frame describes a panel to render.
type Frame struct {
	Title string
	Body  string // pre-wrapped to the inner width
	Close string // close button label, "×" when empty

	Width     int // outer width in cells
	MaxHeight int // outer height limit; 0 means unlimited
	Scroll    int // first body line shown
	RTL       bool

	Style      lipgloss.Style // border and padding
	TitleStyle lipgloss.Style
	CloseStyle lipgloss.Style
}

// Layout is a rendered frame with the offsets of its parts, relative to the
// frame's top-left cell.
type Layout struct {
	View          string
	Width, Height int

	CloseX, CloseY, CloseW int
	BodyX, BodyY           int
	BodyLines              int // visible body rows
	MaxScroll              int
}

// InnerWidth is the width left for content inside the frame's border and
// padding.
func (f Frame) InnerWidth() int {
	return max(f.Width-f.Style.GetHorizontalFrameSize(), 1)
}

// Render draws the frame.
func (f Frame) Render() Layout {
	inner := f.InnerWidth()
	closeLabel := f.Close
	if closeLabel == "" {
		closeLabel = "×"
	}
	closeView := f.CloseStyle.Render(closeLabel)
	closeW := ansi.StringWidth(closeView)

	title := ansi.Truncate(f.TitleStyle.Render(f.Title), max(inner-closeW-1, 0), "…")
	gap := max(inner-ansi.StringWidth(title)-closeW, 1)
	var header string
	closeCol := 0
	if f.RTL {
		header = closeView + strings.Repeat(" ", gap) + title
	} else {
		header = title + strings.Repeat(" ", gap) + closeView
		closeCol = ansi.StringWidth(title) + gap
	}

	body := splitLines(f.Body)
	for i, l := range body {
		body[i] = ansi.Truncate(l, inner, "")
		if f.RTL {
			body[i] = lipgloss.PlaceHorizontal(inner, lipgloss.Right, body[i])
		}
	}

	// header plus a blank separator row
	const headerRows = 2
	visible := len(body)
	if f.MaxHeight > 0 {
		avail := f.MaxHeight - f.Style.GetVerticalFrameSize() - headerRows
		visible = min(visible, max(avail, 1))
	}
	maxScroll := len(body) - visible
	scroll := min(max(f.Scroll, 0), maxScroll)

	rows := append([]string{header, ""}, body[scroll:scroll+visible]...)
	view := f.Style.Width(f.Width - f.Style.GetHorizontalBorderSize()).Render(strings.Join(rows, "\n"))

	top := f.Style.GetBorderTopSize() + f.Style.GetPaddingTop()
	left := f.Style.GetBorderLeftSize() + f.Style.GetPaddingLeft()
	return Layout{
		View:      view,
		Width:     lipgloss.Width(view),
		Height:    lipgloss.Height(view),
		CloseX:    left + closeCol,
		CloseY:    top,
		CloseW:    closeW,
		BodyX:     left,
		BodyY:     top + headerRows,
		BodyLines: visible,
		MaxScroll: maxScroll,
	}
}
