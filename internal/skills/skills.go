// Package skills animates the skill bars of the skills panel.
package skills

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Bar is one skill with its target fill level in percent.
type Bar struct {
	ID    string
	Label string
	Level int
}

// Animator drives one progress bar per skill. Bars start empty and are
// animated to their level by Reveal; revealing again is harmless.
type Animator struct {
	bars     []Bar
	models   []progress.Model
	pending  []tea.Cmd
	reveals  int
	revealed bool
}

// New creates an animator for bars with the given bar width in cells.
func New(bars []Bar, width int) *Animator {
	a := &Animator{bars: append([]Bar(nil), bars...)}
	for range a.bars {
		a.models = append(a.models, newModel(width))
	}
	return a
}

func newModel(width int) progress.Model {
	m := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	if width > 0 {
		m.Width = width
	}
	return m
}

// Reveal starts animating every bar to its target level. The resulting
// commands are collected and handed out by Cmd.
func (a *Animator) Reveal() {
	a.reveals++
	a.revealed = true
	for i, b := range a.bars {
		a.pending = append(a.pending, a.models[i].SetPercent(Fraction(b.Level)))
	}
}

// Cmd returns the commands queued by Reveal and clears the queue.
func (a *Animator) Cmd() tea.Cmd {
	if len(a.pending) == 0 {
		return nil
	}
	cmds := a.pending
	a.pending = nil
	return tea.Batch(cmds...)
}

// Update forwards animation frames to the bars.
func (a *Animator) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(progress.FrameMsg); !ok {
		return nil
	}
	var cmds []tea.Cmd
	for i := range a.models {
		m, cmd := a.models[i].Update(msg)
		if pm, ok := m.(progress.Model); ok {
			a.models[i] = pm
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// SetWidth resizes every bar.
func (a *Animator) SetWidth(width int) {
	if width <= 0 {
		return
	}
	for i := range a.models {
		a.models[i].Width = width
	}
}

// View renders bar i at its current animated fill.
func (a *Animator) View(i int) string {
	if i < 0 || i >= len(a.models) {
		return ""
	}
	return a.models[i].View()
}

// Target returns the fill fraction bar i is heading to: its level once
// revealed, zero before.
func (a *Animator) Target(i int) float64 {
	if i < 0 || i >= len(a.bars) || !a.revealed {
		return 0
	}
	return Fraction(a.bars[i].Level)
}

// Reveals returns how many times Reveal ran.
func (a *Animator) Reveals() int {
	return a.reveals
}

// Fraction converts a percent level to a 0..1 fill, clamping out-of-range input.
func Fraction(level int) float64 {
	switch {
	case level < 0:
		return 0
	case level > 100:
		return 1
	default:
		return float64(level) / 100
	}
}
