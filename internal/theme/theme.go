// Package theme defines the dark and light palettes.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a color scheme name.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Default is used when no theme preference is stored.
const Default = Dark

// Parse accepts "dark" or "light", case-insensitively.
func Parse(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case Dark, Light:
		return t, nil
	default:
		return "", fmt.Errorf("unknown theme %q (want dark or light)", s)
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Icon is the symbol on the theme switch: a sun while dark, a moon while light.
func (t Theme) Icon() string {
	if t == Dark {
		return "☀"
	}
	return "☾"
}

func (t Theme) String() string { return string(t) }

// Palette holds the colors of one theme.
type Palette struct {
	Fg      lipgloss.Color
	Bg      lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Border  lipgloss.Color
	Surface lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Overlay lipgloss.Color
}

var palettes = map[Theme]Palette{
	Dark: {
		Fg:      lipgloss.Color("252"),
		Bg:      lipgloss.Color("234"),
		Muted:   lipgloss.Color("241"),
		Accent:  lipgloss.Color("212"),
		Border:  lipgloss.Color("240"),
		Surface: lipgloss.Color("235"),
		Success: lipgloss.Color("42"),
		Error:   lipgloss.Color("196"),
		Overlay: lipgloss.Color("237"),
	},
	Light: {
		Fg:      lipgloss.Color("235"),
		Bg:      lipgloss.Color("255"),
		Muted:   lipgloss.Color("245"),
		Accent:  lipgloss.Color("162"),
		Border:  lipgloss.Color("250"),
		Surface: lipgloss.Color("254"),
		Success: lipgloss.Color("28"),
		Error:   lipgloss.Color("160"),
		Overlay: lipgloss.Color("252"),
	},
}

// Palette returns the colors for t; unknown themes get the default palette.
func (t Theme) Palette() Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[Default]
}

// Styles are the lipgloss styles derived from a palette.
type Styles struct {
	Brand        lipgloss.Style
	NavItem      lipgloss.Style
	NavActive    lipgloss.Style
	Toggle       lipgloss.Style
	Headline     lipgloss.Style
	Body         lipgloss.Style
	Muted        lipgloss.Style
	Button       lipgloss.Style
	PanelFrame   lipgloss.Style
	PanelTitle   lipgloss.Style
	CloseButton  lipgloss.Style
	FieldLabel   lipgloss.Style
	FieldFocused lipgloss.Style
	Success      lipgloss.Style
	Error        lipgloss.Style
	Overlay      lipgloss.Style
}

// Styles builds the style set for t.
func (t Theme) Styles() Styles {
	p := t.Palette()
	return Styles{
		Brand:     lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		NavItem:   lipgloss.NewStyle().Foreground(p.Fg).Padding(0, 1),
		NavActive: lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Underline(true).Padding(0, 1),
		Toggle:    lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
		Headline:  lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Body:      lipgloss.NewStyle().Foreground(p.Fg),
		Muted:     lipgloss.NewStyle().Foreground(p.Muted),
		Button: lipgloss.NewStyle().
			Foreground(p.Bg).
			Background(p.Accent).
			Bold(true).
			Padding(0, 2),
		PanelFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Background(p.Surface).
			Padding(0, 2),
		PanelTitle:   lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		CloseButton:  lipgloss.NewStyle().Foreground(p.Muted),
		FieldLabel:   lipgloss.NewStyle().Foreground(p.Muted),
		FieldFocused: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Success:      lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		Error:        lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		Overlay:      lipgloss.NewStyle().Foreground(p.Overlay).Faint(true),
	}
}

// MarkdownStyle names the glamour standard style matching t.
func (t Theme) MarkdownStyle() string {
	if t == Light {
		return "light"
	}
	return "dark"
}
