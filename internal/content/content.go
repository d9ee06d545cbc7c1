// Package content loads the portfolio document: owner, home view, navigation
// and panels, each string in English and Arabic.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marcus/folio/internal/locale"
	"github.com/marcus/folio/internal/nav"
	"github.com/marcus/folio/internal/registry"
	"github.com/marcus/folio/internal/skills"
)

//go:embed default.yaml
var defaultDocument []byte

// Text is a bilingual string.
type Text struct {
	En string `yaml:"en"`
	Ar string `yaml:"ar"`
}

// In returns the text for lang, falling back to English when the
// translation is missing.
func (t Text) In(lang locale.Lang) string {
	if lang == locale.Arabic && t.Ar != "" {
		return t.Ar
	}
	return t.En
}

// UnmarshalYAML accepts either a plain string (used for both languages) or
// an {en, ar} mapping.
func (t *Text) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		t.En = node.Value
		t.Ar = node.Value
		return nil
	}
	type plain Text
	return node.Decode((*plain)(t))
}

// Owner is the person the portfolio belongs to.
type Owner struct {
	Name string `yaml:"name"`
	Role Text   `yaml:"role"`
}

// CTA is the call-to-action on the home view.
type CTA struct {
	Label   Text   `yaml:"label"`
	Section string `yaml:"section"`
}

// Home is the page behind the panels.
type Home struct {
	Headline Text `yaml:"headline"`
	Intro    Text `yaml:"intro"`
	CTA      CTA  `yaml:"cta"`
}

// NavEntry is a navigation item.
type NavEntry struct {
	Section string `yaml:"section"`
	Label   Text   `yaml:"label"`
}

// Skill is one bar on a panel.
type Skill struct {
	ID    string `yaml:"id"`
	Label Text   `yaml:"label"`
	Level int    `yaml:"level"`
}

// Panel is an overlay section.
type Panel struct {
	ID     string  `yaml:"id"`
	Title  Text    `yaml:"title"`
	Body   Text    `yaml:"body"`
	Skills []Skill `yaml:"skills,omitempty"`
	Form   bool    `yaml:"form,omitempty"`
}

// Document is the whole portfolio.
type Document struct {
	Owner  Owner      `yaml:"owner"`
	Home   Home       `yaml:"home"`
	Nav    []NavEntry `yaml:"nav"`
	Panels []Panel    `yaml:"panels"`
}

// Default returns the built-in document.
func Default() (*Document, error) {
	return Parse(defaultDocument)
}

// Load reads a document from path; an empty path yields the built-in one.
func Load(path string) (*Document, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the cross references inside the document.
func (d *Document) Validate() error {
	var errs []error

	ids := make(map[string]bool, len(d.Panels))
	for i, p := range d.Panels {
		switch {
		case p.ID == "":
			errs = append(errs, fmt.Errorf("panel %d: missing id", i))
		case p.ID == nav.Home:
			errs = append(errs, fmt.Errorf("panel %d: id %q is reserved", i, nav.Home))
		case ids[p.ID]:
			errs = append(errs, fmt.Errorf("panel %q: duplicate id", p.ID))
		}
		ids[p.ID] = true

		for _, s := range p.Skills {
			if s.Level < 0 || s.Level > 100 {
				errs = append(errs, fmt.Errorf("panel %q: skill %q level %d outside 0-100", p.ID, s.ID, s.Level))
			}
		}
	}

	for i, e := range d.Nav {
		if e.Section != nav.Home && !ids[e.Section] {
			errs = append(errs, fmt.Errorf("nav %d: unknown section %q", i, e.Section))
		}
	}

	if s := d.Home.CTA.Section; s != "" && !ids[s] {
		errs = append(errs, fmt.Errorf("cta: unknown section %q", s))
	}

	return errors.Join(errs...)
}

// Panel returns the panel with id.
func (d *Document) Panel(id string) (Panel, bool) {
	for _, p := range d.Panels {
		if p.ID == id {
			return p, true
		}
	}
	return Panel{}, false
}

// Registry builds the overlay registry with titles in lang.
func (d *Document) Registry(lang locale.Lang) *registry.Registry {
	panels := make([]registry.Panel, 0, len(d.Panels))
	for _, p := range d.Panels {
		panels = append(panels, registry.Panel{ID: p.ID, Title: p.Title.In(lang)})
	}
	return registry.New(panels...)
}

// NavEntries builds the navigation entries with labels in lang.
func (d *Document) NavEntries(lang locale.Lang) []nav.Entry {
	out := make([]nav.Entry, 0, len(d.Nav))
	for _, e := range d.Nav {
		out = append(out, nav.Entry{Section: e.Section, Label: e.Label.In(lang)})
	}
	return out
}

// SkillBars returns the bars of the panel with id, labelled in lang.
func (d *Document) SkillBars(id string, lang locale.Lang) []skills.Bar {
	p, ok := d.Panel(id)
	if !ok {
		return nil
	}
	bars := make([]skills.Bar, 0, len(p.Skills))
	for _, s := range p.Skills {
		bars = append(bars, skills.Bar{ID: s.ID, Label: s.Label.In(lang), Level: s.Level})
	}
	return bars
}

// FormPanel returns the id of the panel that hosts the contact form.
func (d *Document) FormPanel() (string, bool) {
	for _, p := range d.Panels {
		if p.Form {
			return p.ID, true
		}
	}
	return "", false
}

// SkillsPanel returns the id of the first panel with skill bars.
func (d *Document) SkillsPanel() (string, bool) {
	for _, p := range d.Panels {
		if len(p.Skills) > 0 {
			return p.ID, true
		}
	}
	return "", false
}
