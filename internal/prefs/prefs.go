// Package prefs persists the theme and language choices.
package prefs

import (
	"io"
	"log/slog"

	"github.com/marcus/folio/internal/locale"
	"github.com/marcus/folio/internal/theme"
)

// Keys of the stored preferences.
const (
	KeyTheme    = "theme"
	KeyLanguage = "language"
)

// Store is a key-value preference store.
type Store interface {
	GetSetting(key string) (string, bool, error)
	SetSetting(key, value string) error
}

// Prefs is the typed view over a Store. Store failures are logged and the
// in-memory value still changes, so the page keeps working without a disk.
type Prefs struct {
	store Store
	log   *slog.Logger

	theme theme.Theme
	lang  locale.Lang

	onChange []func(Prefs)
}

// Load reads the saved preferences, falling back to defaults for missing or
// invalid values.
func Load(store Store, log *slog.Logger) *Prefs {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p := &Prefs{store: store, log: log, theme: theme.Default, lang: locale.Default}

	if v, ok := p.get(KeyTheme); ok {
		if t, err := theme.Parse(v); err == nil {
			p.theme = t
		} else {
			log.Warn("ignoring stored theme", "value", v, "err", err)
		}
	}
	if v, ok := p.get(KeyLanguage); ok {
		if l, err := locale.Parse(v); err == nil {
			p.lang = l
		} else {
			log.Warn("ignoring stored language", "value", v, "err", err)
		}
	}
	return p
}

// OnChange registers fn to run after any preference changes.
func (p *Prefs) OnChange(fn func(Prefs)) {
	p.onChange = append(p.onChange, fn)
}

// Theme returns the current theme.
func (p *Prefs) Theme() theme.Theme { return p.theme }

// Language returns the current language.
func (p *Prefs) Language() locale.Lang { return p.lang }

// Direction returns the text direction of the current language.
func (p *Prefs) Direction() locale.Direction { return p.lang.Dir() }

// SetTheme changes and saves the theme.
func (p *Prefs) SetTheme(t theme.Theme) {
	p.theme = t
	p.set(KeyTheme, string(t))
	p.changed()
}

// SetLanguage changes and saves the language.
func (p *Prefs) SetLanguage(l locale.Lang) {
	p.lang = l
	p.set(KeyLanguage, string(l))
	p.changed()
}

// ToggleTheme flips between dark and light.
func (p *Prefs) ToggleTheme() {
	p.SetTheme(p.theme.Toggle())
}

// ToggleLanguage flips between English and Arabic.
func (p *Prefs) ToggleLanguage() {
	p.SetLanguage(p.lang.Toggle())
}

func (p *Prefs) get(key string) (string, bool) {
	if p.store == nil {
		return "", false
	}
	v, ok, err := p.store.GetSetting(key)
	if err != nil {
		p.log.Error("read preference", "key", key, "err", err)
		return "", false
	}
	return v, ok
}

func (p *Prefs) set(key, value string) {
	if p.store == nil {
		return
	}
	if err := p.store.SetSetting(key, value); err != nil {
		p.log.Error("save preference", "key", key, "err", err)
	}
}

func (p *Prefs) changed() {
	for _, fn := range p.onChange {
		fn(*p)
	}
}
