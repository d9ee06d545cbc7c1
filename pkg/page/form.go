package page

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/folio/internal/contact"
	"github.com/marcus/folio/internal/locale"
	"github.com/marcus/folio/internal/theme"
)

// Form field indexes in tab order.
const (
	fieldName = iota
	fieldEmail
	fieldMessage
	fieldCount
)

// contactForm is the form on the contact panel.
type contactForm struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model

	labels  [fieldCount]string
	send    string
	focus   int
	focused bool
	pending tea.Cmd
}

func newContactForm() *contactForm {
	name := textinput.New()
	name.Prompt = ""
	name.CharLimit = 100

	email := textinput.New()
	email.Prompt = ""
	email.CharLimit = 254

	msg := textarea.New()
	msg.ShowLineNumbers = false
	msg.Prompt = ""
	msg.CharLimit = 2000
	msg.SetHeight(4)

	return &contactForm{name: name, email: email, message: msg}
}

// setLabels localizes the field labels and placeholders.
func (f *contactForm) setLabels(cat *locale.Catalog, lang locale.Lang) {
	f.labels = [fieldCount]string{
		cat.Text(lang, locale.MsgName),
		cat.Text(lang, locale.MsgEmail),
		cat.Text(lang, locale.MsgMessage),
	}
	f.send = cat.Text(lang, locale.MsgSend)
	f.name.Placeholder = f.labels[fieldName]
	f.email.Placeholder = "you@example.com"
	f.message.Placeholder = f.labels[fieldMessage]
}

func (f *contactForm) setWidth(w int) {
	w = max(w, 10)
	f.name.Width = w
	f.email.Width = w
	f.message.SetWidth(w)
}

// focusField moves keyboard focus to field i.
func (f *contactForm) focusField(i int) {
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	f.focus = (i%fieldCount + fieldCount) % fieldCount
	f.focused = true
	switch f.focus {
	case fieldName:
		f.pending = f.name.Focus()
	case fieldEmail:
		f.pending = f.email.Focus()
	case fieldMessage:
		f.pending = f.message.Focus()
	}
}

func (f *contactForm) next() { f.focusField(f.focus + 1) }
func (f *contactForm) prev() { f.focusField(f.focus - 1) }

func (f *contactForm) blur() {
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	f.focused = false
}

// cmd returns the command queued by the last focus change.
func (f *contactForm) cmd() tea.Cmd {
	c := f.pending
	f.pending = nil
	return c
}

// update forwards msg to the focused field.
func (f *contactForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	case fieldMessage:
		f.message, cmd = f.message.Update(msg)
	}
	return cmd
}

func (f *contactForm) fields() contact.Fields {
	return contact.Fields{
		Name:    f.name.Value(),
		Email:   f.email.Value(),
		Message: f.message.Value(),
	}
}

func (f *contactForm) setFields(v contact.Fields) {
	f.name.SetValue(v.Name)
	f.email.SetValue(v.Email)
	f.message.SetValue(v.Message)
}

// reset clears every field and puts focus back on the first one.
func (f *contactForm) reset() {
	f.name.Reset()
	f.email.Reset()
	f.message.Reset()
	if f.focused {
		f.focusField(fieldName)
	}
}

// span is a half-open range of rows.
type span struct{ start, end int }

// view renders the form. It returns the row of the send button and the rows
// of each field so the caller can register click targets.
func (f *contactForm) view(st theme.Styles) (string, int, [fieldCount]span) {
	var rows []string
	var spans [fieldCount]span
	inputs := [fieldCount]string{f.name.View(), f.email.View(), f.message.View()}

	for i := range fieldCount {
		label := st.FieldLabel.Render(f.labels[i])
		if f.focused && f.focus == i {
			label = st.FieldFocused.Render("▸ " + f.labels[i])
		}
		rows = append(rows, label)
		start := len(rows)
		rows = append(rows, strings.Split(inputs[i], "\n")...)
		spans[i] = span{start, len(rows)}
		rows = append(rows, "")
	}
	send := len(rows)
	rows = append(rows, st.Button.Render(f.send))
	return strings.Join(rows, "\n"), send, spans
}

// submitForm validates the form and shows the outcome. A valid form is
// cleared; an invalid one keeps what the visitor typed.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	lang := m.prefs.Language()
	fields := m.form.fields()

	err := contact.Validate(fields)
	text := m.catalog.Text(lang, contact.MessageID(err))

	var fb contact.Feedback
	if err != nil {
		fb = m.board.Show(contact.KindError, text)
		m.log.Info("contact form rejected", "err", err)
	} else {
		fb = m.board.Show(contact.KindSuccess, text)
		m.form.reset()
		m.log.Info("contact form accepted", "email", strings.TrimSpace(fields.Email))
	}
	return m, tea.Batch(expireAfter(m.feedbackDelay, fb.Seq), m.form.cmd())
}
