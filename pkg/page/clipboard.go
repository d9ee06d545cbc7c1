package page

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/folio/internal/contact"
	"github.com/marcus/folio/internal/content"
	"github.com/marcus/folio/internal/locale"
)

// copyToClipboard copies text to the system clipboard.
// Uses pbcopy on macOS, xclip or xsel on Linux, clip.exe on Windows.
func copyToClipboard(text string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else if _, err := exec.LookPath("xsel"); err == nil {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		} else {
			return fmt.Errorf("no clipboard tool found (install xclip or xsel)")
		}
	case "windows":
		cmd = exec.Command("clip.exe")
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", cmd.Path, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// PanelMarkdown formats a panel as markdown in lang.
func PanelMarkdown(p content.Panel, lang locale.Lang) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n", p.Title.In(lang))
	if body := strings.TrimSpace(p.Body.In(lang)); body != "" {
		sb.WriteString("\n")
		sb.WriteString(body)
		sb.WriteString("\n")
	}

	if len(p.Skills) > 0 {
		sb.WriteString("\n")
		for _, s := range p.Skills {
			fmt.Fprintf(&sb, "- %s: %d%%\n", s.Label.In(lang), s.Level)
		}
	}
	return sb.String()
}

// copyPanel copies the open panel as markdown.
func (m Model) copyPanel() (tea.Model, tea.Cmd) {
	id, open := m.ctrl.Current()
	if !open {
		return m, nil
	}
	p, ok := m.doc.Panel(id)
	if !ok {
		return m, nil
	}

	lang := m.prefs.Language()
	copyFn := m.ClipboardFn
	if copyFn == nil {
		copyFn = copyToClipboard
	}

	var fb contact.Feedback
	if err := copyFn(PanelMarkdown(p, lang)); err != nil {
		m.log.Warn("copy failed", "panel", id, "err", err)
		fb = m.board.Show(contact.KindError, err.Error())
	} else {
		fb = m.board.Show(contact.KindSuccess, m.catalog.Text(lang, locale.MsgCopied))
	}
	return m, expireAfter(m.feedbackDelay, fb.Seq)
}
