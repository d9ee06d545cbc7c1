package page

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/cellbuf"
)

// markdownCache keeps rendered panel bodies. Rendering is expensive, so a
// body is rendered once per language, style and width.
type markdownCache struct {
	entries map[string]string
}

func newMarkdownCache() *markdownCache {
	return &markdownCache{entries: make(map[string]string)}
}

func (c *markdownCache) reset() {
	clear(c.entries)
}

func (c *markdownCache) render(id, lang, style, body string, width int) string {
	key := fmt.Sprintf("%s|%s|%s|%d", id, lang, style, width)
	if s, ok := c.entries[key]; ok {
		return s
	}
	s := renderMarkdown(body, style, width)
	c.entries[key] = s
	return s
}

// renderMarkdown renders body with the glamour style, falling back to plain
// wrapped text.
func renderMarkdown(body, style string, width int) string {
	if body == "" {
		return ""
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return cellbuf.Wrap(body, width, "")
	}
	out, err := renderer.Render(body)
	if err != nil {
		return cellbuf.Wrap(body, width, "")
	}
	// Glamour pads with blank lines at both ends
	return strings.Trim(out, "\n")
}
