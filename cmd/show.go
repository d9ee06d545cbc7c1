package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/folio/internal/registry"
	"github.com/marcus/folio/pkg/page"
)

const defaultShowWidth = 80

var showCmd = &cobra.Command{
	Use:   "show <query>",
	Short: "Print a panel",
	Long: `Print a panel rendered as markdown. The query matches a panel id exactly or
fuzzily against ids and titles.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		lang := a.prefs.Language()
		query := strings.Join(args, " ")
		reg := a.doc.Registry(lang)
		found, err := reg.Get(query)
		if errors.Is(err, registry.ErrNotFound) {
			var ok bool
			if found, ok = reg.Find(query); !ok {
				return fmt.Errorf("no panel matches %q", query)
			}
		}
		p, _ := a.doc.Panel(found.ID)
		md := page.PanelMarkdown(p, lang)

		plain, _ := cmd.Flags().GetBool("plain")
		fd := int(os.Stdout.Fd())
		if plain || !term.IsTerminal(fd) {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		width := defaultShowWidth
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = min(w, 120)
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(a.prefs.Theme().MarkdownStyle()),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return fmt.Errorf("markdown renderer: %w", err)
		}
		out, err := renderer.Render(md)
		if err != nil {
			return fmt.Errorf("render %s: %w", p.ID, err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("plain", false, "print markdown without rendering")
	rootCmd.AddCommand(showCmd)
}
