package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/folio/internal/contact"
	"github.com/marcus/folio/internal/locale"
	"github.com/marcus/folio/internal/theme"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Fill in the contact form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("contact needs an interactive terminal")
		}

		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		cat := locale.NewCatalog()
		lang := a.prefs.Language()
		var f contact.Fields

		// Re-run the form until it validates; values entered so far are kept.
		for {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title(cat.Text(lang, locale.MsgName)).Value(&f.Name),
				huh.NewInput().Title(cat.Text(lang, locale.MsgEmail)).Placeholder("you@example.com").Value(&f.Email),
				huh.NewText().Title(cat.Text(lang, locale.MsgMessage)).Value(&f.Message),
			))
			if a.prefs.Theme() == theme.Light {
				form = form.WithTheme(huh.ThemeBase())
			}
			if err := form.Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return fmt.Errorf("contact form: %w", err)
			}

			err := contact.Validate(f)
			msg := cat.Text(lang, contact.MessageID(err))
			if err != nil {
				a.log.Info("contact form rejected", "err", err)
				fmt.Fprintln(cmd.ErrOrStderr(), msg)
				continue
			}
			a.log.Info("contact form accepted", "source", "cli")
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(contactCmd)
}
