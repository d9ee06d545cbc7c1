package cmd

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/marcus/folio/internal/locale"
	"github.com/marcus/folio/internal/prefs"
	"github.com/marcus/folio/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light]",
	Short:     "Show or set the color theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(theme.Dark), string(theme.Light)},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), a.prefs.Theme())
			return nil
		}

		t, err := theme.Parse(args[0])
		if err != nil {
			return err
		}
		if err := a.requireDB(); err != nil {
			return err
		}
		if err := a.db.SetSetting(prefs.KeyTheme, t.String()); err != nil {
			return fmt.Errorf("save theme: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "theme set to %s\n", t)
		return nil
	},
}

var langCmd = &cobra.Command{
	Use:       "lang [en|ar]",
	Short:     "Show or set the page language",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(locale.English), string(locale.Arabic)},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if len(args) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", a.prefs.Language(), a.prefs.Direction())
			return nil
		}

		l, err := locale.Parse(args[0])
		if err != nil {
			return err
		}
		if err := a.requireDB(); err != nil {
			return err
		}
		if err := a.db.SetSetting(prefs.KeyLanguage, l.String()); err != nil {
			return fmt.Errorf("save language: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "language set to %s (%s)\n", l, l.Dir())
		return nil
	},
}

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "List saved preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.requireDB(); err != nil {
			return err
		}

		saved, err := a.db.Settings()
		if err != nil {
			return fmt.Errorf("read preferences: %w", err)
		}
		if len(saved) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no saved preferences")
			return nil
		}
		keys := make([]string, 0, len(saved))
		for k := range saved {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tVALUE")
		for _, k := range keys {
			fmt.Fprintf(w, "%s\t%s\n", k, saved[k])
		}
		return w.Flush()
	},
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved theme and language",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.requireDB(); err != nil {
			return err
		}

		for _, key := range []string{prefs.KeyTheme, prefs.KeyLanguage} {
			if err := a.db.DeleteSetting(key); err != nil {
				return fmt.Errorf("reset %s: %w", key, err)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), "preferences reset")
		return nil
	},
}

func init() {
	prefsCmd.AddCommand(prefsResetCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(langCmd)
	rootCmd.AddCommand(prefsCmd)
}
