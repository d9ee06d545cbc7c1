package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/marcus/folio/internal/nav"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the navigation entries and panels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		lang := a.prefs.Language()
		inNav := make(map[string]int)
		for i, e := range a.doc.Nav {
			inNav[e.Section] = i + 1
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tID\tTITLE\tEXTRAS")
		if k, ok := inNav[nav.Home]; ok {
			fmt.Fprintf(w, "%d\t%s\t%s\t\n", k, nav.Home, a.doc.Home.Headline.In(lang))
		}
		for _, p := range a.doc.Panels {
			key := "-"
			if k, ok := inNav[p.ID]; ok {
				key = fmt.Sprint(k)
			}
			var extras []string
			if len(p.Skills) > 0 {
				extras = append(extras, fmt.Sprintf("%d skills", len(p.Skills)))
			}
			if p.Form {
				extras = append(extras, "form")
			}
			if p.ID == a.doc.Home.CTA.Section {
				extras = append(extras, "cta")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", key, p.ID, p.Title.In(lang), strings.Join(extras, ", "))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}
