package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"navigator/internal/app/ds"
	"navigator/internal/app/filter"
)

func newCheckCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load and validate the catalog and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := opts.loadRepository()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tools := repo.Tools()
			st := filter.CatalogStats(tools)
			fmt.Fprintf(out, "Tools: %d (KI: %d, Lernende: %d, Lehrpersonen: %d)\n", st.Total, st.WithAI, st.ForStudents, st.ForTeachers)
			fmt.Fprintf(out, "Rollen: %d, Systembereiche: %d, Regeln: %d, Prozesse: %d, Abklärungen: %d\n",
				len(repo.Roles()), len(repo.SystemCategories()), len(repo.PolicyRules()), len(repo.Processes()), len(repo.ProcurementFlows()))

			writeCategories(out, tools)
			return nil
		},
	}
}

// writeCategories prints the tool count per license category and lists
// tools whose license does not map to a known category.
func writeCategories(out io.Writer, tools []ds.Tool) {
	counts := make(map[filter.LicenseCategory]int)
	var unclassified []ds.Tool
	for _, t := range tools {
		c := filter.ClassifyLicense(t.License)
		if !c.Known() {
			unclassified = append(unclassified, t)
			continue
		}
		counts[c]++
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, c := range filter.LicenseCategories() {
		fmt.Fprintf(tw, "  %s\t%d\n", c, counts[c])
	}
	_ = tw.Flush()

	for _, t := range unclassified {
		fmt.Fprintf(out, "Hinweis: %s (%s) hat keine bekannte Lizenzart: %q\n", t.Name, t.ID, t.License)
	}
}
