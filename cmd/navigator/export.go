package main

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"navigator/internal/app/export"
	"navigator/internal/app/filter"
)

type exportOptions struct {
	output   string
	search   string
	license  string
	ai       string
	students bool
	teachers bool
	toolType string
}

func (o exportOptions) values() url.Values {
	v := url.Values{}
	v.Set(filter.ParamSearch, o.search)
	v.Set(filter.ParamLicense, o.license)
	v.Set(filter.ParamAI, o.ai)
	v.Set(filter.ParamToolType, o.toolType)
	if o.students {
		v.Set(filter.ParamStudents, "true")
	}
	if o.teachers {
		v.Set(filter.ParamTeachers, "true")
	}
	return v
}

func newExportCmd(opts *cliOptions) *cobra.Command {
	eo := exportOptions{output: export.Filename}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered license overview as PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := filter.Decode(eo.values())
			if err != nil {
				return err
			}
			repo, err := opts.loadRepository()
			if err != nil {
				return err
			}

			tools := filter.Apply(repo.Tools(), state)
			f, err := os.Create(eo.output)
			if err != nil {
				return fmt.Errorf("create %s: %w", eo.output, err)
			}
			defer f.Close()

			report := export.Report{Tools: tools, Caption: state.Caption(), Date: time.Now()}
			if err := export.Render(f, report); err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("write %s: %w", eo.output, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d Tool(s) exportiert nach %s\n", len(tools), eo.output)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&eo.output, "output", "o", eo.output, "output file")
	flags.StringVarP(&eo.search, "query", "q", "", "search text")
	flags.StringVar(&eo.license, "lizenz", "", "license category")
	flags.StringVar(&eo.ai, "ki", "", "true: only tools with AI, false: only tools without AI")
	flags.BoolVar(&eo.students, "lernende", false, "only tools for students")
	flags.BoolVar(&eo.teachers, "lp", false, "only tools for teachers")
	flags.StringVar(&eo.toolType, "typ", "", "tool type tag")
	return cmd
}
