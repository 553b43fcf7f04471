package main

import (
	"github.com/spf13/cobra"

	"navigator/internal/app/repository"
)

type cliOptions struct {
	catalogPath string
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:           "navigator",
		Short:         "BBW Lizenz-Navigator: tool catalog, access matrix and license reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "directory with tools.yaml, roles.yaml and procurement.yaml (default: built-in catalog)")

	root.AddCommand(
		newServeCmd(opts),
		newExportCmd(opts),
		newCheckCmd(opts),
	)
	return root
}

func (o *cliOptions) loadRepository() (*repository.Repository, error) {
	if o.catalogPath != "" {
		return repository.NewFromDir(o.catalogPath)
	}
	return repository.New()
}
