package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"navigator/internal/api"
	"navigator/internal/app/config"
)

func newServeCmd(opts *cliOptions) *cobra.Command {
	var release bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			if err := cfg.SetupLogger(); err != nil {
				return err
			}
			if opts.catalogPath != "" {
				cfg.Catalog.Path = opts.catalogPath
			}
			if release {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return api.StartServer(ctx, cfg)
		},
	}
	cmd.Flags().BoolVar(&release, "release", false, "run gin in release mode")
	return cmd
}
