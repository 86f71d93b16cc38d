package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/streamui/internal/config"
	"github.com/alexisbeaulieu97/streamui/internal/logger"
	"github.com/alexisbeaulieu97/streamui/internal/server"
)

type serveOptions struct {
	ConfigPath  string
	Address     string
	HostKeyPath string
}

var serveRunner = runServe

func newServeCmd(root *rootFlags) *cobra.Command {
	opts := serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the widget gallery over SSH",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if opts.ConfigPath != "" {
				parsed, err := config.ParseConfig(opts.ConfigPath)
				if err != nil {
					return err
				}
				cfg = parsed
			}

			flags := cmd.Flags()
			if flags.Changed("address") {
				cfg.Serve.Address = opts.Address
			}
			if flags.Changed("host-key") {
				cfg.Serve.HostKeyPath = opts.HostKeyPath
			}
			if err := config.ValidateConfig(cfg); err != nil {
				return err
			}

			return serveRunner(cmd.Context(), cfg, root.log)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a UI configuration file")
	cmd.Flags().StringVar(&opts.Address, "address", config.DefaultServeAddress, "Listen address (host:port)")
	cmd.Flags().StringVar(&opts.HostKeyPath, "host-key", config.DefaultHostKeyPath, "Path to the SSH host key, created when missing")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	srv, err := server.New(cfg, log)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
