package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cbcr-dev/cbcrgen/internal/config"
	"github.com/cbcr-dev/cbcrgen/internal/importer"
	"github.com/cbcr-dev/cbcrgen/internal/server"
)

func newServeCommand() *cobra.Command {
	var configPath string
	var listen string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the upload-and-convert web service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath, listen, verbose)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to cbcrgen.yaml (defaults apply when unset)")
	cmd.Flags().StringVar(&listen, "listen", "", "listen address override, e.g. :8080")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every request")

	return cmd
}

func runServe(configPath, listen string, verbose bool) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	if listen != "" {
		cfg.Server.Listen = listen
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	srv := server.New(cfg, importer.DefaultRegistry(), log)
	return srv.ListenAndServe()
}
