package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/cmdloop/internal/config"
	"github.com/sandevgo/cmdloop/internal/transport/tcpshell"
	"github.com/sandevgo/cmdloop/pkg/log"
	"github.com/sandevgo/cmdloop/pkg/srv"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:           "serve",
	Short:         "Serve shell sessions over TCP",
	Long:          `Listens for TCP connections and runs one interpreter session per connection until interrupted.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		if err := initEnv(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to init env")
		}

		cfg := config.NewAppConfig(ctx)
		if serveAddr != "" {
			cfg.ServeAddr = serveAddr
		}

		reg, err := buildRegistry(ctx, cfg)
		if err != nil {
			return err
		}

		server := tcpshell.NewServer(cfg.ServeAddr, cfg.Prompt, reg)
		services := []srv.Service{server}

		logger.Info().Msg("starting loopsh session server")
		srv.StartServices(ctx, services)

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("loopsh has been shut down gracefully")

		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides LOOPSH_SERVE_ADDR)")

	rootCmd.AddCommand(serveCmd)
}
