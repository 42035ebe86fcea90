package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/sandevgo/cmdloop/internal/config"
	"github.com/sandevgo/cmdloop/internal/transport/cli"
	"github.com/sandevgo/cmdloop/pkg/interp"
	"github.com/sandevgo/cmdloop/pkg/log"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:           "run",
	Short:         "Run a shell session on stdin/stdout",
	Long:          `Starts the interpreter on the current terminal. Interactive terminals get line editing and history; piped input is read line by line until end-of-input.`,
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

		reg, err := buildRegistry(ctx, cfg)
		if err != nil {
			return err
		}

		if isatty.IsTerminal(os.Stdin.Fd()) {
			return runInteractive(ctx, cfg, reg)
		}
		return runPiped(ctx, cfg, reg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runInteractive reads through readline. The prompt belongs to readline,
// so the interpreter's own prompt is disabled, and output goes through
// readline's stdout so prompt repaints stay intact.
func runInteractive(ctx context.Context, cfg *config.AppConfig, reg *interp.Registry) error {
	logger := log.FromCtx(ctx)

	rl, err := cli.NewReadLine(cfg)
	if err != nil {
		return fmt.Errorf("open readline: %w", err)
	}
	defer rl.Close()

	logger.Info().Msg("interactive session started")

	i := interp.NewFromSource(rl, rl.Stdout(),
		interp.WithRegistry(reg),
		interp.WithPrompt(""),
		interp.WithLogger(*logger),
	)

	if err := i.Run(); err != nil {
		return err
	}
	logger.Info().Msg("session closed")
	return nil
}

// runPiped reads stdin straight through, writing the configured prompt
// before each line the way the interpreter does for any plain sink.
func runPiped(ctx context.Context, cfg *config.AppConfig, reg *interp.Registry) error {
	logger := log.FromCtx(ctx)

	i := interp.New(os.Stdin, os.Stdout,
		interp.WithRegistry(reg),
		interp.WithPrompt(cfg.Prompt),
		interp.WithLogger(*logger),
	)

	if err := i.Run(); err != nil {
		return err
	}
	logger.Debug().Msg("input drained")
	return nil
}
