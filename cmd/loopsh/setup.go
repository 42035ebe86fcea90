package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/cmdloop/internal/config"
	"github.com/sandevgo/cmdloop/internal/macros"
	"github.com/sandevgo/cmdloop/internal/shellcmd"
	"github.com/sandevgo/cmdloop/pkg/interp"
	"github.com/sandevgo/cmdloop/pkg/log"
)

// initEnv loads the runtime .env file when present, so it can feed the
// AppConfig parse that follows.
func initEnv(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(config.GetRuntimePath(), ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}

// buildRegistry assembles the shared command set: shell commands plus the
// macros defined in the runtime directory.
func buildRegistry(ctx context.Context, cfg *config.AppConfig) (*interp.Registry, error) {
	reg := interp.NewRegistry()

	if err := shellcmd.RegisterAll(reg, cfg); err != nil {
		return nil, err
	}

	defs, err := macros.Load(cfg.GetMacroPath())
	if err != nil {
		return nil, err
	}
	if err := macros.RegisterAll(reg, defs); err != nil {
		return nil, err
	}

	if len(defs) > 0 {
		log.FromCtx(ctx).Info().Int("count", len(defs)).Msg("macros registered")
	}

	return reg, nil
}
