package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/cmdloop/pkg/log"
)

type AppConfig struct {
	// Interpreter surface
	Prompt   string `env:"LOOPSH_PROMPT" envDefault:"(cmd) "`
	Farewell string `env:"LOOPSH_FAREWELL" envDefault:"Bye!"`

	// Macro definitions loaded at startup, relative to the runtime path
	// unless absolute
	MacroFile string `env:"LOOPSH_MACRO_FILE" envDefault:"macros.yaml"`

	// Socket sessions
	ServeAddr string `env:"LOOPSH_SERVE_ADDR" envDefault:"127.0.0.1:7333"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetMacroPath() string {
	if filepath.IsAbs(c.MacroFile) {
		return c.MacroFile
	}
	return filepath.Join(GetRuntimePath(), c.MacroFile)
}

func (c AppConfig) GetHistoryPath() string {
	return filepath.Join(GetRuntimePath(), "history")
}
