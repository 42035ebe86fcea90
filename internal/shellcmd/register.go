package shellcmd

import (
	"fmt"

	"github.com/sandevgo/cmdloop/internal/config"
	"github.com/sandevgo/cmdloop/pkg/interp"
	"github.com/sandevgo/cmdloop/pkg/interp/builtin"
)

// RegisterAll installs the demo shell's command set on reg. The quit
// handler is shared between the "quit" and "exit" names.
func RegisterAll(reg *interp.Registry, cfg *config.AppConfig) error {
	quit := builtin.NewQuit(cfg.Farewell)

	cmds := []struct {
		name string
		h    interp.Handler
	}{
		{"help", NewHelpTable(reg)},
		{"quit", quit},
		{"exit", quit},
		{"touch", builtin.Touch{}},
		{"config", NewConfigDump(cfg)},
	}

	for _, c := range cmds {
		if err := reg.Register(c.name, c.h); err != nil {
			return fmt.Errorf("register %s: %w", c.name, err)
		}
	}

	if err := reg.RegisterFunc("echo", Echo); err != nil {
		return fmt.Errorf("register echo: %w", err)
	}

	return nil
}
