package shellcmd

import (
	"fmt"
	"io"

	"github.com/sandevgo/cmdloop/internal/config"
	"github.com/sandevgo/cmdloop/internal/ui"
	"github.com/sandevgo/cmdloop/pkg/env"
	"github.com/sandevgo/cmdloop/pkg/interp"
)

type configDump struct {
	cfg *config.AppConfig
}

// NewConfigDump returns a handler printing the effective configuration as
// KEY=value lines, one per env-tagged field.
func NewConfigDump(cfg *config.AppConfig) interp.Handler {
	return &configDump{cfg: cfg}
}

func (c *configDump) Execute(out io.Writer, _ []string) interp.Signal {
	vars, err := env.Marshal(c.cfg)
	if err != nil {
		fmt.Fprintf(out, "config unavailable: %v\n", err)
		return interp.Continue
	}

	for _, v := range vars {
		fmt.Fprintf(out, "%s=%s\n", ui.CommandNameColor(v.Key), v.Value)
	}
	return interp.Continue
}

func (c *configDump) Description() string {
	return "print the effective configuration"
}
