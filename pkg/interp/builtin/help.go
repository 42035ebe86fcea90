package builtin

import (
	"fmt"
	"io"

	"github.com/sandevgo/cmdloop/pkg/interp"
)

// Help lists the commands registered in a registry, one per line, with the
// description of every handler that provides one. The listing reflects the
// registry at execution time, so commands registered after Help still show
// up.
type Help struct {
	reg *interp.Registry
}

// NewHelp returns a Help handler reading from reg.
func NewHelp(reg *interp.Registry) *Help {
	return &Help{reg: reg}
}

func (h *Help) Execute(out io.Writer, _ []string) interp.Signal {
	fmt.Fprintln(out, "Available commands:")

	if h.reg == nil {
		return interp.Continue
	}

	for _, name := range h.reg.Commands() {
		handler, ok := h.reg.Lookup(name)
		if !ok {
			continue
		}

		if d, ok := handler.(interp.Describer); ok {
			fmt.Fprintf(out, "  %-12s %s\n", name, d.Description())
			continue
		}

		fmt.Fprintf(out, "  %s\n", name)
	}

	return interp.Continue
}

func (h *Help) Description() string {
	return "list available commands"
}
