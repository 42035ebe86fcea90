package macros

import (
	"fmt"
	"io"

	"github.com/sandevgo/cmdloop/pkg/interp"
)

// describedFunc pairs a function handler with a fixed description so
// macros show up in registry-derived help listings.
type describedFunc struct {
	fn   interp.HandlerFunc
	desc string
}

func (d describedFunc) Execute(out io.Writer, args []string) interp.Signal {
	return d.fn(out, args)
}

func (d describedFunc) Description() string {
	return d.desc
}

// RegisterAll registers every macro on reg. Names clashing with already
// registered commands surface as registration errors; nothing is rolled
// back, so callers should treat any error as fatal for the whole set.
func RegisterAll(reg *interp.Registry, defs []Macro) error {
	for _, m := range defs {
		if err := reg.Register(m.Name, newHandler(m)); err != nil {
			return fmt.Errorf("register macro: %w", err)
		}
	}
	return nil
}

func newHandler(m Macro) interp.Handler {
	lines := m.Output

	desc := m.Description
	if desc == "" {
		desc = "macro"
	}

	return describedFunc{
		desc: desc,
		fn: func(out io.Writer, _ []string) interp.Signal {
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
			return interp.Continue
		},
	}
}
