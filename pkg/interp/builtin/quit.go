// Package builtin provides ready-to-use handlers for the commands almost
// every interpreter wants: quitting the loop, listing commands and a
// touch-style file creator that demonstrates contained failure reporting.
package builtin

import (
	"fmt"
	"io"

	"github.com/sandevgo/cmdloop/pkg/interp"
)

// Quit stops the interpreter loop. Any teardown a host needs on exit
// belongs here, before Stop is returned: the loop takes no further action
// on the handler afterwards.
type Quit struct {
	// Farewell, when non-empty, is written as the final output line.
	Farewell string
}

// NewQuit returns a Quit handler writing farewell on exit. Pass "" for a
// silent quit.
func NewQuit(farewell string) *Quit {
	return &Quit{Farewell: farewell}
}

func (q *Quit) Execute(out io.Writer, _ []string) interp.Signal {
	if q.Farewell != "" {
		fmt.Fprintln(out, q.Farewell)
	}
	return interp.Stop
}

func (q *Quit) Description() string {
	return "stop the interpreter"
}
