package builtin

import (
	"fmt"
	"io"
	"os"

	"github.com/sandevgo/cmdloop/pkg/interp"
)

// Touch creates an empty file named by the first argument, truncating it if
// it already exists. Failures are reported on the output sink and never
// stop the loop.
type Touch struct{}

func (Touch) Execute(out io.Writer, args []string) interp.Signal {
	if len(args) == 0 {
		fmt.Fprintln(out, "touch: filename required")
		return interp.Continue
	}

	name := args[0]

	f, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(out, "Could not create file %s: %v\n", name, err)
		return interp.Continue
	}

	if err := f.Close(); err != nil {
		fmt.Fprintf(out, "Could not close file %s: %v\n", name, err)
		return interp.Continue
	}

	fmt.Fprintf(out, "Created file: %s\n", name)

	return interp.Continue
}

func (Touch) Description() string {
	return "create an empty file, e.g. touch notes.txt"
}
