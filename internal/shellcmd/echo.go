package shellcmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sandevgo/cmdloop/pkg/interp"
)

// Echo writes its arguments back as a single line.
func Echo(out io.Writer, args []string) interp.Signal {
	fmt.Fprintln(out, strings.Join(args, " "))
	return interp.Continue
}
