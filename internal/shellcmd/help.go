// Package shellcmd assembles the handler set of the loopsh demo shell:
// the core built-ins plus shell-flavored commands for echoing input,
// inspecting configuration and listing commands as a table.
package shellcmd

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/sandevgo/cmdloop/internal/ui"
	"github.com/sandevgo/cmdloop/pkg/interp"
)

type helpTable struct {
	reg *interp.Registry
}

// NewHelpTable returns a help handler rendering the registry as a
// two-column table. It reads the registry on every dispatch, so commands
// registered later still show up.
func NewHelpTable(reg *interp.Registry) interp.Handler {
	return &helpTable{reg: reg}
}

func (h *helpTable) Execute(out io.Writer, _ []string) interp.Signal {
	fmt.Fprintln(out, ui.HeaderColor("Available commands"))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Command", "Description"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, name := range h.reg.Commands() {
		desc := "-"
		if handler, ok := h.reg.Lookup(name); ok {
			if d, ok := handler.(interp.Describer); ok {
				desc = d.Description()
			}
		}
		table.Append([]string{ui.CommandNameColor(name), desc})
	}

	table.Render()
	return interp.Continue
}

func (h *helpTable) Description() string {
	return "list available commands"
}
