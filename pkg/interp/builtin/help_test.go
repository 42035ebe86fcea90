package builtin

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sandevgo/cmdloop/pkg/interp"
)

func TestHelp_Execute(t *testing.T) {
	reg := interp.NewRegistry()

	if err := reg.Register("quit", NewQuit("")); err != nil {
		t.Fatalf("register quit: %v", err)
	}
	if err := reg.Register("touch", Touch{}); err != nil {
		t.Fatalf("register touch: %v", err)
	}
	// A function handler has no description and is listed bare.
	if err := reg.RegisterFunc("greet", func(io.Writer, []string) interp.Signal {
		return interp.Continue
	}); err != nil {
		t.Fatalf("register greet: %v", err)
	}

	var out bytes.Buffer
	sig := NewHelp(reg).Execute(&out, nil)

	if sig != interp.Continue {
		t.Errorf("signal = %v, want %v", sig, interp.Continue)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4:\n%s", len(lines), out.String())
	}
	if lines[0] != "Available commands:" {
		t.Errorf("header = %q, want %q", lines[0], "Available commands:")
	}

	// Listing is sorted and descriptions follow their command.
	for i, wantName := range []string{"greet", "quit", "touch"} {
		fields := strings.Fields(lines[i+1])
		if len(fields) == 0 || fields[0] != wantName {
			t.Errorf("line %d = %q, want command %q first", i+1, lines[i+1], wantName)
		}
	}
	if !strings.Contains(out.String(), NewQuit("").Description()) {
		t.Error("quit description missing from listing")
	}
}

func TestHelp_ExecuteSeesLateRegistrations(t *testing.T) {
	reg := interp.NewRegistry()
	h := NewHelp(reg)

	if err := reg.Register("help", h); err != nil {
		t.Fatalf("register help: %v", err)
	}

	var before bytes.Buffer
	h.Execute(&before, nil)

	if err := reg.Register("quit", NewQuit("")); err != nil {
		t.Fatalf("register quit: %v", err)
	}

	var after bytes.Buffer
	h.Execute(&after, nil)

	if strings.Contains(before.String(), "quit") {
		t.Error("listing includes quit before registration")
	}
	if !strings.Contains(after.String(), "quit") {
		t.Error("listing misses quit after registration")
	}
}

func TestHelp_ExecuteNilRegistry(t *testing.T) {
	var out bytes.Buffer

	sig := NewHelp(nil).Execute(&out, nil)

	if sig != interp.Continue {
		t.Errorf("signal = %v, want %v", sig, interp.Continue)
	}
	if out.String() != "Available commands:\n" {
		t.Errorf("output = %q, want header only", out.String())
	}
}
