package interp

import (
	"bytes"
	"fmt"
	"io"
	"testing"
)

func TestSignal_String(t *testing.T) {
	tests := []struct {
		name   string
		signal Signal
		want   string
	}{
		{name: "continue", signal: Continue, want: "continue"},
		{name: "stop", signal: Stop, want: "stop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.signal.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandlerFunc_Execute(t *testing.T) {
	var gotArgs []string

	h := HandlerFunc(func(out io.Writer, args []string) Signal {
		gotArgs = args
		fmt.Fprint(out, "ran")
		return Stop
	})

	var out bytes.Buffer
	sig := h.Execute(&out, []string{"a", "b"})

	if sig != Stop {
		t.Errorf("signal = %v, want %v", sig, Stop)
	}
	if out.String() != "ran" {
		t.Errorf("output = %q, want %q", out.String(), "ran")
	}
	if len(gotArgs) != 2 || gotArgs[0] != "a" || gotArgs[1] != "b" {
		t.Errorf("args = %v, want [a b]", gotArgs)
	}
}

// countingHandler carries state across dispatches.
type countingHandler struct {
	calls int
}

func (c *countingHandler) Execute(out io.Writer, _ []string) Signal {
	c.calls++
	fmt.Fprintf(out, "call %d\n", c.calls)
	return Continue
}

func TestHandler_KeepsStateAcrossDispatches(t *testing.T) {
	h := &countingHandler{}
	var out bytes.Buffer

	for i := 0; i < 3; i++ {
		if sig := h.Execute(&out, nil); sig != Continue {
			t.Fatalf("signal = %v, want %v", sig, Continue)
		}
	}

	want := "call 1\ncall 2\ncall 3\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if h.calls != 3 {
		t.Errorf("calls = %d, want 3", h.calls)
	}
}
