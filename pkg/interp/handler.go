package interp

import "io"

// Signal is the outcome of one handler execution and drives the
// interpreter loop: Continue moves on to the next input line, Stop makes
// Run return. Returning Stop is the only way a handler can end the loop,
// so any teardown a handler needs must happen before it returns Stop.
type Signal int

const (
	// Continue keeps the loop reading.
	Continue Signal = iota
	// Stop terminates the loop after the current dispatch.
	Stop
)

func (s Signal) String() string {
	if s == Stop {
		return "stop"
	}
	return "continue"
}

// Handler is a unit of logic bound to a command name. Execute receives the
// interpreter's output sink and the argument tokens of the current line
// (never including the command name itself, possibly empty).
//
// Handlers contain their own failures: anything that goes wrong inside
// Execute is reported as a line on out and the handler still returns a
// Signal, normally Continue. The loop never aborts because a handler's
// internal operation failed.
//
// Dispatch is single-threaded, so a handler registered behind a pointer
// may keep mutable state across calls without synchronization. The args
// slice is only valid for the duration of the call.
type Handler interface {
	Execute(out io.Writer, args []string) Signal
}

// HandlerFunc adapts a plain function to the Handler interface, the same
// way http.HandlerFunc does for http.Handler. Registry lookup and dispatch
// never distinguish function handlers from struct handlers.
type HandlerFunc func(out io.Writer, args []string) Signal

// Execute calls f.
func (f HandlerFunc) Execute(out io.Writer, args []string) Signal {
	return f(out, args)
}

// Describer is optionally implemented by handlers that carry a one-line
// description of themselves. Registry-derived help listings include the
// description when a handler provides one.
type Describer interface {
	Description() string
}
