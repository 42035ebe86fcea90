// Package interp is a small embeddable framework for line-oriented command
// interpreters. A host program registers named handlers on an Interp, then
// calls Run: the loop reads one line at a time from the input source,
// splits it into a command name and argument tokens, dispatches to the
// matching handler and writes output to the sink, until a handler returns
// Stop or the input reaches end-of-input.
//
// The loop is single-threaded and synchronous. Input and output are
// injected as narrow capabilities (LineReader and io.Writer), so the same
// interpreter runs unchanged against a terminal, an in-memory buffer or a
// network stream.
package interp

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// DefaultPrompt is written to the sink before every read attempt unless
// overridden with WithPrompt.
const DefaultPrompt = "(cmd) "

// Option configures an Interp at construction time.
type Option func(*Interp)

// WithPrompt overrides the prompt written before each read attempt. An
// empty prompt disables prompt writing, which is what hosts want when the
// input device prints its own prompt.
func WithPrompt(prompt string) Option {
	return func(i *Interp) { i.prompt = prompt }
}

// WithLogger attaches a logger for debug-level loop events. The default is
// zerolog.Nop(); the interpreter never configures global logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(i *Interp) { i.log = logger }
}

// WithRegistry runs the interpreter over an existing registry instead of a
// fresh one. Lookup is safe for concurrent readers, so interpreters may
// share a registry as long as it is fully populated before any of them
// runs.
func WithRegistry(reg *Registry) Option {
	return func(i *Interp) {
		if reg != nil {
			i.reg = reg
		}
	}
}

// Interp owns a handler registry, an input source and an output sink for
// the lifetime of one interpreter session.
type Interp struct {
	reg    *Registry
	src    LineReader
	out    io.Writer
	prompt string
	log    zerolog.Logger
}

// New builds an interpreter reading lines from r and writing to w.
func New(r io.Reader, w io.Writer, opts ...Option) *Interp {
	return NewFromSource(NewReaderSource(r), w, opts...)
}

// NewFromSource builds an interpreter on a custom line source, such as a
// readline-backed one.
func NewFromSource(src LineReader, w io.Writer, opts ...Option) *Interp {
	i := &Interp{
		reg:    NewRegistry(),
		src:    src,
		out:    w,
		prompt: DefaultPrompt,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Register binds name to h. See Registry.Register for the error contract.
func (i *Interp) Register(name string, h Handler) error {
	return i.reg.Register(name, h)
}

// RegisterFunc binds name to a function handler.
func (i *Interp) RegisterFunc(name string, fn HandlerFunc) error {
	return i.reg.RegisterFunc(name, fn)
}

// Registry exposes the interpreter's registry, e.g. for a help handler
// that derives its listing from the registered names.
func (i *Interp) Registry() *Registry {
	return i.reg
}

// flusher is the optional sink capability the loop uses to push buffered
// output out before blocking on the next read.
type flusher interface {
	Flush() error
}

func (i *Interp) flush() error {
	if f, ok := i.out.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Run blocks in the read-dispatch-write cycle until a handler returns Stop
// or the source reaches end-of-input; both terminations return nil. The
// only errors Run returns are I/O failures of the source or the sink.
// Blank lines, unknown commands and handler-internal failures all keep the
// loop running.
func (i *Interp) Run() error {
	i.log.Debug().Msg("interpreter loop started")

	for {
		if i.prompt != "" {
			if _, err := io.WriteString(i.out, i.prompt); err != nil {
				return fmt.Errorf("write prompt: %w", err)
			}
		}
		if err := i.flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}

		line, err := i.src.ReadLine()
		if err != nil {
			if err == io.EOF {
				i.log.Debug().Msg("end of input")
				return nil
			}
			return fmt.Errorf("read line: %w", err)
		}

		name, args := Tokenize(line)
		if name == "" {
			continue
		}

		handler, ok := i.reg.Lookup(name)
		if !ok {
			i.log.Debug().Str("command", name).Msg("unknown command")
			if _, err := fmt.Fprintf(i.out, "No command %s\n", name); err != nil {
				return fmt.Errorf("write notice: %w", err)
			}
			continue
		}

		sig := handler.Execute(i.out, args)
		i.log.Debug().Str("command", name).Stringer("signal", sig).Msg("dispatched")
		if sig == Stop {
			if err := i.flush(); err != nil {
				return fmt.Errorf("flush output: %w", err)
			}
			return nil
		}
	}
}
