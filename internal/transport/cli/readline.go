// Package cli provides an interactive readline-backed line source for the
// interpreter, with history and line editing.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/sandevgo/cmdloop/internal/config"
	"github.com/sandevgo/cmdloop/pkg/interp"
)

type ReadLine struct {
	cfg *config.AppConfig
	rl  *readline.Instance
}

var _ interp.LineReader = (*ReadLine)(nil)

// NewReadLine opens a readline instance owning the terminal. The prompt is
// drawn by readline itself, so the interpreter consuming this source must
// run with its own prompt disabled.
func NewReadLine(cfg *config.AppConfig) (*ReadLine, error) {
	// Ensure runtime directory exists for the history file
	if err := os.MkdirAll(config.GetRuntimePath(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.GetHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{cfg: cfg, rl: rl}, nil
}

// ReadLine blocks for the next edited line. Ctrl+C on an empty line and
// Ctrl+D both end the session as io.EOF; Ctrl+C with pending input clears
// the line and reads again.
func (r *ReadLine) ReadLine() (string, error) {
	for {
		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return "", io.EOF
				}
				continue
			}
			if err == io.EOF {
				return "", io.EOF
			}
			return "", err
		}
		return line, nil
	}
}

// Stdout is the sink to pair with this source: readline repaints the
// prompt around writes to it.
func (r *ReadLine) Stdout() io.Writer {
	return r.rl.Stdout()
}

func (r *ReadLine) Close() error {
	return r.rl.Close()
}
