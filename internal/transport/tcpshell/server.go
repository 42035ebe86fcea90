// Package tcpshell serves interpreter sessions over TCP, one session per
// connection. The connection is both the line source and the sink, and a
// session ends when a handler stops the loop or the peer closes the
// stream.
package tcpshell

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/sandevgo/cmdloop/pkg/interp"
	"github.com/sandevgo/cmdloop/pkg/log"
)

// Server accepts connections and runs one interpreter per connection over
// a shared registry. The registry must be fully populated before Start;
// sessions only read it.
type Server struct {
	addr   string
	prompt string
	reg    *interp.Registry

	mu       sync.Mutex
	listener net.Listener
	conns    map[net.Conn]struct{}
	closed   bool

	sessions sync.WaitGroup
}

func NewServer(addr, prompt string, reg *interp.Registry) *Server {
	return &Server{
		addr:   addr,
		prompt: prompt,
		reg:    reg,
		conns:  make(map[net.Conn]struct{}),
	}
}

// Addr reports the bound listen address, or "" before Start has bound it.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Start binds the listener and blocks in the accept loop until Shutdown
// closes it.
func (s *Server) Start(ctx context.Context) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		ln.Close()
		return nil
	}
	s.listener = ln
	s.mu.Unlock()

	logger := log.FromCtx(ctx)
	logger.Info().Str("addr", ln.Addr().String()).Msg("shell session server listening")

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			conn.Close()
			continue
		}
		s.conns[conn] = struct{}{}
		s.sessions.Add(1)
		s.mu.Unlock()

		go s.serveConn(ctx, conn)
	}
}

func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	defer s.sessions.Done()
	defer s.dropConn(conn)

	logger := log.FromCtx(ctx).With().Str("remote", conn.RemoteAddr().String()).Logger()
	logger.Info().Msg("session opened")

	i := interp.New(conn, conn,
		interp.WithRegistry(s.reg),
		interp.WithPrompt(s.prompt),
		interp.WithLogger(logger),
	)

	if err := i.Run(); err != nil {
		if errors.Is(err, net.ErrClosed) {
			logger.Info().Msg("session terminated by shutdown")
			return
		}
		logger.Error().Err(err).Msg("session ended with error")
		return
	}
	logger.Info().Msg("session closed")
}

func (s *Server) dropConn(conn net.Conn) {
	conn.Close()
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}

// Shutdown closes the listener and every live session, then waits for the
// session goroutines to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	ln := s.listener
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()

	if ln != nil {
		if err := ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			return err
		}
	}

	s.sessions.Wait()
	return nil
}
