package tcpshell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/sandevgo/cmdloop/pkg/interp"
	"github.com/sandevgo/cmdloop/pkg/interp/builtin"
)

func testRegistry(t *testing.T) *interp.Registry {
	t.Helper()

	reg := interp.NewRegistry()
	if err := reg.RegisterFunc("echo", func(out io.Writer, args []string) interp.Signal {
		fmt.Fprintln(out, strings.Join(args, " "))
		return interp.Continue
	}); err != nil {
		t.Fatalf("register echo: %v", err)
	}
	if err := reg.Register("quit", builtin.NewQuit("bye")); err != nil {
		t.Fatalf("register quit: %v", err)
	}
	return reg
}

func startServer(t *testing.T, prompt string) (*Server, chan error) {
	t.Helper()

	srv := NewServer("127.0.0.1:0", prompt, testRegistry(t))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(context.Background()) }()

	deadline := time.After(2 * time.Second)
	for srv.Addr() == "" {
		select {
		case <-deadline:
			t.Fatal("server did not bind")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	return srv, errCh
}

func dialSession(t *testing.T, srv *Server) net.Conn {
	t.Helper()

	conn, err := net.Dial("tcp", srv.Addr())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if err := conn.SetDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatalf("set deadline: %v", err)
	}
	return conn
}

func TestServer_Session(t *testing.T) {
	srv, errCh := startServer(t, "")
	defer srv.Shutdown(context.Background())

	conn := dialSession(t, srv)
	defer conn.Close()

	if _, err := io.WriteString(conn, "echo hi there\nnope\nquit\n"); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := io.ReadAll(conn)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	want := "hi there\nNo command nope\nbye\n"
	if string(got) != want {
		t.Errorf("transcript = %q, want %q", got, want)
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("start returned: %v", err)
	}
}

func TestServer_PromptWritten(t *testing.T) {
	srv, _ := startServer(t, "(cmd) ")
	defer srv.Shutdown(context.Background())

	conn := dialSession(t, srv)
	defer conn.Close()

	if _, err := io.WriteString(conn, "quit\n"); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := io.ReadAll(conn)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if want := "(cmd) bye\n"; string(got) != want {
		t.Errorf("transcript = %q, want %q", got, want)
	}
}

func TestServer_ConcurrentSessions(t *testing.T) {
	srv, _ := startServer(t, "")
	defer srv.Shutdown(context.Background())

	first := dialSession(t, srv)
	defer first.Close()
	second := dialSession(t, srv)
	defer second.Close()

	// Interleave: both sessions live at once, each with its own loop.
	if _, err := io.WriteString(first, "echo one\n"); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if _, err := io.WriteString(second, "echo two\nquit\n"); err != nil {
		t.Fatalf("write second: %v", err)
	}
	if _, err := io.WriteString(first, "quit\n"); err != nil {
		t.Fatalf("write first: %v", err)
	}

	gotFirst, err := io.ReadAll(first)
	if err != nil {
		t.Fatalf("read first: %v", err)
	}
	gotSecond, err := io.ReadAll(second)
	if err != nil {
		t.Fatalf("read second: %v", err)
	}

	if want := "one\nbye\n"; string(gotFirst) != want {
		t.Errorf("first transcript = %q, want %q", gotFirst, want)
	}
	if want := "two\nbye\n"; string(gotSecond) != want {
		t.Errorf("second transcript = %q, want %q", gotSecond, want)
	}
}

func TestServer_ShutdownSeversIdleSessions(t *testing.T) {
	srv, errCh := startServer(t, "")

	conn := dialSession(t, srv)
	defer conn.Close()

	// Round-trip once so the session is accepted and idle in a read before
	// shutdown starts.
	br := bufio.NewReader(conn)
	if _, err := io.WriteString(conn, "echo up\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if line, err := br.ReadString('\n'); err != nil || line != "up\n" {
		t.Fatalf("echo round-trip = %q, %v", line, err)
	}

	done := make(chan error, 1)
	go func() { done <- srv.Shutdown(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("shutdown: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown blocked on idle session")
	}

	// The server closed the connection, so the read drains to EOF instead
	// of hitting the deadline.
	if _, err := io.ReadAll(br); err != nil {
		t.Fatalf("read after shutdown: %v", err)
	}

	if err := <-errCh; err != nil {
		t.Fatalf("start returned: %v", err)
	}
}
