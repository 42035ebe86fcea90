package interp

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrDuplicateCommand is returned when registering a name that is
	// already taken. Duplicates fail loudly so a handler can never
	// silently shadow an earlier one (a built-in like "quit" included);
	// the existing handler stays registered and unchanged.
	ErrDuplicateCommand = errors.New("command already registered")

	// ErrInvalidName is returned when registering an empty name or one
	// containing whitespace. The tokenizer can never produce such a name,
	// so the handler would be unreachable.
	ErrInvalidName = errors.New("invalid command name")
)

// Registry maps command names to their handlers. Names are case-sensitive
// and unique. Registration is not safe for concurrent use; once a registry
// is fully populated, concurrent Lookup and Commands calls are safe, which
// is what allows interpreters to share one registry.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register binds name to h. It fails with ErrInvalidName for an empty or
// whitespace-containing name and with ErrDuplicateCommand when the name is
// already taken.
func (r *Registry) Register(name string, h Handler) error {
	if name == "" || strings.ContainsAny(name, " \t\n\r") {
		return fmt.Errorf("register %q: %w", name, ErrInvalidName)
	}
	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("register %q: %w", name, ErrDuplicateCommand)
	}
	r.handlers[name] = h
	return nil
}

// RegisterFunc binds name to a function handler. The function is adapted
// to the Handler interface, so lookup and dispatch treat it exactly like a
// handler registered through Register.
func (r *Registry) RegisterFunc(name string, fn HandlerFunc) error {
	return r.Register(name, fn)
}

// Lookup returns the handler registered under name. A miss is an expected
// outcome, not an error.
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Commands returns the registered names in sorted order.
func (r *Registry) Commands() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of registered handlers.
func (r *Registry) Len() int {
	return len(r.handlers)
}
