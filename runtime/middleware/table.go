package middleware

import (
	"sync"

	"github.com/trellis-fw/trellis/runtime/reflection"
)

// Table maps the middleware names used in annotations ("auth", "log", ...)
// to their implementations. The route binder resolves every name at mount
// time, so a misspelled annotation fails startup instead of a request.
type Table struct {
	mu      sync.RWMutex
	entries map[string]Middleware
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Middleware)}
}

// Register binds a name to a middleware, replacing any previous binding.
func (t *Table) Register(name string, m Middleware) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[name] = m
}

// Resolve looks up every name and returns the middleware in the same order.
// An unknown name fails with a NotFoundError.
func (t *Table) Resolve(names []string) ([]Middleware, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	resolved := make([]Middleware, 0, len(names))
	for _, name := range names {
		m, ok := t.entries[name]
		if !ok {
			return nil, &reflection.NotFoundError{Kind: "middleware", Name: name}
		}
		resolved = append(resolved, m)
	}
	return resolved, nil
}

// Chain resolves names and builds an execution-ordered chain from them.
func (t *Table) Chain(names []string) (*Chain, error) {
	resolved, err := t.Resolve(names)
	if err != nil {
		return nil, err
	}
	return NewChain(resolved...), nil
}
