// Package middleware resolves the middleware names stored by the annotate
// registration functions into executable HTTP middleware, and provides the
// built-in middleware the framework ships with.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain is an ordered, composable list of middleware. Order is execution
// order: the first middleware in the chain sees the request first.
type Chain struct {
	middlewares []Middleware
}

// NewChain creates a chain that executes the given middleware in order.
func NewChain(middlewares ...Middleware) *Chain {
	return &Chain{middlewares: middlewares}
}

// Use appends a middleware to the chain and returns it for chaining.
func (c *Chain) Use(m Middleware) *Chain {
	c.middlewares = append(c.middlewares, m)
	return c
}

// Append returns a new chain with the extra middleware added, leaving the
// receiver untouched. Used to derive per-method chains from a class-level
// base without mutating it.
func (c *Chain) Append(middlewares ...Middleware) *Chain {
	combined := make([]Middleware, 0, len(c.middlewares)+len(middlewares))
	combined = append(combined, c.middlewares...)
	combined = append(combined, middlewares...)
	return &Chain{middlewares: combined}
}

// Len reports how many middleware the chain holds.
func (c *Chain) Len() int { return len(c.middlewares) }

// Then wraps handler with the chain. Wrapping happens in reverse so the
// middleware added first executes first.
func (c *Chain) Then(handler http.Handler) http.Handler {
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		handler = c.middlewares[i](handler)
	}
	return handler
}

// ThenFunc wraps an http.HandlerFunc with the chain.
func (c *Chain) ThenFunc(handlerFunc http.HandlerFunc) http.Handler {
	return c.Then(handlerFunc)
}
