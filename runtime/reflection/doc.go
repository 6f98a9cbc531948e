// Package reflection is the metadata registry at the heart of the Trellis
// runtime. It stores class-level and method-level configuration written by
// the registration functions in runtime/annotate, tracks every class the
// framework has discovered, and exposes the query surface that the route
// binder, dependency injector, and introspection tooling read at startup.
//
// The registry is purely in-memory and rebuilt on every process start.
// Writes happen sequentially during class loading; once startup completes
// the registry is effectively read-only and safe for concurrent queries.
package reflection
