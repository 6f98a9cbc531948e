// Package binding turns the registry's mapping metadata into a mounted
// router. It is read-only with respect to the registry: everything it needs
// was written earlier by the registration functions.
package binding

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/trellis-fw/trellis/runtime/middleware"
	"github.com/trellis-fw/trellis/runtime/reflection"
)

// handlerFunc is the method signature a mapped method must have.
type handlerFunc = func(http.ResponseWriter, *http.Request)

// Binder mounts every class known to a registry onto a chi router.
type Binder struct {
	registry *reflection.Registry
	table    *middleware.Table
	logger   *zap.Logger
}

// New creates a binder. A nil logger disables logging.
func New(registry *reflection.Registry, table *middleware.Table, logger *zap.Logger) *Binder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Binder{registry: registry, table: table, logger: logger}
}

// Mount walks every registered class and binds each method that carries
// mapping metadata. Routes are mounted under the class prefix, wrapped in
// the effective before-middleware chain (class-level names first, then
// method-level) with the effective after-middleware closest to the handler.
// Any unresolvable name, missing method, or mis-typed method aborts the
// mount; binding errors are startup errors.
func (b *Binder) Mount() (chi.Router, error) {
	mux := chi.NewRouter()

	for _, path := range b.registry.KnownClasses() {
		rec, err := b.registry.Reflect(path)
		if err != nil {
			return nil, err
		}
		if err := b.bindClass(mux, rec); err != nil {
			return nil, err
		}
	}
	return mux, nil
}

func (b *Binder) bindClass(mux chi.Router, rec *reflection.ClassRecord) error {
	class := rec.Class()
	prefix := rec.Metadata().String("mapping", "prefix")

	// reflect.New promotes methods with pointer receivers into the set.
	instance := reflect.New(class)

	for _, name := range rec.Methods() {
		meta := rec.MethodMetadata(name)

		verb := meta.String("mapping", "method")
		route := meta.String("mapping", "path")
		if verb == "" || route == "" {
			continue
		}

		handler, err := methodHandler(instance, class, name)
		if err != nil {
			return err
		}

		chain, err := b.table.Chain(meta.StringList("before", "middleware"))
		if err != nil {
			return err
		}

		// After-middleware sits innermost so its work following
		// next.ServeHTTP runs immediately once the handler returns.
		after, err := b.table.Resolve(meta.StringList("after", "middleware"))
		if err != nil {
			return err
		}
		chain = chain.Append(after...)

		pattern := joinPath(prefix, route)
		mux.Method(strings.ToUpper(verb), pattern, chain.Then(handler))

		b.logger.Info("bound route",
			zap.String("method", strings.ToUpper(verb)),
			zap.String("pattern", pattern),
			zap.String("class", class.String()),
			zap.String("handler", name),
			zap.Int("middleware", chain.Len()),
		)
	}
	return nil
}

// methodHandler resolves a named method on the class instance to an HTTP
// handler, failing if the method is missing or has the wrong signature.
func methodHandler(instance reflect.Value, class reflect.Type, name string) (http.Handler, error) {
	m := instance.MethodByName(name)
	if !m.IsValid() {
		return nil, &reflection.NotFoundError{Kind: "method", Name: class.String() + "." + name}
	}
	fn, ok := m.Interface().(handlerFunc)
	if !ok {
		return nil, &reflection.IllegalValueError{
			Annotation: "mapping",
			Reason:     class.String() + "." + name + " is not a func(http.ResponseWriter, *http.Request)",
		}
	}
	return http.HandlerFunc(fn), nil
}

func joinPath(prefix, route string) string {
	p := strings.TrimSuffix(prefix, "/")
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	if p == "" {
		return route
	}
	return p + route
}
