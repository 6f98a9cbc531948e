package annotate

import (
	"reflect"

	"github.com/trellis-fw/trellis/runtime/reflection"
)

// Before declares middleware that runs ahead of the target's handler.
// Arguments are middleware names resolved later by the middleware table;
// each must be a string or the call fails immediately with ErrIllegalValue.
//
// An empty name list is accepted here (there are no elements to reject) but
// fails with ErrNotFound when applied: an annotation that names no
// middleware is a usage error, not a no-op.
func Before(names ...any) (Configurator, error) {
	return middlewareList("before", names)
}

// After declares middleware that runs once the target's handler returns.
// Same contract as Before.
func After(names ...any) (Configurator, error) {
	return middlewareList("after", names)
}

// Inject declares the dependencies the DI container should hand the target.
// Same validation contract as Before; writes under the "inject" namespace.
func Inject(names ...any) (Configurator, error) {
	return namedList("inject", "dependencies", names)
}

func middlewareList(namespace string, args []any) (Configurator, error) {
	return namedList(namespace, "middleware", args)
}

func namedList(namespace, key string, args []any) (Configurator, error) {
	names, err := stringArgs(namespace, args)
	if err != nil {
		return Configurator{}, err
	}
	return Configurator{
		namespace: namespace,
		apply: func(store *reflection.MetadataStore, class reflect.Type, method string) error {
			if len(names) == 0 {
				return &reflection.NotFoundError{
					Kind: namespace + " configuration for",
					Name: targetName(class, method),
				}
			}
			if method == "" {
				store.PutClassMeta(class, namespace, key, names)
			} else {
				store.PutMethodMeta(class, method, namespace, key, names)
			}
			return nil
		},
	}, nil
}
