package annotate

import (
	"reflect"

	"github.com/trellis-fw/trellis/runtime/reflection"
)

// Mapping binds a method to an HTTP route. It takes exactly two string
// arguments, the verb and the route path, and may only be applied at method
// granularity; the route binder reads the result from the "mapping"
// namespace.
func Mapping(args ...any) (Configurator, error) {
	parts, err := stringArgs("mapping", args)
	if err != nil {
		return Configurator{}, err
	}
	if len(parts) != 2 {
		return Configurator{}, &reflection.IllegalValueError{
			Annotation: "mapping",
			Reason:     "expects exactly two arguments (verb, path)",
		}
	}
	verb, path := parts[0], parts[1]

	return Configurator{
		namespace: "mapping",
		apply: func(store *reflection.MetadataStore, class reflect.Type, method string) error {
			if method == "" {
				return &reflection.IllegalValueError{
					Annotation: "mapping",
					Reason:     "must be applied to a method, not to class " + class.String(),
				}
			}
			store.PutMethodMeta(class, method, "mapping", "method", verb)
			store.PutMethodMeta(class, method, "mapping", "path", path)
			return nil
		},
	}, nil
}

// Prefix sets the base route path for every mapping on the class. It takes
// exactly one string argument and may only be applied at class granularity.
func Prefix(args ...any) (Configurator, error) {
	parts, err := stringArgs("prefix", args)
	if err != nil {
		return Configurator{}, err
	}
	if len(parts) != 1 {
		return Configurator{}, &reflection.IllegalValueError{
			Annotation: "prefix",
			Reason:     "expects exactly one argument (base path)",
		}
	}
	prefix := parts[0]

	return Configurator{
		namespace: "mapping",
		apply: func(store *reflection.MetadataStore, class reflect.Type, method string) error {
			if method != "" {
				return &reflection.IllegalValueError{
					Annotation: "prefix",
					Reason:     "must be applied to a class, not to method " + targetName(class, method),
				}
			}
			store.PutClassMeta(class, "mapping", "prefix", prefix)
			return nil
		},
	}, nil
}
