package annotate

import (
	"fmt"
	"reflect"

	"github.com/trellis-fw/trellis/runtime/reflection"
)

// Configurator is the deferred half of a registration function: the
// validated configuration waiting to be applied to a concrete target. The
// class loader calls Apply once per target; method == "" applies at class
// granularity.
type Configurator struct {
	namespace string
	apply     func(store *reflection.MetadataStore, class reflect.Type, method string) error
}

// Namespace names the registration function that produced this configurator.
func (c Configurator) Namespace() string { return c.namespace }

// Apply writes the captured configuration into the store for the given
// class, or for one of its methods when method is non-empty.
func (c Configurator) Apply(store *reflection.MetadataStore, class reflect.Type, method string) error {
	return c.apply(store, class, method)
}

// stringArgs validates that every argument is a string. Registration
// functions take ...any so that non-string arguments can be rejected with a
// descriptive error instead of a compile-time dead end for generated code.
func stringArgs(annotation string, args []any) ([]string, error) {
	names := make([]string, 0, len(args))
	for i, arg := range args {
		s, ok := arg.(string)
		if !ok {
			return nil, &reflection.IllegalValueError{
				Annotation: annotation,
				Index:      i,
				Value:      arg,
			}
		}
		names = append(names, s)
	}
	return names, nil
}

// targetName renders a class/method pair for error messages.
func targetName(class reflect.Type, method string) string {
	if method == "" {
		return class.String()
	}
	return fmt.Sprintf("%s.%s", class.String(), method)
}
