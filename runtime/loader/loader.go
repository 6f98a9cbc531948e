// Package loader walks declared classes into the reflection registry. It is
// the explicit replacement for annotation dispatch: applications (or
// generated code) build Class values at startup and the loader registers
// each one, then applies its configurators in declaration order.
package loader

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/trellis-fw/trellis/runtime/annotate"
	"github.com/trellis-fw/trellis/runtime/reflection"
)

// Class declares one class to load: its source path, its identity, and the
// configurators attached at class level and per method.
type Class struct {
	Path          string
	Type          reflect.Type
	Configurators []annotate.Configurator
	Methods       map[string][]annotate.Configurator
}

// Loader registers classes and applies their configuration.
type Loader struct {
	registry *reflection.Registry
	logger   *zap.Logger
}

// New creates a loader for the given registry. A nil logger disables
// logging.
func New(registry *reflection.Registry, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{registry: registry, logger: logger}
}

// Load registers every class and applies its configurators, class level
// first, then each method's in declaration order. The first failure aborts
// the load: a malformed annotation is a startup error, never a partial
// success.
func (l *Loader) Load(classes ...Class) error {
	for _, class := range classes {
		if err := l.loadOne(class); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) loadOne(class Class) error {
	store := l.registry.Store()

	l.registry.Register(class.Path, class.Type)
	l.logger.Debug("registered class",
		zap.String("path", class.Path),
		zap.String("class", class.Type.String()),
	)

	for _, cfg := range class.Configurators {
		if err := cfg.Apply(store, class.Type, ""); err != nil {
			return fmt.Errorf("loading %s: %w", class.Path, err)
		}
	}
	for method, cfgs := range class.Methods {
		for _, cfg := range cfgs {
			if err := cfg.Apply(store, class.Type, method); err != nil {
				return fmt.Errorf("loading %s: %w", class.Path, err)
			}
		}
	}
	return nil
}
