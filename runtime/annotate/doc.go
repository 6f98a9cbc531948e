// Package annotate provides the declarative registration functions that
// attach configuration to classes and methods: Before, After, Inject,
// Mapping, and Prefix.
//
// Each function is a validating factory. It checks its arguments at the call
// site and returns a Configurator that the class loader applies later, once
// the target class and method are known. Malformed arguments fail
// immediately with reflection.ErrIllegalValue so the mistake surfaces where
// the annotation was written, not at class-definition time.
package annotate
