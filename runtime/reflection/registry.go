package reflection

import (
	"reflect"
	"sync"
)

// Registry is the process table of every class the framework has discovered,
// keyed by source path. Each registry owns its own MetadataStore, so two
// application instances in one process never share metadata.
//
// The class-loading collaborator calls Register once per discovered class;
// consuming subsystems use Reflect and KnownClasses afterwards.
type Registry struct {
	mu      sync.RWMutex
	store   *MetadataStore
	records map[string]*ClassRecord
	order   []string
}

// NewRegistry creates an empty registry with a fresh metadata store.
func NewRegistry() *Registry {
	return &Registry{
		store:   NewMetadataStore(),
		records: make(map[string]*ClassRecord),
	}
}

// Store returns the metadata store backing this registry. Registration
// functions write into it; records read from it.
func (r *Registry) Store() *MetadataStore { return r.store }

// Register creates the record for path, replacing any previous record with a
// fresh timestamp. Paths are trusted as-is; the class loader owns their
// format. Re-registration keeps the path's original enumeration position.
func (r *Registry) Register(path string, class reflect.Type) *ClassRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[path]; !exists {
		r.order = append(r.order, path)
	}
	rec := newClassRecord(path, class, r.store)
	r.records[path] = rec
	return rec
}

// Reflect returns the record registered at path, or a NotFoundError if the
// path has never been registered. It never returns a sentinel record.
func (r *Registry) Reflect(path string) (*ClassRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[path]
	if !ok {
		return nil, &NotFoundError{Kind: "class path", Name: path}
	}
	return rec, nil
}

// KnownClasses returns a snapshot of all registered paths in registration
// order. The slice is recomputed per call; registrations that happen after
// it returns are not reflected in it.
func (r *Registry) KnownClasses() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paths := make([]string, len(r.order))
	copy(paths, r.order)
	return paths
}

// Reset clears all records and metadata (used for testing).
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store = NewMetadataStore()
	r.records = make(map[string]*ClassRecord)
	r.order = nil
}

// Default process-wide registry for applications that want a single shared
// instance. Tests and multi-tenant hosts should create their own via
// NewRegistry instead.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Register registers a class in the default registry.
func Register(path string, class reflect.Type) *ClassRecord {
	return defaultRegistry.Register(path, class)
}

// Reflect looks up a record in the default registry.
func Reflect(path string) (*ClassRecord, error) {
	return defaultRegistry.Reflect(path)
}

// KnownClasses enumerates the default registry.
func KnownClasses() []string {
	return defaultRegistry.KnownClasses()
}

// Reset clears the default registry (used for testing).
func Reset() {
	defaultRegistry.Reset()
}
