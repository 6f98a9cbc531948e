package reflection

import (
	"reflect"
	"time"
)

// ClassRecord describes one class known to the registry: where it came from
// and when it was first seen. It is a pure descriptor; it does not own the
// class it points at.
//
// Metadata views are recomputed from the store on every call rather than
// cached at construction: registration functions may still write method
// metadata after the class has been registered, depending on load order.
type ClassRecord struct {
	path         string
	class        reflect.Type
	registeredAt time.Time
	store        *MetadataStore
}

func newClassRecord(path string, class reflect.Type, store *MetadataStore) *ClassRecord {
	return &ClassRecord{
		path:         path,
		class:        class,
		registeredAt: time.Now(),
		store:        store,
	}
}

// Path returns the source-location key the record was registered under.
func (r *ClassRecord) Path() string { return r.path }

// Class returns the registered class identity.
func (r *ClassRecord) Class() reflect.Type { return r.class }

// RegisteredAt returns the timestamp captured when the record was created.
func (r *ClassRecord) RegisteredAt() time.Time { return r.registeredAt }

// Metadata returns the current class-level metadata view.
func (r *ClassRecord) Metadata() Meta {
	return r.store.ClassMeta(r.class)
}

// MethodMetadata returns the merged class+method view for one method.
func (r *ClassRecord) MethodMetadata(method string) Meta {
	return r.store.MergedMeta(r.class, method)
}

// Methods returns the sorted names of the class's methods that have
// metadata attached.
func (r *ClassRecord) Methods() []string {
	return r.store.Methods(r.class)
}
