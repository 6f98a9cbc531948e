package reflection

import (
	"reflect"
	"sort"
	"sync"
)

// Meta is the metadata view handed to consumers: namespace -> key -> value.
// The namespace is the name of the registration function that wrote the
// entry ("before", "mapping", ...), which keeps unrelated annotations from
// colliding on keys.
type Meta map[string]map[string]any

// StringList returns the []string stored under (namespace, key), or nil if
// the entry is absent or holds a different type.
func (m Meta) StringList(namespace, key string) []string {
	ns, ok := m[namespace]
	if !ok {
		return nil
	}
	list, _ := ns[key].([]string)
	return list
}

// String returns the string stored under (namespace, key), or "" if the
// entry is absent or holds a different type.
func (m Meta) String(namespace, key string) string {
	ns, ok := m[namespace]
	if !ok {
		return ""
	}
	s, _ := ns[key].(string)
	return s
}

type methodKey struct {
	class  reflect.Type
	method string
}

// MetadataStore associates structured configuration with classes and their
// methods. Entries are keyed by the exact class type, never by name, so two
// classes that happen to share a name can never see each other's metadata.
//
// Writes create intermediate maps lazily, overwrite on repetition, and never
// fail. Entries live for the life of the store; there is no delete.
type MetadataStore struct {
	mu     sync.RWMutex
	class  map[reflect.Type]Meta
	method map[methodKey]Meta
}

// NewMetadataStore creates an empty store.
func NewMetadataStore() *MetadataStore {
	return &MetadataStore{
		class:  make(map[reflect.Type]Meta),
		method: make(map[methodKey]Meta),
	}
}

// PutClassMeta attaches a class-level metadata entry.
func (s *MetadataStore) PutClassMeta(class reflect.Type, namespace, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta, ok := s.class[class]
	if !ok {
		meta = make(Meta)
		s.class[class] = meta
	}
	put(meta, namespace, key, value)
}

// PutMethodMeta attaches a metadata entry scoped to one method of a class.
func (s *MetadataStore) PutMethodMeta(class reflect.Type, method, namespace, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := methodKey{class: class, method: method}
	meta, ok := s.method[k]
	if !ok {
		meta = make(Meta)
		s.method[k] = meta
	}
	put(meta, namespace, key, value)
}

func put(meta Meta, namespace, key string, value any) {
	ns, ok := meta[namespace]
	if !ok {
		ns = make(map[string]any)
		meta[namespace] = ns
	}
	ns[key] = value
}

// ClassMeta returns a copy of the class-level metadata. A class with no
// metadata attached yields an empty Meta, never nil lookups or errors.
func (s *MetadataStore) ClassMeta(class reflect.Type) Meta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyMeta(s.class[class])
}

// MethodMeta returns a copy of the metadata attached to one method, in
// isolation from the class level.
func (s *MetadataStore) MethodMeta(class reflect.Type, method string) Meta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyMeta(s.method[methodKey{class: class, method: method}])
}

// Methods returns the sorted names of all methods of class that have
// metadata attached.
func (s *MetadataStore) Methods(class reflect.Type) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	for k := range s.method {
		if k.class == class {
			names = append(names, k.method)
		}
	}
	sort.Strings(names)
	return names
}

// MergedMeta returns the combined class+method view for one method. When a
// (namespace, key) entry exists on both levels, []string values are
// concatenated class-first (so class-level middleware runs before
// method-level middleware); values of any other type are overridden by the
// method level.
func (s *MetadataStore) MergedMeta(class reflect.Type, method string) Meta {
	s.mu.RLock()
	defer s.mu.RUnlock()

	merged := copyMeta(s.class[class])
	for namespace, entries := range s.method[methodKey{class: class, method: method}] {
		for key, value := range entries {
			existing, ok := merged[namespace][key]
			if ok {
				base, baseOK := existing.([]string)
				add, addOK := value.([]string)
				if baseOK && addOK {
					combined := make([]string, 0, len(base)+len(add))
					combined = append(combined, base...)
					combined = append(combined, add...)
					put(merged, namespace, key, combined)
					continue
				}
			}
			put(merged, namespace, key, value)
		}
	}
	return merged
}

// copyMeta deep-copies the namespace/key structure so callers can never
// mutate the store through a returned view. Values themselves are shared;
// writers always store fresh slices.
func copyMeta(meta Meta) Meta {
	out := make(Meta, len(meta))
	for namespace, entries := range meta {
		ns := make(map[string]any, len(entries))
		for key, value := range entries {
			ns[key] = value
		}
		out[namespace] = ns
	}
	return out
}
