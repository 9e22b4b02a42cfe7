// Package registry maps wire names to concrete Go types implementing
// an interface, so interface values can be rebuilt after decoding.
package registry

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry is a bidirectional name <-> type mapping for implementations of I.
type Registry[I any] struct {
	mu     sync.RWMutex
	byName map[string]reflect.Type
	byType map[reflect.Type]string
}

// New creates an empty Registry.
func New[I any]() *Registry[I] {
	return &Registry[I]{
		mu:     sync.RWMutex{},
		byName: make(map[string]reflect.Type),
		byType: make(map[reflect.Type]string),
	}
}

// Register binds name to typ. A later registration of the same name
// or type replaces the earlier one.
// It panics if typ does not implement I, which is a programming error.
func (r *Registry[I]) Register(name string, typ reflect.Type) {
	iface := reflect.TypeFor[I]()
	if typ == nil || !typ.Implements(iface) {
		panic(fmt.Sprintf("registry: %v does not implement %v", typ, iface))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byName[name]; ok {
		delete(r.byType, old)
	}

	if old, ok := r.byType[typ]; ok {
		delete(r.byName, old)
	}

	r.byName[name] = typ
	r.byType[typ] = name
}

// NameOf returns the name registered for the dynamic type of v.
func (r *Registry[I]) NameOf(v I) (string, bool) {
	typ := reflect.TypeOf(v)
	if typ == nil {
		return "", false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.byType[typ]

	return name, ok
}

// New returns a decode target for the type registered under name,
// together with a function that yields the decoded value as I.
// Pointer types decode into a freshly allocated element.
func (r *Registry[I]) New(name string) (any, func() I, bool) {
	r.mu.RLock()
	typ, ok := r.byName[name]
	r.mu.RUnlock()

	if !ok {
		return nil, nil, false
	}

	if typ.Kind() == reflect.Pointer {
		ptr := reflect.New(typ.Elem())

		return ptr.Interface(), func() I {
			return ptr.Interface().(I) //nolint:forcetypeassert
		}, true
	}

	ptr := reflect.New(typ)

	return ptr.Interface(), func() I {
		return ptr.Elem().Interface().(I) //nolint:forcetypeassert
	}, true
}
