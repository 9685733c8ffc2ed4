package gizmo

import (
	"fmt"
	"sort"
	"sync"
)

// BackendFactory creates a backend for a target of the given size in
// device units. Backends with no intrinsic size ignore the arguments.
type BackendFactory func(width, height int) Backend

// Registry state, protected by registryMu.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register registers a backend factory with the given name.
// It is typically called from init() in backend packages, following the
// database/sql driver pattern.
//
// Register panics if factory is nil or if a backend with the same name is
// already registered.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("gizmo: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("gizmo: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is primarily useful for testing. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a backend by name.
//
//	import _ "github.com/gogpu/gizmo/backend/raster"
//
//	b, err := gizmo.NewBackend("raster", 800, 600)
func NewBackend(name string, width, height int) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("gizmo: unknown backend %q (forgotten import?)", name)
	}
	return factory(width, height), nil
}

// MustBackend is like NewBackend but panics on error.
func MustBackend(name string, width, height int) Backend {
	b, err := NewBackend(name, width, height)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the sorted names of all registered backends.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
