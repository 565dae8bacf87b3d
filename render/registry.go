package render

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Factory creates a new backend instance.
type Factory func() Backend

// Registry state, protected by registryMu.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	extensions = make(map[string]string) // ".png" -> "raster"
)

// Register registers a backend factory under name, together with the file
// extensions it writes (leading dot optional, case-insensitive).
// It is typically called from init() in backend packages:
//
//	func init() {
//	    render.Register("svg", func() render.Backend { return New() }, ".svg")
//	}
//
// Register panics if factory is nil, if name is already registered, or if
// an extension is already claimed by another backend.
func Register(name string, factory Factory, exts ...string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("render: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("render: Register called twice for " + name)
	}
	for _, ext := range exts {
		ext = normalizeExt(ext)
		if owner, dup := extensions[ext]; dup {
			panic("render: extension " + ext + " already registered by " + owner)
		}
	}

	backends[name] = factory
	for _, ext := range exts {
		extensions[normalizeExt(ext)] = name
	}
}

// Unregister removes a backend and its extensions from the registry.
// It is a no-op for unknown names.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	delete(backends, name)
	for ext, owner := range extensions {
		if owner == name {
			delete(extensions, ext)
		}
	}
}

// NewBackend creates a new backend instance by name.
// The error mentions a forgotten import, the usual cause.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("render: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustBackend is like NewBackend but panics on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// ForFile creates the backend registered for the extension of path.
func ForFile(path string) (Backend, error) {
	ext := normalizeExt(filepath.Ext(path))

	registryMu.RLock()
	name, ok := extensions[ext]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("render: no backend for %q files (forgotten import?)", ext)
	}
	return NewBackend(name)
}

// Backends returns the registered backend names, sorted.
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

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
