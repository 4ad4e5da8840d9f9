// Package registry keeps the set of named script engines available in the
// current process. Engine packages register themselves from init, so the
// capability is present only when the host binary imports at least one engine
// package; a binary without any is the degraded mode the condition gate
// reports through its throwing evaluator.
package registry

import (
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/nskvortsov/junit5/platform"
)

// ErrNoEngines reports that the process has no script engines registered.
var ErrNoEngines = errors.New("no script engines registered")

// Factory creates an evaluator instance for one engine.
type Factory func(handler slog.Handler) (platform.Evaluator, error)

// Registry is a concurrency-safe mapping from engine name to Factory.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register makes an engine available under the given name. It panics if the
// name is empty, the factory is nil, or the name is already taken, since
// registration happens at init time and a broken registration is a programmer
// error.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		panic("registry: engine name is empty")
	}
	if factory == nil {
		panic("registry: factory is nil for engine " + name)
	}
	if _, dup := r.factories[name]; dup {
		panic("registry: engine registered twice: " + name)
	}
	r.factories[name] = factory
}

// Lookup returns the factory registered under name, if any.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	return factory, ok
}

// Names returns the registered engine names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered engines.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.factories)
}

// Default is the process-wide registry that engine packages register into.
var Default = New()

// Register registers an engine in the Default registry.
func Register(name string, factory Factory) {
	Default.Register(name, factory)
}
