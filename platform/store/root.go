// Package store provides the key-value store scoped to one test-plan
// execution root. The condition gate uses it to resolve its evaluator at most
// once per root.
package store

import "sync"

// Root is a concurrency-safe key-value store owned by the top-level execution
// context of one test plan. Values live until the root is discarded.
type Root struct {
	mu     sync.Mutex
	values map[string]any
}

// NewRoot creates an empty root store.
func NewRoot() *Root {
	return &Root{values: make(map[string]any)}
}

// GetOrCompute returns the value stored under key, computing and storing it
// first if absent. The compute function runs at most once per key: concurrent
// callers block until the winning computation finishes and then observe the
// same value.
func (r *Root) GetOrCompute(key string, compute func() any) any {
	r.mu.Lock()
	defer r.mu.Unlock()

	if value, ok := r.values[key]; ok {
		return value
	}
	value := compute()
	r.values[key] = value
	return value
}

// Get returns the value stored under key, if any.
func (r *Root) Get(key string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	value, ok := r.values[key]
	return value, ok
}
