package registry

import (
	"sync"
)

// Registry is a process-wide key-value store with per-key locking. Extension
// points (cmd, cron, api routes) accumulate entries under a key during init()
// and lock the key once applied, making the registration immutable after boot.
type Registry struct {
	mu     sync.RWMutex
	values map[string]interface{}
	locked map[string]bool
}

// GlobalRegistry is the single process-wide instance.
var GlobalRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		values: make(map[string]interface{}),
		locked: make(map[string]bool),
	}
}

// GetGlobal returns the value stored under key.
func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

// SetGlobal stores a value under key. Panics if the key is locked.
func (r *Registry) SetGlobal(key string, value interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.locked[key] {
		panic("registry: set on locked key " + key)
	}
	r.values[key] = value
}

// Lock marks a key immutable. Further SetGlobal calls on it panic.
func (r *Registry) Lock(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked[key] = true
}

// IsLocked reports whether a key has been locked.
func (r *Registry) IsLocked(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locked[key]
}

// UnlockForTesting clears the lock on a key (for tests only).
func (r *Registry) UnlockForTesting(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.locked, key)
}
