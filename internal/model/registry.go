package model

import (
	"errors"
	"fmt"
)

// ErrNotRegistered is wrapped by every lookup failure the registry reports.
var ErrNotRegistered = errors.New("option not registered")

// Registry is an insertion-ordered mapping from option key to Definition. It
// is threaded explicitly through the hook pipeline: created once at start-up,
// populated in a single pass, and discarded after the host finalizes the
// option set. It is not safe for concurrent use; the pipeline calls hooks
// sequentially.
type Registry struct {
	order   []string
	entries map[string]Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Definition)}
}

// Set writes a definition under its key, unconditionally overwriting any
// prior binding. A later write for the same key silently wins; the original
// insertion position is kept so output order stays stable.
func (r *Registry) Set(def Definition) {
	if _, exists := r.entries[def.Key]; !exists {
		r.order = append(r.order, def.Key)
	}
	r.entries[def.Key] = def
}

// SetDefault writes a definition only when its key is absent. The host merge
// step uses this so contributed options win on overlap.
func (r *Registry) SetDefault(def Definition) {
	if _, exists := r.entries[def.Key]; exists {
		return
	}
	r.Set(def)
}

// Get returns the definition bound to key.
func (r *Registry) Get(key string) (Definition, bool) {
	def, ok := r.entries[key]
	return def, ok
}

// Has reports whether key is bound.
func (r *Registry) Has(key string) bool {
	_, ok := r.entries[key]
	return ok
}

// Keys returns the bound keys in insertion order.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of bound keys.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Definitions returns the bound definitions in insertion order.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, key := range r.order {
		defs = append(defs, r.entries[key])
	}
	return defs
}

// SetVisibility flips the visibility flag on an existing definition. Missing
// keys are a hard error: visibility overrides target options expected to be
// defined elsewhere, so a miss means the final option set is not what the
// caller believes it is.
func (r *Registry) SetVisibility(key string, v Visibility) error {
	def, ok := r.entries[key]
	if !ok {
		return fmt.Errorf("options: set visibility on %q: %w", key, ErrNotRegistered)
	}
	def.Visibility = v
	r.entries[key] = def
	return nil
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	clone := NewRegistry()
	for _, key := range r.order {
		clone.Set(r.entries[key])
	}
	return clone
}
