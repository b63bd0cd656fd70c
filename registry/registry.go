// Package registry holds the in-memory tables of every open source, keyed by file path.
//
// A Registry is the single source of truth for whether a source is connected. Drivers are
// thin handles and keep no table of their own; they look it up here on every call.
package registry

import (
	"sync"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Registry maps a source path to its loaded table.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]any
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{tables: make(map[string]any)}
}

var global = New()

// Global returns the process-wide registry used by the command line.
func Global() *Registry {
	return global
}

// Add inserts or overwrites the table registered for source.
func (r *Registry) Add(source string, table any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[source] = table
}

// AddIfAbsent registers table for source only if no table is registered yet.
// It reports whether the insert happened.
func (r *Registry) AddIfAbsent(source string, table any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tables[source]; ok {
		return false
	}
	r.tables[source] = table
	return true
}

// Remove drops source from the registry. It is a no-op if source is absent.
func (r *Registry) Remove(source string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tables, source)
}

// Get returns the table registered for source.
func (r *Registry) Get(source string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	table, ok := r.tables[source]
	return table, ok
}

// Contains reports whether source is registered.
func (r *Registry) Contains(source string) bool {
	_, ok := r.Get(source)
	return ok
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tables)
}

// Sources returns the registered source paths in lexical order.
func (r *Registry) Sources() []string {
	r.mu.RLock()
	sources := lo.Keys(r.tables)
	r.mu.RUnlock()

	slices.Sort(sources)
	return sources
}
