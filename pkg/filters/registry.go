package filters

import (
	"log/slog"
	"sort"
	"sync"
)

// Registry maps filter names to their definitions. Definitions act as builder
// factories: every call to New produces an independent builder.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]*Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: map[string]*Definition{}}
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	r.MustRegister(videoCatalog()...)
	r.MustRegister(audioCatalog()...)
	return r
})

// Default returns the shared registry holding the built-in catalog.
func Default() *Registry {
	return defaultRegistry()
}

// Register installs def. A definition with the same name is replaced.
func (r *Registry) Register(def Definition) error {
	if err := def.validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[def.Name]; exists {
		slog.Warn("replacing filter definition", "filter", def.Name)
	}
	r.defs[def.Name] = def.clone()
	return nil
}

// MustRegister registers every definition and panics on the first invalid one.
func (r *Registry) MustRegister(defs ...Definition) {
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
}

// Lookup returns a copy of the definition registered under name.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	def, ok := r.lookup(name)
	if !ok {
		return nil, false
	}
	return def.clone(), true
}

// lookup returns the registry's own definition. Builders only read it.
func (r *Registry) lookup(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	return def, ok
}

// Names returns the registered filter names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns copies of all definitions sorted by name.
func (r *Registry) Definitions() []*Definition {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Definition, 0, len(names))
	for _, name := range names {
		if def, ok := r.defs[name]; ok {
			out = append(out, def.clone())
		}
	}
	return out
}

// Len returns the number of registered filters.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}
