// Package output provides the serialisers that render generated
// palettes as JSON, CSS custom properties or SCSS variables.
package output

import (
	"sort"

	"github.com/tonemill/tonemill/internal/colour"
)

// Serialiser renders a sequence of palette entries into one output
// document.
type Serialiser interface {
	// Name returns the serialiser's name (e.g. "json", "css").
	Name() string

	// Description returns a human-readable description.
	Description() string

	// Render produces the serialised document. Entry order is
	// preserved; kinds with no variants are omitted.
	Render(entries []colour.Entry) ([]byte, error)

	// DefaultFileName returns the file name used when the caller does
	// not supply one.
	DefaultFileName() string
}

// Registry holds all registered serialisers.
type Registry struct {
	serialisers map[string]Serialiser
}

// NewRegistry creates an empty serialiser registry.
func NewRegistry() *Registry {
	return &Registry{
		serialisers: make(map[string]Serialiser),
	}
}

// Register adds a serialiser to the registry.
func (r *Registry) Register(s Serialiser) {
	r.serialisers[s.Name()] = s
}

// Get retrieves a serialiser by name.
func (r *Registry) Get(name string) (Serialiser, bool) {
	s, ok := r.serialisers[name]
	return s, ok
}

// List returns all registered serialiser names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.serialisers))
	for name := range r.serialisers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered serialisers keyed by name.
func (r *Registry) All() map[string]Serialiser {
	// Return a copy to prevent external modification
	serialisers := make(map[string]Serialiser, len(r.serialisers))
	for name, s := range r.serialisers {
		serialisers[name] = s
	}
	return serialisers
}

// DefaultRegistry returns a registry with all built-in serialisers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(JSON{})
	r.Register(CSS{})
	r.Register(SCSS{})
	return r
}
