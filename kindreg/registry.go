package kindreg

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/arlen-voss/typeforge/typedef"
)

// Registry is an instance-scoped map of kind name to typedef.Kind. Each
// Engine owns exactly one Registry; nothing about it is process-global.
type Registry struct {
	kinds map[string]typedef.Kind
}

// New constructs an empty Registry.
func New() *Registry {
	return &Registry{kinds: make(map[string]typedef.Kind)}
}

// Register adds kind under its own Name(). Returns ErrDuplicateKind if a
// kind is already registered under that name.
func (r *Registry) Register(kind typedef.Kind) error {
	if kind == nil {
		return fmt.Errorf("%w: nil kind", ErrInternal)
	}
	name := kind.Name()
	if _, exists := r.kinds[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateKind, name)
	}
	r.kinds[name] = kind
	return nil
}

// MustRegister calls Register and panics on error. Intended for engine
// construction, where a duplicate kind name is a programmer error, not a
// runtime condition to recover from.
func (r *Registry) MustRegister(kind typedef.Kind) {
	if err := r.Register(kind); err != nil {
		panic(err)
	}
}

// Get looks up a kind by name.
func (r *Registry) Get(name string) (typedef.Kind, bool) {
	k, ok := r.kinds[name]
	return k, ok
}

// MustGet looks up a kind by name, returning ErrUnknownKind if absent.
func (r *Registry) MustGet(name string) (typedef.Kind, error) {
	k, ok := r.kinds[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// All iterates every registered kind in unspecified order.
func (r *Registry) All() iter.Seq2[string, typedef.Kind] {
	return maps.All(r.kinds)
}

// Names returns every registered kind name, sorted.
func (r *Registry) Names() []string {
	names := slices.Collect(maps.Keys(r.kinds))
	slices.Sort(names)
	return names
}
