package spinner

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrSpinnerNotFound is returned when a lookup matches nothing.
var ErrSpinnerNotFound = errors.New("spinner not found")

// Registry holds spinner definitions keyed by name. Lookup is
// case-insensitive; definitions added later replace earlier ones with the
// same folded name. A Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	spinners map[string]Spinner // keyed by folded name
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{spinners: make(map[string]Spinner)}
}

// Add validates the definition and stores it, replacing any existing
// definition whose name matches case-insensitively.
func (r *Registry) Add(s Spinner) error {
	if err := s.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spinners[foldName(s.Name)] = s
	return nil
}

// AddAll adds every definition, stopping at the first invalid one.
func (r *Registry) AddAll(defs []Spinner) error {
	for _, s := range defs {
		if err := r.Add(s); err != nil {
			return err
		}
	}
	return nil
}

// Lookup finds a definition by name, ignoring case.
func (r *Registry) Lookup(name string) (Spinner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.spinners[foldName(name)]
	if !ok {
		return Spinner{}, fmt.Errorf("%w: %q", ErrSpinnerNotFound, name)
	}
	return s, nil
}

// Names returns the definition names sorted case-insensitively.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.spinners))
	for _, s := range r.spinners {
		names = append(names, s.Name)
	}
	sort.Slice(names, func(i, j int) bool {
		return foldName(names[i]) < foldName(names[j])
	})
	return names
}

// All returns every definition in Names() order.
func (r *Registry) All() []Spinner {
	r.mu.RLock()
	all := make([]Spinner, 0, len(r.spinners))
	for _, s := range r.spinners {
		all = append(all, s)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		return foldName(all[i].Name) < foldName(all[j].Name)
	})
	return all
}

// Clone returns a copy of the registry. Merging a user file into a clone
// leaves the built-in registry untouched.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clone := NewRegistry()
	for k, s := range r.spinners {
		clone.spinners[k] = s
	}
	return clone
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.spinners)
}

// LoadFile decodes the definitions file at path and merges it into the
// registry, overriding built-ins of the same name. Intended to run once at
// startup.
func (r *Registry) LoadFile(path string, mode MatchMode) error {
	defs, err := DecodeFile(path, mode)
	if err != nil {
		return err
	}
	return r.AddAll(defs)
}

func foldName(name string) string {
	return strings.ToLower(name)
}
