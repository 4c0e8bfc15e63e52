package profile

// registry.go — ordered profile collection.
//
// Single-writer model: every Register call happens before any All iteration
// or evaluation in a given run. Profiles are read-only once registered, so
// consumers need no locking.

import "iter"

// Registry owns the validated, ordered collection of profiles.
// The zero value is ready to use.
type Registry struct {
	ordered []Profile
	byName  map[string]int
}

// NewRegistry builds a registry from defs, registering each in order.
// Fails on the first invalid or duplicate definition; the error names the
// offending profile and field.
func NewRegistry(defs []Profile) (*Registry, error) {
	r := &Registry{}
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register validates p and appends it to the collection, preserving
// insertion order. Returns a *ValidationError for an empty name, a
// duplicate name, or a numeric dimension outside [0,10]. A rejected
// profile is never partially added.
func (r *Registry) Register(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, exists := r.byName[p.Name]; exists {
		return &ValidationError{Profile: p.Name, Field: "Name", Reason: "duplicate profile name"}
	}
	if r.byName == nil {
		r.byName = make(map[string]int)
	}
	r.byName[p.Name] = len(r.ordered)
	r.ordered = append(r.ordered, p)
	return nil
}

// All returns a lazy, restartable sequence of profiles in insertion order.
func (r *Registry) All() iter.Seq[Profile] {
	return func(yield func(Profile) bool) {
		for _, p := range r.ordered {
			if !yield(p) {
				return
			}
		}
	}
}

// Get returns the profile registered under name.
func (r *Registry) Get(name string) (Profile, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Profile{}, false
	}
	return r.ordered[i], true
}

// Len returns the number of registered profiles.
func (r *Registry) Len() int { return len(r.ordered) }

// Names returns the registered profile names in insertion order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.ordered))
	for i, p := range r.ordered {
		names[i] = p.Name
	}
	return names
}
