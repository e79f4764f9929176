package layout

import "fmt"

// Registry indexes layouts by name and by xxHash64 ID.
//
// A Registry is plain data: populate it during setup and read it
// afterwards. It performs no locking of its own.
type Registry struct {
	byName map[string]*Layout
	byID   map[uint64]*Layout
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Layout),
		byID:   make(map[uint64]*Layout),
	}
}

// Register adds a compiled layout. Registering a second layout with the
// same name (or a name whose ID collides) fails.
func (r *Registry) Register(l *Layout) error {
	if _, ok := r.byName[l.Name]; ok {
		return fmt.Errorf("layout %q already registered", l.Name)
	}
	if _, ok := r.byID[l.ID()]; ok {
		return fmt.Errorf("layout %q: ID collision with a registered layout", l.Name)
	}

	r.byName[l.Name] = l
	r.byID[l.ID()] = l

	return nil
}

// Lookup returns the layout registered under name.
func (r *Registry) Lookup(name string) (*Layout, bool) {
	l, ok := r.byName[name]

	return l, ok
}

// LookupID returns the layout whose name hashes to id.
func (r *Registry) LookupID(id uint64) (*Layout, bool) {
	l, ok := r.byID[id]

	return l, ok
}

// Len returns the number of registered layouts.
func (r *Registry) Len() int {
	return len(r.byName)
}
