package schema

import (
	"fmt"
	"sort"
)

// Registry indexes message schemas by id and by name. It is populated once
// and only read afterwards, so concurrent lookups need no locking. The zero
// value is an empty registry ready for Add.
type Registry struct {
	byID   map[uint32]*MessageSchema
	byName map[string]*MessageSchema
}

// NewRegistry creates a registry holding the given schemas.
func NewRegistry(schemas ...*MessageSchema) (*Registry, error) {
	r := &Registry{}
	for _, s := range schemas {
		if err := r.Add(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add inserts a schema. Ids and names must be unique.
func (r *Registry) Add(s *MessageSchema) error {
	if s == nil {
		return fmt.Errorf("nil schema")
	}
	if r.byID == nil {
		r.byID = make(map[uint32]*MessageSchema)
		r.byName = make(map[string]*MessageSchema)
	}
	if existing, ok := r.byID[s.ID]; ok {
		return fmt.Errorf("message id %d already registered as %s", s.ID, existing.Name)
	}
	if existing, ok := r.byName[s.Name]; ok {
		return fmt.Errorf("message name %s already registered with id %d", s.Name, existing.ID)
	}
	r.byID[s.ID] = s
	r.byName[s.Name] = s
	return nil
}

// MustAdd is like Add but panics on error.
func (r *Registry) MustAdd(s *MessageSchema) {
	if err := r.Add(s); err != nil {
		panic(err)
	}
}

// ByID returns the schema for a message id.
func (r *Registry) ByID(id uint32) (*MessageSchema, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// ByName returns the schema for a message name.
func (r *Registry) ByName(name string) (*MessageSchema, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	return len(r.byID)
}

// All returns every schema ordered by id.
func (r *Registry) All() []*MessageSchema {
	out := make([]*MessageSchema, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
