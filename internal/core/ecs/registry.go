package ecs

// Registry tracks all component stores so destroying an entity clears it everywhere.
type Registry struct {
	stores []Removable
}

func NewRegistry() *Registry {
	return &Registry{stores: make([]Removable, 0, 8)}
}

func (r *Registry) Register(store Removable) {
	r.stores = append(r.stores, store)
}

func (r *Registry) RemoveAll(id EntityID) {
	for _, s := range r.stores {
		s.Remove(id)
	}
}

// NewRegisteredStore creates a store and registers it in one step.
func NewRegisteredStore[T any](r *Registry) *Store[T] {
	s := NewStore[T]()
	r.Register(s)
	return s
}
