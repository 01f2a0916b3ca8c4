package ecs

// Removable is implemented by every component store so the Registry can
// strip a destroyed entity out of all of them.
type Removable interface {
	Remove(id EntityID)
}

// Store holds one component type. Components are kept densely in insertion
// order (swap-remove on delete) so iteration is deterministic, and each
// component is heap-allocated so pointers returned by Get stay valid until
// the entity is removed.
type Store[T any] struct {
	index    map[EntityID]int
	entities []EntityID
	values   []*T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[EntityID]int, 32),
		entities: make([]EntityID, 0, 32),
		values:   make([]*T, 0, 32),
	}
}

// Set attaches c to id, replacing any previous value, and returns the stored copy.
func (s *Store[T]) Set(id EntityID, c T) *T {
	if i, ok := s.index[id]; ok {
		*s.values[i] = c
		return s.values[i]
	}
	v := new(T)
	*v = c
	s.index[id] = len(s.entities)
	s.entities = append(s.entities, id)
	s.values = append(s.values, v)
	return v
}

func (s *Store[T]) Get(id EntityID) (*T, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.values[i], true
}

// MustGet panics when id has no component; used where an invariant
// guarantees presence.
func (s *Store[T]) MustGet(id EntityID) *T {
	v, ok := s.Get(id)
	if !ok {
		panic("ecs: missing component for entity " + id.String())
	}
	return v
}

func (s *Store[T]) Remove(id EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if i != last {
		s.entities[i] = s.entities[last]
		s.values[i] = s.values[last]
		s.index[s.entities[i]] = i
	}
	s.entities = s.entities[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	delete(s.index, id)
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Entities returns a copy of the ids holding this component.
func (s *Store[T]) Entities() []EntityID {
	out := make([]EntityID, len(s.entities))
	copy(out, s.entities)
	return out
}

// Each visits every component. fn must not add or remove components of
// this store.
func (s *Store[T]) Each(fn func(EntityID, *T)) {
	for i, id := range s.entities {
		fn(id, s.values[i])
	}
}
