// Package component provides the per-object component store.
//
// A store holds at most one component per type. Types are keyed by the tag
// returned from ComponentType, so lookups compare strings instead of
// reflecting on Go types.
package component

// Type identifies a component kind. Each component type returns a single
// constant tag.
type Type string

// Component is implemented by anything that can be attached to an object.
// ComponentType must not depend on the receiver's fields, since it is also
// called on the zero value (usually a nil pointer) of the type.
type Component interface {
	ComponentType() Type
}

// Store maps component types to the attached instance.
type Store struct {
	items map[Type]Component
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{items: make(map[Type]Component)}
}

// Len returns the number of attached components.
func (s *Store) Len() int {
	return len(s.items)
}

// Types returns the tags of all attached components in no particular order.
func (s *Store) Types() []Type {
	types := make([]Type, 0, len(s.items))
	for t := range s.items {
		types = append(types, t)
	}
	return types
}

func (s *Store) put(c Component) Component {
	if s.items == nil {
		s.items = make(map[Type]Component)
	}
	t := c.ComponentType()
	prev := s.items[t]
	s.items[t] = c
	return prev
}

func tagOf[T Component]() Type {
	var zero T
	return zero.ComponentType()
}

// AddComponent attaches c, replacing any component of the same type.
// It reports whether a previous component was replaced.
func AddComponent[T Component](s *Store, c T) bool {
	return s.put(c) != nil
}

// GetComponent returns the component of type T, if attached. Components are
// normally pointer types, so the result can be modified in place.
func GetComponent[T Component](s *Store) (T, bool) {
	c, ok := s.items[tagOf[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := c.(T)
	return typed, ok
}

// HasComponent reports whether a component of type T is attached.
func HasComponent[T Component](s *Store) bool {
	_, ok := GetComponent[T](s)
	return ok
}

// RemoveComponent detaches the component of type T and reports whether one was attached.
func RemoveComponent[T Component](s *Store) bool {
	t := tagOf[T]()
	if _, ok := s.items[t]; !ok {
		return false
	}
	delete(s.items, t)
	return true
}
