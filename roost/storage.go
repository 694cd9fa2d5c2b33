package roost

import (
	"fmt"
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
)

// Row holds the components of a single live entity, in insertion order.
type Row struct {
	id         EntityId
	components []ErasedComponent
}

func (r *Row) Id() EntityId {
	return r.id
}

// Components returns the components of this entity.
// You **must not** modify the returned slice.
func (r *Row) Components() []ErasedComponent {
	return r.components
}

// Get returns the component of the given type, or nil if the entity does
// not have one.
func (r *Row) Get(componentType *ComponentType) ErasedComponent {
	idx := r.indexOf(componentType)
	if idx < 0 {
		return nil
	}

	return r.components[idx]
}

func (r *Row) indexOf(componentType *ComponentType) int {
	for idx, component := range r.components {
		if component.ComponentType() == componentType {
			return idx
		}
	}

	return -1
}

// Storage holds the component data of all live entities of a world.
//
// Component values are copied on insert. The pointers handed out by a
// Storage stay valid until the component is replaced or removed.
type Storage struct {
	rows  *intmap.Map[EntityId, *Row]
	order []EntityId
}

func NewStorage() *Storage {
	return &Storage{
		rows: intmap.New[EntityId, *Row](256),
	}
}

// Spawn creates a new entity with the given components and returns the
// stored component values.
func (s *Storage) Spawn(entityId EntityId, components []ErasedComponent) []ErasedComponent {
	if _, exists := s.rows.Get(entityId); exists {
		panic(fmt.Sprintf("entity %s already exists", entityId))
	}

	row := &Row{id: entityId}
	s.rows.Put(entityId, row)
	s.order = append(s.order, entityId)

	for _, component := range components {
		s.insertInto(row, component)
	}

	return row.components
}

// InsertComponent adds a component to an existing entity, replacing any
// previous component of the same type. It returns the stored value.
func (s *Storage) InsertComponent(entityId EntityId, component ErasedComponent) (ErasedComponent, bool) {
	row, ok := s.rows.Get(entityId)
	if !ok {
		return nil, false
	}

	return s.insertInto(row, component), true
}

func (s *Storage) insertInto(row *Row, component ErasedComponent) ErasedComponent {
	componentType := component.ComponentType()
	stored := componentType.CopyOf(component)

	if idx := row.indexOf(componentType); idx >= 0 {
		row.components[idx] = stored
	} else {
		row.components = append(row.components, stored)
	}

	return stored
}

// RemoveComponent removes the component of the given type from the entity
// and returns the removed value.
func (s *Storage) RemoveComponent(entityId EntityId, componentType *ComponentType) (ErasedComponent, bool) {
	row, ok := s.rows.Get(entityId)
	if !ok {
		return nil, false
	}

	idx := row.indexOf(componentType)
	if idx < 0 {
		return nil, false
	}

	component := row.components[idx]
	row.components = slices.Delete(row.components, idx, idx+1)
	return component, true
}

func (s *Storage) Get(entityId EntityId) (*Row, bool) {
	return s.rows.Get(entityId)
}

func (s *Storage) HasComponent(entityId EntityId, componentType *ComponentType) bool {
	row, ok := s.rows.Get(entityId)
	return ok && row.indexOf(componentType) >= 0
}

func (s *Storage) Despawn(entityId EntityId) bool {
	if _, ok := s.rows.Get(entityId); !ok {
		return false
	}

	s.rows.Del(entityId)

	idx := slices.Index(s.order, entityId)
	if idx >= 0 {
		s.order = slices.Delete(s.order, idx, idx+1)
	}

	return true
}

func (s *Storage) EntityCount() int {
	return len(s.order)
}

// Rows iterates over all live entities in spawn order.
func (s *Storage) Rows() iter.Seq[*Row] {
	return func(yield func(*Row) bool) {
		for _, entityId := range s.order {
			row, ok := s.rows.Get(entityId)
			if !ok {
				continue
			}

			if !yield(row) {
				return
			}
		}
	}
}
