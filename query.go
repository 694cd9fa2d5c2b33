package hatch

import (
	"iter"

	"github.com/soquel/hatch/roost"
)

// ComponentOf returns a pointer to the component of type C of the given
// entity. The pointer stays valid until the component is replaced or
// removed.
func ComponentOf[C IsComponent[C]](w *World, entityId EntityId) (*C, bool) {
	row, ok := w.storage.Get(entityId)
	if !ok {
		return nil, false
	}

	value := row.Get(roost.ComponentTypeOf[C]())
	if value == nil {
		return nil, false
	}

	return any(value).(*C), true
}

// HasComponent reports whether the given entity has a component of type C.
func HasComponent[C IsComponent[C]](w *World, entityId EntityId) bool {
	return w.storage.HasComponent(entityId, roost.ComponentTypeOf[C]())
}

// EntitiesWith iterates over all entities carrying a component of type C,
// in spawn order. The world must not be structurally modified while
// iterating.
func EntitiesWith[C IsComponent[C]](w *World) iter.Seq2[EntityId, *C] {
	componentType := roost.ComponentTypeOf[C]()

	return func(yield func(EntityId, *C) bool) {
		for row := range w.storage.Rows() {
			value := row.Get(componentType)
			if value == nil {
				continue
			}

			if !yield(row.Id(), any(value).(*C)) {
				return
			}
		}
	}
}

// ChildrenOf returns the child entities of the given entity in hierarchy
// order. It returns nil if the entity has no children.
// You **must not** modify the returned slice.
func ChildrenOf(w *World, entityId EntityId) []EntityId {
	children, ok := ComponentOf[Children](w, entityId)
	if !ok {
		return nil
	}

	return children.Children()
}
