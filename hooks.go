package hatch

import (
	"github.com/soquel/hatch/roost"
)

// ComponentHook is invoked by the world right after a component of the
// registered type was added to, or removed from, an entity.
//
// Hooks run while the world may still be applying structural changes. A hook
// must not mutate the world directly, all mutation has to go through the
// provided Commands value. The component passed to the hook is the stored
// value.
type ComponentHook func(commands *Commands, entityId EntityId, component ErasedComponent)

type hookRegistry struct {
	onInsert map[*roost.ComponentType][]ComponentHook
	onRemove map[*roost.ComponentType][]ComponentHook
}

func newHookRegistry() hookRegistry {
	return hookRegistry{
		onInsert: map[*roost.ComponentType][]ComponentHook{},
		onRemove: map[*roost.ComponentType][]ComponentHook{},
	}
}

// OnInsert registers a hook that is invoked whenever a component of type C
// is added to an entity of the given world. An entity receiving the same
// component type again also counts as an insertion.
func OnInsert[C IsComponent[C]](w *World, hook ComponentHook) {
	componentType := roost.ComponentTypeOf[C]()
	w.hooks.onInsert[componentType] = append(w.hooks.onInsert[componentType], hook)
}

// OnRemove registers a hook that is invoked whenever a component of type C
// is removed from an entity of the given world, including removals that are
// part of a despawn.
func OnRemove[C IsComponent[C]](w *World, hook ComponentHook) {
	componentType := roost.ComponentTypeOf[C]()
	w.hooks.onRemove[componentType] = append(w.hooks.onRemove[componentType], hook)
}
