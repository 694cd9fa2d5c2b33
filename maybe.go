package hatch

import (
	"github.com/soquel/hatch/roost"
)

var _ = ValidateComponent[Maybe]()

// Maybe wraps an optional bundle. When added to an entity the component is
// removed again and, if it was populated, replaced with its contents.
//
// This makes it possible to include a component conditionally when building
// up a bundle:
//
//	maybeBoost := MaybeNone()
//	if boosted {
//	    maybeBoost = MaybeBundle(Boost{Factor: 2})
//	}
//	world.Spawn(Named("player"), maybeBoost)
type Maybe struct {
	Component[Maybe]
	payload *oneShot[[]ErasedComponent]
}

// MaybeBundle creates a populated Maybe component.
func MaybeBundle(components ...ErasedComponent) Maybe {
	return Maybe{payload: newOneShot(components)}
}

// MaybeNone creates an empty Maybe component. Inserting it has no effect
// beyond the component being removed again.
func MaybeNone() Maybe {
	return Maybe{}
}

func registerMaybeHook(w *World) {
	OnInsert[Maybe](w, maybeHook)
}

func maybeHook(commands *Commands, entityId EntityId, _ ErasedComponent) {
	commands.Queue(func(world *World) {
		taken, ok := world.takeComponent(entityId, roost.ComponentTypeOf[Maybe]())
		if !ok {
			return
		}

		components, ok := taken.(*Maybe).payload.take()
		if !ok || len(components) == 0 {
			return
		}

		world.insertComponents(entityId, components)
	})
}
