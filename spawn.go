package hatch

import (
	"iter"
	"slices"

	"github.com/soquel/hatch/roost"
)

var _ = ValidateComponent[WithChild]()
var _ = ValidateComponent[WithChildren]()

// WithChild, when added to an entity, spawns a single child entity below it.
//
// The component does not survive its own insertion: the world removes it
// again in the same flush and moves the wrapped bundle onto the newly
// spawned child. The child is linked to its parent through the usual
// ChildOf and Children components, so despawn cascades and other code
// walking the hierarchy treat it like any manually spawned child.
//
//	world.Spawn(
//	    Named("parent"),
//	    SpawnChild(Named("child"), Position{X: 1}),
//	)
//
// A child bundle may itself contain a WithChild or WithChildren component,
// which spawns grandchildren in the same flush.
//
// See WithChildren for spawning any number of children of the same shape.
type WithChild struct {
	Component[WithChild]
	payload *oneShot[[]ErasedComponent]
}

// SpawnChild wraps the given components into a WithChild component. The
// components are moved into the child entity when the component is inserted.
func SpawnChild(components ...ErasedComponent) WithChild {
	return WithChild{payload: newOneShot(components)}
}

// WithChildren is the many-children variant of WithChild: added to an
// entity, it spawns one child entity per element of the wrapped sequence,
// in sequence order, and is removed again in the same flush.
//
// An empty sequence is fine and spawns no children at all.
type WithChildren struct {
	Component[WithChildren]
	payload *oneShot[iter.Seq[ErasedComponent]]
}

// SpawnChildren wraps the given child descriptions into a WithChildren
// component. Each argument describes one child; use Bundle to give a child
// more than one component.
func SpawnChildren(bundles ...ErasedComponent) WithChildren {
	return SpawnChildrenFrom(slices.Values(bundles))
}

// SpawnChildrenFrom is the generator form of SpawnChildren. The sequence is
// consumed exactly once, in order, when the component is inserted. It must
// be finite.
func SpawnChildrenFrom(seq iter.Seq[ErasedComponent]) WithChildren {
	return WithChildren{payload: newOneShot(seq)}
}

func registerSpawnHooks(w *World) {
	OnInsert[WithChild](w, withChildHook)
	OnInsert[WithChildren](w, withChildrenHook)
}

// withChildHook runs whenever a WithChild component is added to an entity.
//
// Hooks may not perform structural changes themselves, so the actual spawn
// is queued as a command.
func withChildHook(commands *Commands, entityId EntityId, _ ErasedComponent) {
	commands.Queue(func(world *World) {
		taken, ok := world.takeComponent(entityId, roost.ComponentTypeOf[WithChild]())
		if !ok {
			return
		}

		bundle, ok := taken.(*WithChild).payload.take()
		if !ok {
			// payload was already consumed, nothing left to spawn
			return
		}

		world.spawnChild(entityId, bundle)
	})
}

// withChildrenHook runs whenever a WithChildren component is added to an
// entity. Children are spawned in sequence order, which also determines
// their order in the parent's Children component.
func withChildrenHook(commands *Commands, entityId EntityId, _ ErasedComponent) {
	commands.Queue(func(world *World) {
		taken, ok := world.takeComponent(entityId, roost.ComponentTypeOf[WithChildren]())
		if !ok {
			return
		}

		seq, ok := taken.(*WithChildren).payload.take()
		if !ok {
			return
		}

		for bundle := range seq {
			world.spawnChild(entityId, []ErasedComponent{bundle})
		}
	})
}

func (w *World) spawnChild(parentId EntityId, bundle []ErasedComponent) EntityId {
	components := append(bundle, ChildOf{Parent: parentId})
	return w.spawnWithEntityId(w.reserveEntityId(), components)
}
