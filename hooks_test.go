package hatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type Flag struct {
	Component[Flag]
}

var _ = ValidateComponent[Flag]()

func TestOnInsertHook(t *testing.T) {
	w := NewWorld()

	var insertions []EntityId
	OnInsert[Flag](w, func(commands *Commands, entityId EntityId, component ErasedComponent) {
		require.IsType(t, &Flag{}, component)
		insertions = append(insertions, entityId)
	})

	id := w.Spawn(Flag{})
	require.Equal(t, []EntityId{id}, insertions)

	// replacing the component counts as an insertion again
	w.Insert(id, Flag{})
	require.Equal(t, []EntityId{id, id}, insertions)

	// other component types do not trigger the hook
	w.Spawn(Player{})
	require.Len(t, insertions, 2)
}

func TestOnRemoveHook(t *testing.T) {
	w := NewWorld()

	var removals []EntityId
	OnRemove[Flag](w, func(commands *Commands, entityId EntityId, component ErasedComponent) {
		removals = append(removals, entityId)
	})

	id := w.Spawn(Flag{})
	require.Empty(t, removals)

	w.RunCommands(func(commands *Commands) {
		commands.Entity(id).Update(RemoveComponent[Flag]())
	})

	require.Equal(t, []EntityId{id}, removals)

	// removal as part of a despawn triggers the hook too
	other := w.Spawn(Flag{})
	w.Despawn(other)
	require.Equal(t, []EntityId{id, other}, removals)
}

func TestHookCommandsApplyInSameFlush(t *testing.T) {
	w := NewWorld()

	OnInsert[Flag](w, func(commands *Commands, entityId EntityId, component ErasedComponent) {
		commands.Entity(entityId).Insert(Marker{Value: "hooked"})
	})

	id := w.Spawn(Flag{})

	marker, ok := ComponentOf[Marker](w, id)
	require.True(t, ok)
	require.Equal(t, "hooked", marker.Value)
}

func TestHookRunsOncePerComponentInstance(t *testing.T) {
	w := NewWorld()

	var count int
	OnInsert[Flag](w, func(commands *Commands, entityId EntityId, component ErasedComponent) {
		count++
	})

	w.Spawn(Flag{}, Player{}, Position{})
	require.Equal(t, 1, count)
}
