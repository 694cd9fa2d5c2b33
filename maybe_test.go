package hatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaybeBundle(t *testing.T) {
	w := NewWorld()

	id := w.Spawn(Named("x"), MaybeBundle(Position{X: 1}, Player{}))

	require.False(t, HasComponent[Maybe](w, id))
	require.True(t, HasComponent[Player](w, id))

	pos, ok := ComponentOf[Position](w, id)
	require.True(t, ok)
	require.Equal(t, 1.0, pos.X)
}

func TestMaybeNone(t *testing.T) {
	w := NewWorld()

	id := w.Spawn(Named("y"), MaybeNone())

	require.False(t, HasComponent[Maybe](w, id))
	require.False(t, HasComponent[Position](w, id))

	// only Name remains
	require.Equal(t, 1, w.EntityCount())
}

func TestMaybeWithDeferredChild(t *testing.T) {
	w := NewWorld()

	// a Maybe may carry a deferred child component, spawning the child
	// once the Maybe is flattened
	parent := w.Spawn(MaybeBundle(SpawnChild(Marker{Value: "leaf"})))

	require.False(t, HasComponent[Maybe](w, parent))
	require.False(t, HasComponent[WithChild](w, parent))

	children := ChildrenOf(w, parent)
	require.Len(t, children, 1)

	marker, _ := ComponentOf[Marker](w, children[0])
	require.Equal(t, "leaf", marker.Value)
}
