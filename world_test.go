package hatch

import (
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

type Position struct {
	Component[Position]
	X, Y float64
}

type Player struct {
	Component[Player]
}

type Marker struct {
	Component[Marker]
	Value string
}

type Ordinal struct {
	Component[Ordinal]
	N int
}

var _ = ValidateComponent[Position]()
var _ = ValidateComponent[Player]()
var _ = ValidateComponent[Marker]()
var _ = ValidateComponent[Ordinal]()

func TestSpawnAndLookup(t *testing.T) {
	w := NewWorld()

	id := w.Spawn(Named("player"), Player{}, Position{X: 1, Y: 2})

	require.Equal(t, 1, w.EntityCount())
	require.True(t, HasComponent[Player](w, id))
	require.False(t, HasComponent[Marker](w, id))

	pos, ok := ComponentOf[Position](w, id)
	require.True(t, ok)
	require.Equal(t, Position{X: 1, Y: 2}, *pos)

	name, ok := ComponentOf[Name](w, id)
	require.True(t, ok)
	require.Equal(t, "player", name.String())
}

func TestInsertReplacesComponent(t *testing.T) {
	w := NewWorld()

	id := w.Spawn(Position{X: 1})
	w.Insert(id, Position{X: 5})

	pos, ok := ComponentOf[Position](w, id)
	require.True(t, ok)
	require.Equal(t, 5.0, pos.X)
}

func TestRemoveComponentCommand(t *testing.T) {
	w := NewWorld()

	id := w.Spawn(Player{}, Position{X: 1})

	w.RunCommands(func(commands *Commands) {
		commands.Entity(id).Update(RemoveComponent[Position]())
	})

	require.False(t, HasComponent[Position](w, id))
	require.True(t, HasComponent[Player](w, id))
}

func TestEntitiesWithIteratesInSpawnOrder(t *testing.T) {
	w := NewWorld()

	first := w.Spawn(Ordinal{N: 1})
	w.Spawn(Player{})
	second := w.Spawn(Ordinal{N: 2})

	var ids []EntityId
	var values []int
	for id, ordinal := range EntitiesWith[Ordinal](w) {
		ids = append(ids, id)
		values = append(values, ordinal.N)
	}

	require.Equal(t, []EntityId{first, second}, ids)
	require.Equal(t, []int{1, 2}, values)
}

func TestBundleFlattening(t *testing.T) {
	w := NewWorld()

	id := w.Spawn(Bundle(
		Player{},
		Bundle(Position{X: 3}),
	))

	require.True(t, HasComponent[Player](w, id))

	pos, ok := ComponentOf[Position](w, id)
	require.True(t, ok)
	require.Equal(t, 3.0, pos.X)
}

func TestDuplicateComponentsCollapse(t *testing.T) {
	w := NewWorld()

	// the first occurrence of a component type wins
	id := w.Spawn(Marker{Value: "first"}, Marker{Value: "second"})

	marker, ok := ComponentOf[Marker](w, id)
	require.True(t, ok)
	require.Equal(t, "first", marker.Value)
}

func TestCommandsSpawnAndDespawn(t *testing.T) {
	w := NewWorld()

	var id EntityId
	w.RunCommands(func(commands *Commands) {
		id = commands.Spawn(Player{}, Position{}).Id()
	})

	require.True(t, HasComponent[Player](w, id))

	w.RunCommands(func(commands *Commands) {
		commands.Entity(id).Despawn()
	})

	require.Equal(t, 0, w.EntityCount())
}

func TestResources(t *testing.T) {
	type SpawnStats struct {
		Spawned int
	}

	w := NewWorld()

	_, ok := ResourceOf[SpawnStats](w)
	require.False(t, ok)

	w.InsertResource(SpawnStats{Spawned: 1})

	stats, ok := ResourceOf[SpawnStats](w)
	require.True(t, ok)
	require.Equal(t, 1, stats.Spawned)

	// updating keeps the original allocation
	w.InsertResource(SpawnStats{Spawned: 2})
	require.Equal(t, 2, stats.Spawned)

	w.RemoveResource(reflect.TypeFor[SpawnStats]())
	_, ok = ResourceOf[SpawnStats](w)
	require.False(t, ok)
}

func TestEntitiesWithCollects(t *testing.T) {
	w := NewWorld()

	w.Spawn(Marker{Value: "a"})
	w.Spawn(Marker{Value: "b"})

	var values []string
	for _, marker := range EntitiesWith[Marker](w) {
		values = append(values, marker.Value)
	}

	require.True(t, slices.Equal([]string{"a", "b"}, values))
}
