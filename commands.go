package hatch

import (
	"github.com/soquel/hatch/roost"
)

type Command func(world *World)

type EntityCommand func(world *World, entityId EntityId)

// Commands queues structural changes to a world. It allows you to spawn and
// despawn entities and to add and remove components while the world is in
// the middle of applying another change, for example during hook dispatch.
//
// The queue is drained when the outermost structural mutation completes.
// Commands may queue further commands; those are applied in the same drain,
// in the order they were queued.
type Commands struct {
	world *World
	queue []Command
}

func (c *Commands) applyToWorld() {
	for len(c.queue) > 0 {
		command := c.queue[0]
		c.queue = c.queue[1:]

		command(c.world)
	}
}

func (c *Commands) Queue(command Command) *Commands {
	c.queue = append(c.queue, command)
	return c
}

func (c *Commands) Spawn(components ...ErasedComponent) EntityCommands {
	entityId := c.world.reserveEntityId()

	c.Queue(func(world *World) {
		world.spawnWithEntityId(entityId, components)
	})

	return EntityCommands{
		entityId: entityId,
		commands: c,
	}
}

func (c *Commands) Entity(entityId EntityId) EntityCommands {
	return EntityCommands{
		entityId: entityId,
		commands: c,
	}
}

type EntityCommands struct {
	entityId EntityId
	commands *Commands
}

func (e EntityCommands) Id() EntityId {
	return e.entityId
}

func (e EntityCommands) Update(commands ...EntityCommand) EntityCommands {
	e.commands.queue = append(e.commands.queue, func(world *World) {
		for _, command := range commands {
			command(world, e.entityId)
		}
	})

	return e
}

func (e EntityCommands) Insert(components ...ErasedComponent) EntityCommands {
	return e.Update(func(world *World, entityId EntityId) {
		world.insertComponents(entityId, components)
	})
}

func (e EntityCommands) Despawn() {
	e.commands.queue = append(e.commands.queue, func(world *World) {
		world.despawn(e.entityId)
	})
}

func RemoveComponent[C IsComponent[C]]() EntityCommand {
	componentType := roost.ComponentTypeOf[C]()

	return func(world *World, entityId EntityId) {
		world.removeComponent(entityId, componentType)
	}
}

func InsertComponent[C IsComponent[C]](maybeValue ...C) EntityCommand {
	if len(maybeValue) > 1 {
		panic("InsertComponent must be called with at most one argument")
	}

	var component C
	if len(maybeValue) == 1 {
		component = maybeValue[0]
	}

	return func(world *World, entityId EntityId) {
		world.insertComponents(entityId, []ErasedComponent{component})
	}
}
