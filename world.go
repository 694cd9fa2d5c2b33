package hatch

import (
	"fmt"
	"reflect"

	"github.com/soquel/hatch/roost"
)

const NoEntityId = EntityId(0)

type AnyPtr = any

type resourceValue struct {
	// Value is of kind Pointer and points to the value of the resource.
	Value reflect.Value
}

// World holds all entities and resources.
//
// Structural changes triggered indirectly, for example by component hooks,
// are queued as commands and applied when the outermost mutation completes.
type World struct {
	storage     *roost.Storage
	entityIdSeq EntityId
	resources   map[reflect.Type]resourceValue
	hooks       hookRegistry
	commands    Commands

	// mutationDepth counts nested structural mutations. Queued commands
	// are applied once it drops back to zero.
	mutationDepth int
}

// NewWorld creates a new empty world. The hooks driving SpawnChild,
// SpawnChildren and Maybe are registered right away.
func NewWorld() *World {
	w := &World{
		storage:   roost.NewStorage(),
		resources: map[reflect.Type]resourceValue{},
		hooks:     newHookRegistry(),
	}

	w.commands.world = w

	registerSpawnHooks(w)
	registerMaybeHook(w)

	return w
}

func (w *World) beginMutation() {
	w.mutationDepth += 1
}

func (w *World) endMutation() {
	w.mutationDepth -= 1

	if w.mutationDepth == 0 {
		w.commands.applyToWorld()
	}
}

// Spawn spawns a new entity with the given components.
func (w *World) Spawn(components ...ErasedComponent) EntityId {
	w.beginMutation()
	defer w.endMutation()

	return w.spawnWithEntityId(w.reserveEntityId(), components)
}

// Insert adds the given components to an existing entity. Components the
// entity already has are replaced.
func (w *World) Insert(entityId EntityId, components ...ErasedComponent) {
	w.beginMutation()
	defer w.endMutation()

	w.insertComponents(entityId, components)
}

// Despawn recursively despawns the given entity following Children relations.
func (w *World) Despawn(entityId EntityId) {
	w.beginMutation()
	defer w.endMutation()

	w.despawn(entityId)
}

// RunCommands gives fn access to the world's command queue. Queued commands
// are applied before RunCommands returns.
func (w *World) RunCommands(fn func(commands *Commands)) {
	w.beginMutation()
	defer w.endMutation()

	fn(&w.commands)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.storage.EntityCount()
}

func (w *World) reserveEntityId() EntityId {
	w.entityIdSeq += 1
	return w.entityIdSeq
}

func (w *World) spawnWithEntityId(entityId EntityId, components []ErasedComponent) EntityId {
	if entityId == NoEntityId {
		entityId = w.reserveEntityId()
	}

	components = w.prepareComponents(components)

	stored := w.storage.Spawn(entityId, components)
	w.onComponentsInsert(entityId, stored)

	return entityId
}

func (w *World) insertComponents(entityId EntityId, components []ErasedComponent) {
	components = w.prepareComponents(components)

	for _, component := range components {
		stored, ok := w.storage.InsertComponent(entityId, component)
		if !ok {
			fmt.Printf("[warn] cannot insert %s into entity %s: entity does not exist\n",
				component.ComponentType(), entityId)
			return
		}

		w.onComponentInsert(entityId, stored)
	}
}

func (w *World) prepareComponents(components []ErasedComponent) []ErasedComponent {
	queue := flattenComponents(nil, components...)

	var collected []ErasedComponent
	seen := map[*roost.ComponentType]struct{}{}

	for _, component := range queue {
		componentType := component.ComponentType()

		// skip later duplicates of the same component type
		if _, exists := seen[componentType]; exists {
			continue
		}

		seen[componentType] = struct{}{}

		// must not be inserted if it is a relationship target
		if _, ok := component.(isRelationshipTargetValue); ok {
			panic(fmt.Sprintf(
				"you may not insert a hatch.RelationshipTarget yourself: %T", component,
			))
		}

		collected = append(collected, component)
	}

	return collected
}

func (w *World) onComponentsInsert(entityId EntityId, components []ErasedComponent) {
	for _, component := range components {
		w.onComponentInsert(entityId, component)
	}
}

func (w *World) onComponentInsert(entityId EntityId, component ErasedComponent) {
	if targetComponent, targetId, targetType, ok := w.relationshipTargetOf(component); ok {
		if targetComponent == nil {
			// create a new instance of the component
			targetComponent = targetType.New().(isRelationshipTarget)
		} else {
			// create a copy of the component
			targetComponent = copyComponent(targetComponent).(isRelationshipTarget)
		}

		// add the child to the relationship target
		targetComponent.addChild(entityId)

		// and replace its value by inserting it again
		w.storage.InsertComponent(targetId, targetComponent)
	}

	for _, hook := range w.hooks.onInsert[component.ComponentType()] {
		hook(&w.commands, entityId, component)
	}
}

func (w *World) onComponentRemoved(entityId EntityId, component ErasedComponent) {
	w.removeEntityFromRelationshipTargetOf(entityId, component)

	for _, hook := range w.hooks.onRemove[component.ComponentType()] {
		hook(&w.commands, entityId, component)
	}
}

func (w *World) removeEntityFromRelationshipTargetOf(entityId EntityId, component ErasedComponent) {
	if targetComponent, targetId, _, ok := w.relationshipTargetOf(component); ok && targetComponent != nil {
		children := targetComponent.Children()

		if len(children) == 1 && children[0] == entityId {
			// would need to remove the last element.
			// in that case, we can just remove the component itself
			w.storage.RemoveComponent(targetId, targetComponent.ComponentType())
		} else {
			// create a copy of the component without the child
			targetComponent = copyComponent(targetComponent).(isRelationshipTarget)
			targetComponent.removeChild(entityId)

			// and replace its value by inserting it again
			w.storage.InsertComponent(targetId, targetComponent)
		}
	}
}

func (w *World) relationshipTargetOf(component ErasedComponent) (isRelationshipTarget, EntityId, *roost.ComponentType, bool) {
	child, ok := component.(isRelationship)
	if !ok {
		return nil, 0, nil, false
	}

	targetId := child.RelationshipEntityId()

	targetRow, ok := w.storage.Get(targetId)
	if !ok {
		panic(fmt.Sprintf("parent entity %s does not exist", targetId))
	}

	targetType := child.RelationshipTargetType()
	targetComponentValue := targetRow.Get(targetType)
	if targetComponentValue != nil {
		return targetComponentValue.(isRelationshipTarget), targetId, targetType, true
	}

	// there is no component in the parent yet
	return nil, targetId, targetType, true
}

func (w *World) removeComponent(entityId EntityId, componentType *roost.ComponentType) {
	component, ok := w.storage.RemoveComponent(entityId, componentType)
	if !ok {
		return
	}

	w.onComponentRemoved(entityId, component)
}

// takeComponent removes the component of the given type from the entity and
// returns it. It warns if the entity no longer exists.
func (w *World) takeComponent(entityId EntityId, componentType *roost.ComponentType) (ErasedComponent, bool) {
	if _, ok := w.storage.Get(entityId); !ok {
		fmt.Printf("[warn] cannot take %s: entity %s does not exist\n", componentType, entityId)
		return nil, false
	}

	component, ok := w.storage.RemoveComponent(entityId, componentType)
	if !ok {
		return nil, false
	}

	w.onComponentRemoved(entityId, component)
	return component, true
}

func (w *World) despawn(entityId EntityId) {
	queue := []EntityId{entityId}

	for idx := 0; idx < len(queue); idx++ {
		entityId = queue[idx]

		row, ok := w.storage.Get(entityId)
		if !ok {
			fmt.Printf("[warn] cannot despawn entity %s: does not exist\n", entityId)
			continue
		}

		// update relationships
		for _, component := range row.Components() {
			w.onComponentRemoved(entityId, component)

			// despawn child entities too
			if targetComponent, ok := component.(isRelationshipTarget); ok {
				queue = append(queue, targetComponent.Children()...)
			}
		}
	}

	for _, entityId := range queue {
		w.storage.Despawn(entityId)
	}
}

// InsertResource inserts a new resource into the world.
// The resource should be provided as a non-pointer type.
//
// If the resource does not yet exist, a new value of the resources type will
// be allocated on the heap and the value provided will be copied into that
// memory location.
//
// If the world already contains a resource of the same type, this value will
// just be updated with the newly provided one.
func (w *World) InsertResource(resource any) {
	resType := reflect.PointerTo(reflect.TypeOf(resource))

	if existing, ok := w.resources[resType]; ok {
		// update existing value in place
		existing.Value.Elem().Set(reflect.ValueOf(resource))
		return
	}

	// allocate the resource on the heap and copy the provided value to it
	ptr := reflect.New(resType.Elem())
	ptr.Elem().Set(reflect.ValueOf(resource))

	w.resources[ptr.Type()] = resourceValue{
		Value: ptr,
	}
}

// RemoveResource removes a resource previously added with InsertResource.
func (w *World) RemoveResource(resourceType reflect.Type) {
	resType := reflect.PointerTo(resourceType)
	delete(w.resources, resType)
}

// Resource returns a pointer to the resource of the given reflect type.
// The type must be the non-pointer type of the resource, i.e. the type of the
// resource as it was passed to InsertResource.
func (w *World) Resource(ty reflect.Type) (AnyPtr, bool) {
	resValue, ok := w.resources[reflect.PointerTo(ty)]
	if !ok {
		return nil, false
	}

	return resValue.Value.Interface(), true
}

// ResourceOf is a typed version of World.Resource.
func ResourceOf[T any](w *World) (*T, bool) {
	value, ok := w.Resource(reflect.TypeFor[T]())
	if !ok {
		return nil, false
	}

	return value.(*T), true
}

func copyComponent(value ErasedComponent) ErasedComponent {
	return value.ComponentType().CopyOf(value)
}
