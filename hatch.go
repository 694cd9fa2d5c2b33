package hatch

import "github.com/soquel/hatch/roost"

// EntityId uniquely identifies an entity in a World.
type EntityId = roost.EntityId

// IsComponent can be used in a type parameter to ensure that type T is a Component type.
//
// To implement the IsComponent interface for a type, you must embed the Component type.
type IsComponent[T any] = roost.IsComponent[T]

// Component is a zero sized type that may be embedded into a struct to turn that
// struct into a component (see IsComponent).
type Component[T IsComponent[T]] = roost.Component[T]

// ErasedComponent indicates a type erased Component value.
//
// Values handed out by a World are usually pointers, even though the
// interface is actually implemented directly on the component type.
type ErasedComponent = roost.ErasedComponent
