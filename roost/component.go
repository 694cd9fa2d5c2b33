package roost

type isComponentMarker struct{}

// ErasedComponent is a type erased component value.
//
// Values handed out by a Storage are always pointers to the component
// struct, even though the interface is implemented directly on the
// component type.
type ErasedComponent interface {
	ComponentType() *ComponentType
	isComponent(isComponentMarker)
}

// IsComponent can be used in a type parameter to ensure that type T is a
// component type. To implement it, embed Component into your struct.
type IsComponent[T any] interface {
	ErasedComponent
	IsComponent(T)
}

// Component is a zero sized type that may be embedded into a struct to
// turn that struct into a component.
//
//	type Position struct {
//	    Component[Position]
//	    X, Y float64
//	}
type Component[C IsComponent[C]] struct{}

func (Component[C]) IsComponent(C) {}

func (Component[C]) isComponent(isComponentMarker) {}

func (Component[C]) ComponentType() *ComponentType {
	return componentTypeOf[C]()
}
