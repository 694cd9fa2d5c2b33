package roost

import (
	"log/slog"
	"maps"
	"reflect"
	"sync/atomic"
)

type ComponentTypeId uint16

// ComponentType describes a registered component type. There is exactly one
// ComponentType instance per Go type, so instances can be compared and used
// as map keys directly.
type ComponentType struct {
	Name string
	Type reflect.Type
	Id   ComponentTypeId
}

func ComponentTypeOf[C IsComponent[C]]() *ComponentType {
	var zeroValue C

	//goland:noinspection GoDfaNilDereference
	return zeroValue.ComponentType()
}

// New allocates a new zero value of this component type and returns a
// pointer to it.
func (c *ComponentType) New() ErasedComponent {
	return reflect.New(c.Type).Interface().(ErasedComponent)
}

// CopyOf returns a pointer to a fresh copy of the given component value.
// The value may be provided either as a pointer or as a plain value.
func (c *ComponentType) CopyOf(value ErasedComponent) ErasedComponent {
	source := reflect.ValueOf(value)
	if source.Kind() == reflect.Pointer {
		source = source.Elem()
	}

	target := reflect.New(c.Type)
	target.Elem().Set(source)
	return target.Interface().(ErasedComponent)
}

func (c *ComponentType) String() string {
	return c.Name
}

var componentTypes atomic.Pointer[map[reflect.Type]*ComponentType]

func init() {
	// initialize the lookup table
	componentTypes.Store(&map[reflect.Type]*ComponentType{})
}

func componentTypeOf[C IsComponent[C]]() *ComponentType {
	reflectType := reflect.TypeFor[C]()

	for {
		previousTypes := componentTypes.Load()
		if cached, ok := (*previousTypes)[reflectType]; ok {
			return cached
		}

		newType := &ComponentType{
			Id:   ComponentTypeId(len(*previousTypes) + 1),
			Type: reflectType,
			Name: reflectType.String(),
		}

		newTypes := maps.Clone(*previousTypes)
		newTypes[reflectType] = newType

		if componentTypes.CompareAndSwap(previousTypes, &newTypes) {
			slog.Debug(
				"New component type registered",
				slog.String("name", newType.Name),
				slog.Int("id", int(newType.Id)),
			)

			return newType
		}
	}
}
