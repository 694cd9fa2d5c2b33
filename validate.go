package hatch

import (
	"fmt"

	"github.com/soquel/hatch/roost"
)

// ValidateComponent should be called to verify that the IsComponent
// interface is correctly implemented.
//
//	type Position struct {
//	   Component[Position]
//	   X, Y float64
//	}
//
//	var _ = ValidateComponent[Position]()
//
// This identifies mistakes in the type passed to Component during compile
// time and checks that relationship components form a consistent pair.
func ValidateComponent[C IsComponent[C]]() struct{} {
	componentType := roost.ComponentTypeOf[C]()
	instance := componentType.New()

	if target, ok := instance.(isRelationshipTarget); ok {
		// check if the relationship type points back to us
		relationType := target.RelationshipType()

		relation, ok := relationType.New().(isRelationship)
		if !ok {
			panic(fmt.Sprintf(
				"relationship of %s must point to a component embedding hatch.Relationship",
				componentType,
			))
		}

		if relation.RelationshipTargetType() != componentType {
			panic(fmt.Sprintf(
				"relationship of %s must point to %s",
				relationType, componentType,
			))
		}
	}

	if relation, ok := instance.(isRelationship); ok {
		// check if the target type points back to us
		targetType := relation.RelationshipTargetType()

		target, ok := targetType.New().(isRelationshipTarget)
		if !ok {
			panic(fmt.Sprintf(
				"relationship target of %s must point to a component embedding hatch.RelationshipTarget",
				componentType,
			))
		}

		if target.RelationshipType() != componentType {
			panic(fmt.Sprintf(
				"relationship target of %s must point to %s",
				targetType, componentType,
			))
		}
	}

	return struct{}{}
}
