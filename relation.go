package hatch

import (
	"slices"

	"github.com/soquel/hatch/roost"
)

var _ = ValidateComponent[Children]()
var _ = ValidateComponent[ChildOf]()

type isRelationship interface {
	ErasedComponent
	RelationshipTargetType() *roost.ComponentType
	RelationshipEntityId() EntityId
}

type isRelationshipTarget interface {
	ErasedComponent
	RelationshipType() *roost.ComponentType
	Children() []EntityId
	addChild(id EntityId)
	removeChild(id EntityId)
}

type relationshipMarker struct{}

// isRelationshipTargetValue is implemented by relationship target components
// in both value and pointer form. The world uses it to reject components
// embedding RelationshipTarget no matter how they are passed in.
type isRelationshipTargetValue interface {
	isRelationshipTarget(relationshipMarker)
}

// Relationship must be embedded on the child side of a relationship.
type Relationship[Target IsComponent[Target]] struct{}

func (Relationship[Target]) RelationshipTargetType() *roost.ComponentType {
	return roost.ComponentTypeOf[Target]()
}

// RelationshipTarget must be embedded on the parent side of a relationship.
// The world maintains components embedding it, they may not be inserted
// directly.
type RelationshipTarget[R IsComponent[R]] struct {
	_children []EntityId
}

func (*RelationshipTarget[R]) RelationshipType() *roost.ComponentType {
	return roost.ComponentTypeOf[R]()
}

func (RelationshipTarget[R]) isRelationshipTarget(relationshipMarker) {}

func (t *RelationshipTarget[R]) addChild(childId EntityId) {
	t._children = append(t._children, childId)
}

func (t *RelationshipTarget[R]) removeChild(childId EntityId) {
	idx := slices.Index(t._children, childId)
	if idx >= 0 {
		t._children = slices.Delete(t._children, idx, idx+1)
	}
}

// Children returns the children in this component.
// You **must not** modify the returned slice.
func (t *RelationshipTarget[R]) Children() []EntityId {
	return t._children
}

// ChildOf places the entity it is inserted on below a parent entity. The
// world mirrors the relation into the parent's Children component.
type ChildOf struct {
	Component[ChildOf]
	Relationship[Children]
	Parent EntityId
}

func (c ChildOf) RelationshipEntityId() EntityId {
	return c.Parent
}

// Children lists the child entities of an entity, in the order the ChildOf
// relations were inserted.
type Children struct {
	Component[Children]
	RelationshipTarget[ChildOf]
}
