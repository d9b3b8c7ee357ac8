package scene

import (
	"github.com/Faultbox/softraster/internal/engine/component"
	"github.com/Faultbox/softraster/internal/engine/model"
	"github.com/Faultbox/softraster/internal/engine/transform"
)

// Object is a posed entity carrying components.
type Object struct {
	Name       string
	Transform  *transform.Transform
	Components component.Store
}

// NewObject creates an object at the origin with no components.
func NewObject(name string) *Object {
	return &Object{
		Name:      name,
		Transform: transform.New(),
	}
}

// NewMeshObject creates an object with a mesh and a tint attached.
func NewMeshObject(name string, mesh *model.Mesh, tint model.Tint) *Object {
	obj := NewObject(name)
	component.AddComponent(&obj.Components, mesh)
	component.AddComponent(&obj.Components, &tint)
	return obj
}

// Mesh returns the object's mesh component, if any.
func (o *Object) Mesh() (*model.Mesh, bool) {
	return component.GetComponent[*model.Mesh](&o.Components)
}

// Tint returns the object's tint component, if any.
func (o *Object) Tint() (*model.Tint, bool) {
	return component.GetComponent[*model.Tint](&o.Components)
}
