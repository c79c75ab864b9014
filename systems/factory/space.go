package factory

import (
	"github.com/automoto/shawarma/archetypes"
	"github.com/automoto/shawarma/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the broadphase grid over the screen.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the world's space, if there is one.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// newObject creates a square broadphase object of size world units centered
// on the entity position.
func newObject(ecs *ecs.ECS, e *donburi.Entry, size float64, tags ...string) components.ObjectData {
	vp := Viewport(ecs)
	px := size * vp.PixelsPerUnit()
	obj := resolv.NewObject(0, 0, px, px, tags...)
	obj.Data = e

	data := components.ObjectData{Object: obj}
	components.Object.SetValue(e, data)
	data.CenterOn(vp, components.Transform.Get(e).Position)
	addToSpace(ecs, obj)
	return data
}
