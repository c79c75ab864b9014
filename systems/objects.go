package systems

import (
	"github.com/automoto/shawarma/components"
	"github.com/automoto/shawarma/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every broadphase object onto its entity's position.
func UpdateObjects(ecs *ecs.ECS) {
	vp := factory.Viewport(ecs)
	for e := range components.Object.Iter(ecs.World) {
		if !e.HasComponent(components.Transform) {
			continue
		}
		components.Object.Get(e).CenterOn(vp, components.Transform.Get(e).Position)
	}
}

// destroyEntity removes e from the world together with its broadphase object.
func destroyEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
