package archetypes

import (
	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Animation,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Transform,
		components.Object,
		components.Sprite,
	)
	Adversary = newArchetype(
		tags.Adversary,
		components.Adversary,
		components.Transform,
		components.Health,
		components.Object,
		components.Sprite,
		components.Flash,
	)
	Station = newArchetype(
		tags.Station,
		components.Station,
		components.Transform,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Display = newArchetype(
		components.Display,
	)
	Tester = newArchetype(
		components.Tester,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
