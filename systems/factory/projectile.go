package factory

import (
	"github.com/automoto/shawarma/archetypes"
	"github.com/automoto/shawarma/assets"
	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/shared/gamemath"
	"github.com/automoto/shawarma/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns a shot at pos traveling along dir. The direction
// is normalized here and never changes afterwards; a zero direction gives a
// shot that stays put until it expires.
func CreateProjectile(ecs *ecs.ECS, pos, dir math2.Vec2, speed, lifetime float64) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	components.Transform.SetValue(p, components.TransformData{Position: pos})
	components.Projectile.SetValue(p, components.ProjectileData{
		Direction: gamemath.Normalize(dir),
		Speed:     speed,
		Remaining: lifetime,
		Radius:    cfg.Projectile.Radius,
	})

	newObject(ecs, p, 2*cfg.Projectile.Radius, tags.ResolvProjectile)

	components.Sprite.SetValue(p, components.SpriteData{
		Key:  assets.SpriteProjectile,
		Size: 2 * cfg.Projectile.Radius,
	})

	return p
}
