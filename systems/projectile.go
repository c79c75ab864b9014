package systems

import (
	"github.com/automoto/shawarma/components"
	"github.com/automoto/shawarma/shared/gamemath"
	"github.com/automoto/shawarma/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StepProjectiles moves every live shot by one fixed step.
func StepProjectiles(ecs *ecs.ECS) {
	dt := GetClock(ecs).FixedDelta
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		proj := components.Projectile.Get(e)
		if proj.State != components.ProjectileActive {
			return
		}
		transform := components.Transform.Get(e)
		transform.Velocity = gamemath.Scale(proj.Direction, proj.Speed)
		transform.Position = gamemath.Add(transform.Position, gamemath.Scale(transform.Velocity, dt))
	})
}

// UpdateProjectiles counts down lifetimes on frame time and resolves hits
// against the adversary. Expired and consumed shots are removed.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := GetClock(ecs).Delta
	var toRemove []*donburi.Entry

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		proj := components.Projectile.Get(e)
		if proj.State != components.ProjectileActive {
			toRemove = append(toRemove, e)
			return
		}

		proj.Remaining -= dt
		if proj.Remaining <= 0 {
			proj.State = components.ProjectileExpired
			toRemove = append(toRemove, e)
			return
		}

		if target := findProjectileHit(e, proj); target != nil {
			proj.State = components.ProjectileConsumed
			toRemove = append(toRemove, e)
			HitAdversary(ecs, target)
		}
	})

	for _, e := range toRemove {
		destroyEntity(ecs, e)
	}
}

// findProjectileHit returns the first adversary whose circle overlaps the
// shot. The space narrows the candidates; the circle test decides.
func findProjectileHit(e *donburi.Entry, proj *components.ProjectileData) *donburi.Entry {
	obj := components.Object.Get(e)
	if obj.Object == nil || obj.Space == nil {
		return nil
	}
	check := obj.Check(0, 0, tags.ResolvAdversary)
	if check == nil {
		return nil
	}

	pos := components.Transform.Get(e).Position
	for _, other := range check.ObjectsByTags(tags.ResolvAdversary) {
		target, ok := other.Data.(*donburi.Entry)
		if !ok || target == nil || !target.Valid() {
			continue
		}
		adversary := components.Adversary.Get(target)
		targetPos := components.Transform.Get(target).Position
		if gamemath.Distance(pos, targetPos) < proj.Radius+adversary.Radius {
			return target
		}
	}
	return nil
}
