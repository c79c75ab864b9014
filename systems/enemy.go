package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/shared/gamemath"
	"github.com/automoto/shawarma/systems/factory"
	"github.com/automoto/shawarma/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdateAdversary scans for nearby shots and picks this frame's velocity:
// away from the nearest threat, or along the current wander heading.
func UpdateAdversary(ecs *ecs.ECS) {
	dt := GetClock(ecs).Delta

	tags.Adversary.Each(ecs.World, func(e *donburi.Entry) {
		adversary := components.Adversary.Get(e)
		transform := components.Transform.Get(e)

		if adversary.Mode == components.ModeDefeated {
			transform.Velocity = math2.Vec2{}
			return
		}

		if threat, ok := nearestThreat(ecs, transform.Position, adversary.DetectionRadius); ok {
			adversary.Mode = components.ModeFleeing
			away := gamemath.Normalize(gamemath.Sub(transform.Position, threat))
			transform.Velocity = gamemath.Scale(away, adversary.FleeSpeed)
			return
		}

		adversary.Mode = components.ModeWandering
		adversary.WanderTimer += dt
		if adversary.WanderTimer >= adversary.WanderInterval {
			adversary.WanderTimer = 0
			adversary.WanderDir = randomHeading(adversary.Rand)
		}
		transform.Velocity = gamemath.Scale(adversary.WanderDir, adversary.MoveSpeed)
	})
}

// nearestThreat returns the position of the closest live shot strictly
// inside radius of pos.
func nearestThreat(ecs *ecs.ECS, pos math2.Vec2, radius float64) (math2.Vec2, bool) {
	var nearest math2.Vec2
	best := radius
	found := false

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if components.Projectile.Get(e).State != components.ProjectileActive {
			return
		}
		p := components.Transform.Get(e).Position
		if d := gamemath.Distance(pos, p); d < best {
			best = d
			nearest = p
			found = true
		}
	})
	return nearest, found
}

func randomHeading(rng *rand.Rand) math2.Vec2 {
	if rng == nil {
		return gamemath.UnitFromAngle(rand.Float64() * 2 * math.Pi)
	}
	return gamemath.UnitFromAngle(rng.Float64() * 2 * math.Pi)
}

// StepAdversary integrates velocity over one fixed step, keeps the
// adversary on screen and syncs its broadphase object.
func StepAdversary(ecs *ecs.ECS) {
	dt := GetClock(ecs).FixedDelta
	vp := factory.Viewport(ecs)

	tags.Adversary.Each(ecs.World, func(e *donburi.Entry) {
		transform := components.Transform.Get(e)
		next := gamemath.Add(transform.Position, gamemath.Scale(transform.Velocity, dt))
		transform.Position = clampToCamera(ecs, next)
		components.Object.Get(e).CenterOn(vp, transform.Position)
	})
}

// HitAdversary applies one point of damage. It reports false when the
// adversary was already defeated.
func HitAdversary(ecs *ecs.ECS, e *donburi.Entry) bool {
	health := components.Health.Get(e)
	if health.Current <= 0 {
		return false
	}
	adversary := components.Adversary.Get(e)

	health.Current--
	notifyLives(ecs, health.Current)
	TriggerHitFlash(e, adversary.HitPulse)

	if health.Current > 0 {
		log.Printf("%s hit, %d/%d left", cfg.Adversary.Name, health.Current, health.Max)
		return true
	}

	adversary.Mode = components.ModeDefeated
	adversary.FleeSpeed = 0
	adversary.MoveSpeed = 0
	components.Transform.Get(e).Velocity = math2.Vec2{}
	log.Printf("%s defeated", cfg.Adversary.Name)
	return true
}

func displaySink(ecs *ecs.ECS) components.DisplaySink {
	entry, ok := components.Display.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Display.Get(entry).Sink
}

func notifyLives(ecs *ecs.ECS, lives int) {
	if sink := displaySink(ecs); sink != nil {
		sink.LivesChanged(lives)
	}
}

func notifyScore(ecs *ecs.ECS, score int) {
	if sink := displaySink(ecs); sink != nil {
		sink.ScoreChanged(score)
	}
}
