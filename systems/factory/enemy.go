package factory

import (
	"math"
	"math/rand"
	"time"

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

// CreateAdversary spawns the shawarma at (x, y) with tuning from config. A
// zero seed draws one from the wall clock.
func CreateAdversary(ecs *ecs.ECS, x, y float64, seed int64) *donburi.Entry {
	a := archetypes.Adversary.Spawn(ecs)

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	components.Transform.SetValue(a, components.TransformData{
		Position: math2.Vec2{X: x, Y: y},
	})
	components.Health.SetValue(a, components.HealthData{
		Current: cfg.Adversary.HitPoints,
		Max:     cfg.Adversary.HitPoints,
	})
	components.Adversary.SetValue(a, components.AdversaryData{
		Mode:            components.ModeWandering,
		DetectionRadius: cfg.Adversary.DetectionRadius,
		FleeSpeed:       cfg.Adversary.FleeSpeed,
		MoveSpeed:       cfg.Adversary.MoveSpeed,
		WanderDir:       gamemath.UnitFromAngle(rng.Float64() * 2 * math.Pi),
		WanderInterval:  cfg.Adversary.WanderInterval,
		Radius:          cfg.Adversary.Radius,
		HitPulse:        cfg.Adversary.HitPulse,
		Rand:            rng,
	})

	// Flash stays attached so arming a pulse never changes the archetype
	components.Flash.SetValue(a, components.FlashData{R: 1, G: 1, B: 1})

	newObject(ecs, a, 2*cfg.Adversary.Radius, tags.ResolvAdversary)
	components.Sprite.SetValue(a, components.SpriteData{
		Key:  assets.SpriteShawarma,
		Size: 2 * cfg.Adversary.Radius,
	})

	return a
}
