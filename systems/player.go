package systems

import (
	"log"

	"github.com/automoto/shawarma/assets/animations"
	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/shared/gamemath"
	"github.com/automoto/shawarma/shared/spritesheet"
	"github.com/automoto/shawarma/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

var animationActions = []struct {
	action cfg.ActionID
	kind   spritesheet.Kind
}{
	{cfg.ActionAnimIdle, spritesheet.Idle},
	{cfg.ActionAnimIdleLoop, spritesheet.IdleLoop},
	{cfg.ActionAnimPhone, spritesheet.Phone},
	{cfg.ActionAnimRun, spritesheet.Run},
}

var facingActions = []struct {
	action cfg.ActionID
	dir    spritesheet.Direction
}{
	{cfg.ActionFaceUp, spritesheet.Up},
	{cfg.ActionFaceLeft, spritesheet.Left},
	{cfg.ActionFaceDown, spritesheet.Down},
	{cfg.ActionFaceRight, spritesheet.Right},
}

// UpdatePlayerControl turns this frame's sampled input into player intent,
// animation choices, character switches and shots.
// Must run AFTER UpdateInput and BEFORE the fixed step.
func UpdatePlayerControl(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	clock := GetClock(ecs)

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		anim := components.Animation.Get(e)

		player.Intent = MoveIntent(input)
		handleAnimationInput(input, anim.Clock, player.Intent)
		handleCharacterInput(input, player, anim)

		if GetAction(input, cfg.ActionFire).Pressed {
			tryFire(ecs, e, clock.Now, PointerWorld(ecs, input))
		}
	})
}

func handleAnimationInput(input *components.InputData, clock *animations.Clock, intent math2.Vec2) {
	for _, a := range animationActions {
		if GetAction(input, a.action).JustPressed {
			clock.SetAnimation(a.kind)
		}
	}
	clock.ResolveAutomatic(intent)
	for _, f := range facingActions {
		if GetAction(input, f.action).JustPressed {
			clock.SetDirection(f.dir)
		}
	}
}

func handleCharacterInput(input *components.InputData, player *components.PlayerData, anim *components.AnimationData) {
	step := 0
	if GetAction(input, cfg.ActionPrevCharacter).JustPressed {
		step--
	}
	if GetAction(input, cfg.ActionNextCharacter).JustPressed {
		step++
	}
	if step == 0 {
		return
	}
	SwitchCharacter(player, anim, step)
}

// SwitchCharacter moves step places through the character list, wrapping at
// both ends, and rewinds the animation.
func SwitchCharacter(player *components.PlayerData, anim *components.AnimationData, step int) {
	n := len(cfg.Player.Characters)
	if n == 0 {
		return
	}
	player.CharacterIndex = ((player.CharacterIndex+step)%n + n) % n
	anim.Character = cfg.Player.Characters[player.CharacterIndex]
	anim.Clock.Reset()
	log.Printf("Character: %s", anim.Character)
}

// tryFire spawns a shot from the body anchor toward target when the
// cooldown has elapsed. It reports whether a shot was fired.
func tryFire(ecs *ecs.ECS, e *donburi.Entry, now float64, target math2.Vec2) bool {
	player := components.Player.Get(e)
	if now < player.NextFireTime {
		return false
	}

	anchor := gamemath.Add(components.Transform.Get(e).Position, player.BodyOffset)
	dir := gamemath.Normalize(gamemath.Sub(target, anchor))
	spawn := gamemath.Add(anchor, gamemath.Scale(dir, cfg.Projectile.SpawnOffset))

	factory.CreateProjectile(ecs, spawn, dir, cfg.Projectile.Speed, cfg.Projectile.Lifetime)
	player.NextFireTime = now + player.FireRate
	return true
}

// StepPlayerMovement moves players by one fixed step along their intent and
// keeps them on screen.
func StepPlayerMovement(ecs *ecs.ECS) {
	dt := GetClock(ecs).FixedDelta
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		transform := components.Transform.Get(e)

		transform.Velocity = gamemath.Scale(gamemath.Normalize(player.Intent), player.MoveSpeed)
		transform.Position = clampToCamera(ecs, gamemath.MoveStep(transform.Position, player.Intent, player.MoveSpeed, dt))
	})
}

// UpdateAnimations advances every animation clock by the frame delta and
// mirrors the clock's facing onto the transform.
func UpdateAnimations(ecs *ecs.ECS) {
	dt := GetClock(ecs).Delta
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.Clock == nil {
			return
		}
		anim.Clock.Tick(dt, anim.FrameRate)
		if e.HasComponent(components.Transform) {
			components.Transform.Get(e).Facing = anim.Clock.Direction
		}
	})
}
