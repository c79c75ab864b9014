package factory

import (
	"github.com/automoto/shawarma/archetypes"
	"github.com/automoto/shawarma/assets/animations"
	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	index := cfg.Player.Character
	if index < 0 || index >= len(cfg.Player.Characters) {
		index = 0
	}

	clock := animations.NewClock()
	components.Transform.SetValue(player, components.TransformData{
		Position: math2.Vec2{X: x, Y: y},
		Facing:   clock.Direction,
	})
	components.Player.SetValue(player, components.PlayerData{
		MoveSpeed:      cfg.Player.MoveSpeed,
		FireRate:       cfg.Player.FireRate,
		CharacterIndex: index,
		BodyOffset:     math2.Vec2{X: cfg.Player.BodyOffsetX, Y: cfg.Player.BodyOffsetY},
	})

	character := ""
	if len(cfg.Player.Characters) > 0 {
		character = cfg.Player.Characters[index]
	}
	components.Animation.SetValue(player, components.AnimationData{
		Clock:     clock,
		Character: character,
		FrameRate: cfg.Player.FrameRate,
	})

	return player
}
