package factory

import (
	"github.com/automoto/shawarma/archetypes"
	"github.com/automoto/shawarma/assets/animations"
	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTester spawns the animation tester state.
func CreateTester(ecs *ecs.ECS) *donburi.Entry {
	tester := archetypes.Tester.Spawn(ecs)
	components.Tester.Set(tester, &components.TesterData{
		Characters:   cfg.Player.Characters,
		Clock:        animations.NewClock(),
		FrameRate:    cfg.Tester.FrameRate,
		MinFrameRate: cfg.Tester.MinFrameRate,
		MaxFrameRate: cfg.Tester.MaxFrameRate,
		RateStep:     cfg.Tester.RateStep,
	})
	return tester
}
