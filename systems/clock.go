package systems

import (
	"github.com/automoto/shawarma/components"
	"github.com/automoto/shawarma/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// GetClock returns the singleton game clock, creating it if needed.
func GetClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = factory.CreateClock(ecs)
	}
	return components.Clock.Get(entry)
}

// AdvanceClock starts a frame that lasted wallDelta seconds. Long stalls are
// clamped to MaxDelta so the fixed step never has to catch up on more than
// a few physics steps.
func AdvanceClock(ecs *ecs.ECS, wallDelta float64) {
	clock := GetClock(ecs)
	if wallDelta < 0 {
		wallDelta = 0
	}
	if clock.MaxDelta > 0 && wallDelta > clock.MaxDelta {
		wallDelta = clock.MaxDelta
	}
	clock.Now += wallDelta
	clock.Delta = wallDelta
	clock.Accumulator += wallDelta
	clock.Steps = 0
}

// NewFixedStep returns a system that runs steps once for every FixedDelta
// of accumulated frame time.
func NewFixedStep(steps ...func(*ecs.ECS)) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		clock := GetClock(ecs)
		if clock.FixedDelta <= 0 {
			return
		}
		for clock.Accumulator >= clock.FixedDelta {
			for _, step := range steps {
				step(ecs)
			}
			clock.Accumulator -= clock.FixedDelta
			clock.Steps++
		}
	}
}
