package factory

import (
	"github.com/automoto/shawarma/archetypes"
	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.Set(clock, &components.ClockData{
		FixedDelta: cfg.Loop.FixedDelta,
		MaxDelta:   cfg.Loop.MaxDelta,
	})
	return clock
}

// CreateDisplay injects the sink that receives hit point and score updates.
func CreateDisplay(ecs *ecs.ECS, sink components.DisplaySink) *donburi.Entry {
	display := archetypes.Display.Spawn(ecs)
	components.Display.Set(display, &components.DisplayData{Sink: sink})
	return display
}
