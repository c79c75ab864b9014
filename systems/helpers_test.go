package systems

import (
	"testing"

	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

type recordingSink struct {
	lives  []int
	scores []int
}

func (s *recordingSink) LivesChanged(lives int) { s.lives = append(s.lives, lives) }
func (s *recordingSink) ScoreChanged(score int) { s.scores = append(s.scores, score) }

// newTestECS builds an arena world without a window: space, camera, clock.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateCamera(e)
	factory.CreateClock(e)
	return e
}

func withSink(e *ecs.ECS) *recordingSink {
	sink := &recordingSink{}
	factory.CreateDisplay(e, sink)
	return sink
}

// setFrame sets the presentation delta without going through the clamp.
func setFrame(e *ecs.ECS, dt float64) {
	clock := GetClock(e)
	clock.Delta = dt
	clock.Now += dt
}

// pointAt places the pointer over the world position p.
func pointAt(e *ecs.ECS, p math2.Vec2) *components.InputData {
	input := getOrCreateInput(e)
	s := factory.Viewport(e).WorldToScreen(p)
	input.PointerX, input.PointerY = s.X, s.Y
	return input
}

func countProjectiles(e *ecs.ECS) int {
	n := 0
	components.Projectile.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func firstProjectile(e *ecs.ECS) *donburi.Entry {
	entry, _ := components.Projectile.First(e.World)
	return entry
}
