package systems

import (
	"testing"

	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/shared/gamemath"
	"github.com/automoto/shawarma/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

func TestAdversaryFleesNearestThreat(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateAdversary(e, 0, 0, 1)
	factory.CreateProjectile(e, math2.Vec2{X: 3, Y: 0}, math2.Vec2{}, 10, 3)
	factory.CreateProjectile(e, math2.Vec2{X: 0, Y: 2}, math2.Vec2{}, 10, 3)

	setFrame(e, 0.016)
	UpdateAdversary(e)

	adversary := components.Adversary.Get(a)
	v := components.Transform.Get(a).Velocity
	assert.Equal(t, components.ModeFleeing, adversary.Mode)
	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, -cfg.Adversary.FleeSpeed, v.Y, 1e-12)
}

func TestAdversaryDetectionRadius(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     components.AdversaryMode
	}{
		{"inside", 4.9, components.ModeFleeing},
		{"edge", 5, components.ModeWandering},
		{"outside", 5.1, components.ModeWandering},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			a := factory.CreateAdversary(e, 0, 0, 1)
			factory.CreateProjectile(e, math2.Vec2{X: tt.distance}, math2.Vec2{}, 10, 3)

			setFrame(e, 0.016)
			UpdateAdversary(e)

			assert.Equal(t, tt.want, components.Adversary.Get(a).Mode)
		})
	}
}

func TestAdversaryWanderChangesHeadingOnInterval(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateAdversary(e, 0, 0, 42)
	adversary := components.Adversary.Get(a)
	initial := adversary.WanderDir
	assert.InDelta(t, 1, gamemath.Length(initial), 1e-9)

	setFrame(e, adversary.WanderInterval/2)
	UpdateAdversary(e)
	assert.Equal(t, initial, adversary.WanderDir)
	v := components.Transform.Get(a).Velocity
	assert.InDelta(t, cfg.Adversary.MoveSpeed, gamemath.Length(v), 1e-9)

	setFrame(e, adversary.WanderInterval/2)
	UpdateAdversary(e)
	assert.NotEqual(t, initial, adversary.WanderDir)
	assert.Zero(t, adversary.WanderTimer)
	assert.InDelta(t, 1, gamemath.Length(adversary.WanderDir), 1e-9)
}

func TestAdversarySeedIsDeterministic(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateAdversary(e, 0, 0, 7)
	b := factory.CreateAdversary(e, 0, 0, 7)
	assert.Equal(t, components.Adversary.Get(a).WanderDir, components.Adversary.Get(b).WanderDir)
}

func TestHitAdversaryUntilDefeated(t *testing.T) {
	e := newTestECS(t)
	sink := withSink(e)
	a := factory.CreateAdversary(e, 0, 0, 1)
	components.Transform.Get(a).Velocity = math2.Vec2{X: 1}

	for i := 0; i < cfg.Adversary.HitPoints; i++ {
		require.True(t, HitAdversary(e, a))
	}
	assert.False(t, HitAdversary(e, a), "no damage past zero")

	adversary := components.Adversary.Get(a)
	assert.Equal(t, components.ModeDefeated, adversary.Mode)
	assert.Zero(t, adversary.FleeSpeed)
	assert.Zero(t, adversary.MoveSpeed)
	assert.True(t, gamemath.IsZero(components.Transform.Get(a).Velocity))
	assert.Zero(t, components.Health.Get(a).Current)
	assert.Equal(t, []int{2, 1, 0}, sink.lives)
}

func TestDefeatedAdversaryStaysPut(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateAdversary(e, 0, 0, 1)
	for i := 0; i < cfg.Adversary.HitPoints; i++ {
		HitAdversary(e, a)
	}
	factory.CreateProjectile(e, math2.Vec2{X: 1}, math2.Vec2{}, 10, 3)

	setFrame(e, 0.016)
	UpdateAdversary(e)
	StepAdversary(e)

	assert.Equal(t, components.ModeDefeated, components.Adversary.Get(a).Mode)
	pos := components.Transform.Get(a).Position
	assert.InDelta(t, 0, pos.X, 1e-9)
	assert.InDelta(t, 0, pos.Y, 1e-9)
}

func TestHitPulseCountsDownAndRestarts(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateAdversary(e, 0, 0, 1)
	flash := components.Flash.Get(a)

	HitAdversary(e, a)
	require.True(t, flash.Active())
	assert.Equal(t, cfg.Adversary.HitPulse, flash.Remaining)
	assert.Less(t, flash.G, float32(1))

	setFrame(e, 0.3)
	UpdateEffects(e)
	assert.True(t, flash.Active())

	HitAdversary(e, a)
	assert.Equal(t, cfg.Adversary.HitPulse, flash.Remaining, "a second hit restarts the pulse")

	setFrame(e, cfg.Adversary.HitPulse)
	UpdateEffects(e)
	assert.False(t, flash.Active())
	assert.Equal(t, float32(1), flash.G)
}

func TestStepAdversaryClampsAndSyncsObject(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateAdversary(e, 0, 0, 1)
	components.Transform.Get(a).Velocity = math2.Vec2{X: -10000}

	StepAdversary(e)

	vp := factory.Viewport(e)
	pos := components.Transform.Get(a).Position
	assert.InDelta(t, cfg.Camera.Margin, vp.WorldToViewport(pos).X, 1e-9)

	obj := components.Object.Get(a)
	s := vp.WorldToScreen(pos)
	assert.InDelta(t, s.X, obj.X+obj.W/2, 1e-9)
	assert.InDelta(t, s.Y, obj.Y+obj.H/2, 1e-9)
}
