package systems

import (
	"testing"

	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

func TestCreateProjectileNormalizesDirection(t *testing.T) {
	e := newTestECS(t)
	shot := factory.CreateProjectile(e, math2.Vec2{}, math2.Vec2{X: 3, Y: 4}, 10, 3)

	proj := components.Projectile.Get(shot)
	assert.InDelta(t, 0.6, proj.Direction.X, 1e-12)
	assert.InDelta(t, 0.8, proj.Direction.Y, 1e-12)
	assert.Equal(t, components.ProjectileActive, proj.State)

	obj := components.Object.Get(shot)
	require.NotNil(t, obj.Object)
	assert.NotNil(t, obj.Space, "shot joins the broadphase space")
	owner, ok := obj.Entry()
	assert.True(t, ok)
	assert.Equal(t, shot, owner)
}

func TestStepProjectilesMovesByFixedDelta(t *testing.T) {
	e := newTestECS(t)
	shot := factory.CreateProjectile(e, math2.Vec2{X: 1, Y: 1}, math2.Vec2{X: 0, Y: -1}, 10, 3)

	StepProjectiles(e)

	pos := components.Transform.Get(shot).Position
	assert.InDelta(t, 1, pos.X, 1e-12)
	assert.InDelta(t, 1-10*cfg.Loop.FixedDelta, pos.Y, 1e-12)
}

func TestProjectileExpiresOnFrameTime(t *testing.T) {
	e := newTestECS(t)
	factory.CreateProjectile(e, math2.Vec2{}, math2.Vec2{X: 1}, 10, 3)

	for i := 0; i < 2; i++ {
		setFrame(e, 1)
		UpdateProjectiles(e)
	}
	assert.Equal(t, 1, countProjectiles(e))

	setFrame(e, 1)
	UpdateProjectiles(e)
	assert.Zero(t, countProjectiles(e))

	space := components.Space.Get(components.Space.MustFirst(e.World))
	assert.Empty(t, space.Objects(), "expired shot leaves the space")
}

func TestProjectileHitsAdversaryOnce(t *testing.T) {
	e := newTestECS(t)
	sink := withSink(e)
	a := factory.CreateAdversary(e, 2, 0, 1)
	factory.CreateProjectile(e, math2.Vec2{X: 2.5, Y: 0}, math2.Vec2{X: 1}, 10, 3)

	setFrame(e, cfg.Loop.FixedDelta)
	UpdateProjectiles(e)

	assert.Zero(t, countProjectiles(e))
	assert.Equal(t, cfg.Adversary.HitPoints-1, components.Health.Get(a).Current)
	assert.Equal(t, []int{cfg.Adversary.HitPoints - 1}, sink.lives)

	setFrame(e, cfg.Loop.FixedDelta)
	UpdateProjectiles(e)
	assert.Equal(t, cfg.Adversary.HitPoints-1, components.Health.Get(a).Current)
}

func TestProjectileNearMissInSameCell(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateAdversary(e, 2, 0, 1)
	// Centers 0.95 apart, just outside the 0.9 combined radius
	factory.CreateProjectile(e, math2.Vec2{X: 2.95, Y: 0}, math2.Vec2{X: 1}, 10, 3)

	setFrame(e, cfg.Loop.FixedDelta)
	UpdateProjectiles(e)

	assert.Equal(t, 1, countProjectiles(e))
	assert.Equal(t, cfg.Adversary.HitPoints, components.Health.Get(a).Current)
}

func TestProjectilesWithoutAdversary(t *testing.T) {
	e := newTestECS(t)
	shot := factory.CreateProjectile(e, math2.Vec2{}, math2.Vec2{X: 1}, 10, 3)

	StepProjectiles(e)
	UpdateObjects(e)
	setFrame(e, cfg.Loop.FixedDelta)
	UpdateProjectiles(e)

	require.True(t, shot.Valid())
	assert.Greater(t, components.Transform.Get(shot).Position.X, 0.0)
}
