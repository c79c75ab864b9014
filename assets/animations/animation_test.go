package animations

import (
	"testing"

	"github.com/automoto/shawarma/shared/spritesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

func TestNewClock(t *testing.T) {
	c := NewClock()
	assert.Equal(t, spritesheet.IdleLoop, c.Kind)
	assert.Equal(t, spritesheet.Down, c.Direction)
	assert.Zero(t, c.Frame)
	assert.False(t, c.ManualOverride)
}

func TestTickAdvancesEightFramesPerSecond(t *testing.T) {
	for _, ticks := range []int{8, 16, 32} {
		c := NewClock()
		c.SetAnimation(spritesheet.Phone)
		dt := 1 / float64(ticks)
		steps := 0
		for i := 0; i < ticks; i++ {
			before := c.Frame
			c.Tick(dt, 8)
			if c.Frame != before {
				steps++
			}
		}
		assert.Equal(t, 8, steps, "ticks=%d", ticks)
	}

	c := NewClock()
	for i := 0; i < 8; i++ {
		c.Tick(0.125, 8)
	}
	assert.Equal(t, 8%6, c.Frame)
}

func TestTickWraps(t *testing.T) {
	c := NewClock()
	c.SetAnimation(spritesheet.Idle)
	for i := 0; i < 5; i++ {
		c.Tick(1, 8)
		assert.Zero(t, c.Frame)
	}
}

func TestTickIgnoresZeroRate(t *testing.T) {
	c := NewClock()
	c.Tick(10, 0)
	assert.Zero(t, c.Frame)
}

func TestSetAnimation(t *testing.T) {
	c := NewClock()
	c.Frame = 3
	c.SetAnimation(spritesheet.Phone)

	assert.Equal(t, spritesheet.Phone, c.Kind)
	assert.Zero(t, c.Frame)
	assert.True(t, c.ManualOverride)
}

func TestResolveAutomaticMovementReclaimsControl(t *testing.T) {
	c := NewClock()
	c.SetAnimation(spritesheet.Phone)

	c.ResolveAutomatic(math2.Vec2{X: 1})

	assert.False(t, c.ManualOverride)
	assert.Equal(t, spritesheet.Run, c.Kind)
	assert.Equal(t, spritesheet.Right, c.Direction)
}

func TestResolveAutomaticKeepsManualWhileStill(t *testing.T) {
	c := NewClock()
	c.SetAnimation(spritesheet.Phone)
	c.ResolveAutomatic(math2.Vec2{})

	assert.True(t, c.ManualOverride)
	assert.Equal(t, spritesheet.Phone, c.Kind)
}

func TestResolveAutomaticDirection(t *testing.T) {
	tests := []struct {
		name   string
		intent math2.Vec2
		want   spritesheet.Direction
	}{
		{"right", math2.Vec2{X: 1}, spritesheet.Right},
		{"left", math2.Vec2{X: -1}, spritesheet.Left},
		{"up", math2.Vec2{Y: 1}, spritesheet.Up},
		{"down", math2.Vec2{Y: -1}, spritesheet.Down},
		{"tie goes vertical", math2.Vec2{X: 1, Y: 1}, spritesheet.Up},
		{"tie goes vertical down", math2.Vec2{X: -1, Y: -1}, spritesheet.Down},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClock()
			c.Direction = spritesheet.Left
			c.ResolveAutomatic(tt.intent)
			assert.Equal(t, tt.want, c.Direction)
			assert.Equal(t, spritesheet.Run, c.Kind)
		})
	}
}

func TestResolveAutomaticStopKeepsFacing(t *testing.T) {
	c := NewClock()
	c.ResolveAutomatic(math2.Vec2{X: -1})
	c.ResolveAutomatic(math2.Vec2{})

	assert.Equal(t, spritesheet.IdleLoop, c.Kind)
	assert.Equal(t, spritesheet.Left, c.Direction)
}

func TestKindChangeKeepsFrameInRange(t *testing.T) {
	c := NewClock()
	c.SetAnimation(spritesheet.Phone)
	c.Frame = 7

	c.ResolveAutomatic(math2.Vec2{Y: 1})
	_, err := c.Rect(spritesheet.Body)
	require.NoError(t, err)
	assert.Zero(t, c.Frame)
}

func TestRect(t *testing.T) {
	c := NewClock()
	c.Frame = 2
	r, err := c.Rect(spritesheet.Overlay)
	require.NoError(t, err)
	assert.Equal(t, spritesheet.Rect{X: (18 + 2) * 16, Y: 16, W: 16, H: 16}, r)
}
