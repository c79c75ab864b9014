package animations

import (
	"github.com/automoto/shawarma/shared/gamemath"
	"github.com/automoto/shawarma/shared/spritesheet"
	math2 "github.com/yohamta/donburi/features/math"
)

// Clock tracks which frame of which cycle an animated entity shows.
// Frame always stays inside [0, FramesPerDirection(Kind)).
type Clock struct {
	Kind           spritesheet.Kind
	Direction      spritesheet.Direction
	Frame          int
	Timer          float64 // seconds since the last frame advance
	ManualOverride bool    // set by explicit selection, cleared by movement
}

func NewClock() *Clock {
	return &Clock{
		Kind:      spritesheet.IdleLoop,
		Direction: spritesheet.Down,
	}
}

// Tick advances the timer by dt seconds and steps one frame once a full
// frame period at frameRate has elapsed.
func (c *Clock) Tick(dt, frameRate float64) {
	if frameRate <= 0 {
		return
	}
	c.Timer += dt
	if c.Timer >= 1/frameRate {
		c.Timer = 0
		c.Frame = (c.Frame + 1) % spritesheet.FramesPerDirection(c.Kind)
	}
}

// SetAnimation selects kind explicitly. Automatic resolution stays off until
// the entity moves again.
func (c *Clock) SetAnimation(kind spritesheet.Kind) {
	c.Kind = kind
	c.Frame = 0
	c.ManualOverride = true
}

// SetDirection overrides the facing without touching the frame.
func (c *Clock) SetDirection(dir spritesheet.Direction) {
	c.Direction = dir
}

// ResolveAutomatic derives kind and facing from the movement intent.
func (c *Clock) ResolveAutomatic(intent math2.Vec2) {
	moving := !gamemath.IsZero(intent)
	if moving {
		c.ManualOverride = false
	}
	if c.ManualOverride {
		return
	}

	kind := spritesheet.IdleLoop
	if moving {
		kind = spritesheet.Run
	}
	c.switchKind(kind)

	if !moving {
		return
	}
	if abs(intent.X) > abs(intent.Y) {
		if intent.X > 0 {
			c.Direction = spritesheet.Right
		} else {
			c.Direction = spritesheet.Left
		}
		return
	}
	if intent.Y > 0 {
		c.Direction = spritesheet.Up
	} else {
		c.Direction = spritesheet.Down
	}
}

func (c *Clock) switchKind(kind spritesheet.Kind) {
	if c.Kind == kind {
		return
	}
	c.Kind = kind
	c.Frame = 0
}

// Reset rewinds the current cycle.
func (c *Clock) Reset() {
	c.Frame = 0
	c.Timer = 0
}

// Rect returns the sheet rect of the current frame on layer.
func (c *Clock) Rect(layer spritesheet.Layer) (spritesheet.Rect, error) {
	return spritesheet.FrameRect(c.Kind, c.Direction, layer, c.Frame)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
