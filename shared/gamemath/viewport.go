package gamemath

import (
	math2 "github.com/yohamta/donburi/features/math"
)

// Viewport is an orthographic camera over a y-up world. HalfHeight is the
// number of world units between the center and the top edge; the width
// follows the screen aspect ratio.
//
// Viewport coordinates are fractions of the visible area with (0,0) at the
// bottom-left. Screen coordinates are pixels with (0,0) at the top-left.
type Viewport struct {
	Center     math2.Vec2
	HalfHeight float64
	ScreenW    int
	ScreenH    int
}

// NewViewport returns a viewport centered on the world origin.
func NewViewport(halfHeight float64, screenW, screenH int) Viewport {
	return Viewport{HalfHeight: halfHeight, ScreenW: screenW, ScreenH: screenH}
}

func (v Viewport) aspect() float64 {
	if v.ScreenH <= 0 {
		return 1
	}
	return float64(v.ScreenW) / float64(v.ScreenH)
}

// HalfWidth returns the number of world units between the center and the
// right edge.
func (v Viewport) HalfWidth() float64 {
	return v.HalfHeight * v.aspect()
}

// PixelsPerUnit returns how many screen pixels one world unit spans.
func (v Viewport) PixelsPerUnit() float64 {
	if v.HalfHeight <= 0 {
		return 0
	}
	return float64(v.ScreenH) / (2 * v.HalfHeight)
}

// WorldToViewport maps a world position to viewport fractions.
func (v Viewport) WorldToViewport(p math2.Vec2) math2.Vec2 {
	hw, hh := v.HalfWidth(), v.HalfHeight
	if hw == 0 || hh == 0 {
		return math2.Vec2{}
	}
	return math2.Vec2{
		X: (p.X - (v.Center.X - hw)) / (2 * hw),
		Y: (p.Y - (v.Center.Y - hh)) / (2 * hh),
	}
}

// ViewportToWorld maps viewport fractions back to a world position.
func (v Viewport) ViewportToWorld(f math2.Vec2) math2.Vec2 {
	hw, hh := v.HalfWidth(), v.HalfHeight
	return math2.Vec2{
		X: v.Center.X - hw + f.X*2*hw,
		Y: v.Center.Y - hh + f.Y*2*hh,
	}
}

// WorldToScreen maps a world position to screen pixels.
func (v Viewport) WorldToScreen(p math2.Vec2) math2.Vec2 {
	f := v.WorldToViewport(p)
	return math2.Vec2{
		X: f.X * float64(v.ScreenW),
		Y: (1 - f.Y) * float64(v.ScreenH),
	}
}

// ScreenToWorld maps screen pixels to a world position.
func (v Viewport) ScreenToWorld(x, y float64) math2.Vec2 {
	if v.ScreenW <= 0 || v.ScreenH <= 0 {
		return v.Center
	}
	return v.ViewportToWorld(math2.Vec2{
		X: x / float64(v.ScreenW),
		Y: 1 - y/float64(v.ScreenH),
	})
}

// Clamp keeps p inside the visible area shrunk by margin (a viewport
// fraction) on every edge.
func (v Viewport) Clamp(p math2.Vec2, margin float64) math2.Vec2 {
	if v.HalfHeight <= 0 {
		return p
	}
	f := v.WorldToViewport(p)
	f.X = Clamp(f.X, margin, 1-margin)
	f.Y = Clamp(f.Y, margin, 1-margin)
	return v.ViewportToWorld(f)
}
