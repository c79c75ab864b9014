package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	math2 "github.com/yohamta/donburi/features/math"
)

func testViewport() Viewport {
	return NewViewport(5, 640, 360)
}

func TestViewportRoundTrip(t *testing.T) {
	v := testViewport()
	p := math2.Vec2{X: 2.5, Y: -1.25}

	back := v.ViewportToWorld(v.WorldToViewport(p))
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)

	s := v.WorldToScreen(p)
	back = v.ScreenToWorld(s.X, s.Y)
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
}

func TestViewportScreenOrientation(t *testing.T) {
	v := testViewport()

	center := v.WorldToScreen(math2.Vec2{})
	assert.InDelta(t, 320.0, center.X, 1e-9)
	assert.InDelta(t, 180.0, center.Y, 1e-9)

	top := v.WorldToScreen(math2.Vec2{Y: 5})
	assert.InDelta(t, 0.0, top.Y, 1e-9, "world up is screen top")
	assert.InDelta(t, 36.0, v.PixelsPerUnit(), 1e-9)
}

func TestViewportClampCorner(t *testing.T) {
	v := testViewport()
	corner := v.ViewportToWorld(math2.Vec2{X: 1, Y: 1})

	clamped := v.Clamp(corner, 0.05)
	want := v.ViewportToWorld(math2.Vec2{X: 0.95, Y: 0.95})
	assert.InDelta(t, want.X, clamped.X, 1e-9)
	assert.InDelta(t, want.Y, clamped.Y, 1e-9)

	far := v.Clamp(math2.Vec2{X: -100, Y: -100}, 0.05)
	f := v.WorldToViewport(far)
	assert.InDelta(t, 0.05, f.X, 1e-9)
	assert.InDelta(t, 0.05, f.Y, 1e-9)
}

func TestViewportClampInside(t *testing.T) {
	v := testViewport()
	p := math2.Vec2{X: 1, Y: 1}
	got := v.Clamp(p, 0.05)
	assert.InDelta(t, p.X, got.X, 1e-9)
	assert.InDelta(t, p.Y, got.Y, 1e-9)
}
