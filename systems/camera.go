package systems

import (
	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdateCamera keeps the viewport matched to the configured screen size.
// The arena camera never moves.
func UpdateCamera(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Viewport.ScreenW = cfg.C.Width
	camera.Viewport.ScreenH = cfg.C.Height
}

// clampToCamera keeps p inside the visible arena minus the camera margin.
// Worlds without a camera leave p untouched.
func clampToCamera(ecs *ecs.ECS, p math2.Vec2) math2.Vec2 {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return p
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Viewport.Clamp(p, camera.Margin)
}
