package factory

import (
	"github.com/automoto/shawarma/archetypes"
	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Viewport: gamemath.NewViewport(cfg.Camera.HalfHeight, cfg.C.Width, cfg.C.Height),
		Margin:   cfg.Camera.Margin,
	})
	return camera
}

// Viewport returns the camera viewport, or the configured default when the
// world has no camera.
func Viewport(ecs *ecs.ECS) gamemath.Viewport {
	if entry, ok := components.Camera.First(ecs.World); ok {
		return components.Camera.Get(entry).Viewport
	}
	return gamemath.NewViewport(cfg.Camera.HalfHeight, cfg.C.Width, cfg.C.Height)
}
