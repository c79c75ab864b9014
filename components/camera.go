package components

import (
	"github.com/automoto/shawarma/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Viewport gamemath.Viewport
	Margin   float64 // viewport fraction entities keep from every edge
}

var Camera = donburi.NewComponentType[CameraData]()
