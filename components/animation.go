package components

import (
	"github.com/automoto/shawarma/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Clock     *animations.Clock
	Character string  // sheet set name, e.g. "Adam"
	FrameRate float64 // frames per second
}

var Animation = donburi.NewComponentType[AnimationData]()
