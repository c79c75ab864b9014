package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the broadphase grid. Objects in it live in screen pixels.
var Space = donburi.NewComponentType[resolv.Space]()
