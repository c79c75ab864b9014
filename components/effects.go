package components

import "github.com/yohamta/donburi"

// FlashData tracks the tint pulse shown after a hit. The pulse reverts when
// Remaining reaches zero; removing the entity drops it.
type FlashData struct {
	Remaining float64 // seconds
	R, G, B   float32 // color multipliers (1,1,1 = untinted)
}

func (f *FlashData) Active() bool {
	return f.Remaining > 0
}

var Flash = donburi.NewComponentType[FlashData]()
