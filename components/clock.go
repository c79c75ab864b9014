package components

import "github.com/yohamta/donburi"

// ClockData is the singleton game clock. Delta is the presentation step of
// the current frame; physics steps always advance by FixedDelta.
type ClockData struct {
	Now         float64
	Delta       float64
	FixedDelta  float64
	MaxDelta    float64
	Accumulator float64
	Steps       int // physics steps run this frame
}

var Clock = donburi.NewComponentType[ClockData]()
