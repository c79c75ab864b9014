package components

import "github.com/yohamta/donburi"

// DisplaySink receives the numbers the HUD shows. Formatting is up to the
// sink.
type DisplaySink interface {
	LivesChanged(lives int)
	ScoreChanged(score int)
}

type DisplayData struct {
	Sink DisplaySink
}

var Display = donburi.NewComponentType[DisplayData]()
