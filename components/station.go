package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// StationData is the cooking station click target. Bob is nil while the
// station rests at Base.
type StationData struct {
	Base  math2.Vec2
	Size  float64
	Score int
	Bob   *gween.Sequence
}

func (s *StationData) Bobbing() bool {
	return s.Bob != nil
}

var Station = donburi.NewComponentType[StationData]()
