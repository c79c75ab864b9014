package components

import (
	"github.com/automoto/shawarma/shared/spritesheet"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// TransformData is the positional record shared by every arena entity.
// Positions and velocities are in world units, y up.
type TransformData struct {
	Position math2.Vec2
	Velocity math2.Vec2
	Facing   spritesheet.Direction
}

var Transform = donburi.NewComponentType[TransformData]()
