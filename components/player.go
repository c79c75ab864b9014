package components

import (
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	MoveSpeed      float64
	FireRate       float64 // seconds between shots
	NextFireTime   float64 // game clock time of the next allowed shot
	CharacterIndex int
	Intent         math2.Vec2 // raw per-axis intent sampled this frame
	BodyOffset     math2.Vec2 // body tile center relative to the position
}

var Player = donburi.NewComponentType[PlayerData]()
