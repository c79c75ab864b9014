package components

import (
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

type ProjectileState int

const (
	ProjectileActive ProjectileState = iota
	ProjectileExpired
	ProjectileConsumed
)

func (s ProjectileState) String() string {
	switch s {
	case ProjectileExpired:
		return "expired"
	case ProjectileConsumed:
		return "consumed"
	}
	return "active"
}

// ProjectileData is fixed at spawn except for the countdown and state.
type ProjectileData struct {
	Direction math2.Vec2 // unit length, or zero for an inert shot
	Speed     float64
	Remaining float64 // seconds of lifetime left
	Radius    float64
	State     ProjectileState
}

var Projectile = donburi.NewComponentType[ProjectileData]()
