package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// AdversaryMode is the behavior of the threat aware agent.
type AdversaryMode int

const (
	ModeWandering AdversaryMode = iota
	ModeFleeing
	ModeDefeated
)

func (m AdversaryMode) String() string {
	switch m {
	case ModeFleeing:
		return "fleeing"
	case ModeDefeated:
		return "defeated"
	}
	return "wandering"
}

// AdversaryData holds perception and movement state. Hit points live in the
// Health component.
type AdversaryData struct {
	Mode            AdversaryMode
	DetectionRadius float64
	FleeSpeed       float64
	MoveSpeed       float64
	WanderDir       math2.Vec2
	WanderTimer     float64
	WanderInterval  float64
	Radius          float64
	HitPulse        float64 // seconds of tint per hit
	Rand            *rand.Rand
}

var Adversary = donburi.NewComponentType[AdversaryData]()
