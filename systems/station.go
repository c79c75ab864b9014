package systems

import (
	"log"

	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/shared/gamemath"
	"github.com/automoto/shawarma/systems/factory"
	"github.com/automoto/shawarma/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdateStation handles clicks on the cooking station and plays its bob.
func UpdateStation(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dt := GetClock(ecs).Delta
	clicked := GetAction(input, cfg.ActionInteract).JustPressed

	tags.Station.Each(ecs.World, func(e *donburi.Entry) {
		station := components.Station.Get(e)
		transform := components.Transform.Get(e)

		if clicked && !station.Bobbing() && stationUnderPointer(ecs, e, input) {
			ClickStation(ecs, e)
		}

		if !station.Bobbing() {
			transform.Position = station.Base
			return
		}
		offset, _, done := station.Bob.Update(float32(dt))
		transform.Position = gamemath.Add(station.Base, math2.Vec2{Y: float64(offset)})
		if done {
			station.Bob = nil
			transform.Position = station.Base
		}
	})
}

// ClickStation scores one cook and starts the bob. Clicks while the station
// is still bobbing are ignored and report false.
func ClickStation(ecs *ecs.ECS, e *donburi.Entry) bool {
	station := components.Station.Get(e)
	if station.Bobbing() {
		return false
	}
	station.Bob = factory.NewBob(cfg.Station.BobDistance, cfg.Station.BobSpeed)
	station.Score++
	notifyScore(ecs, station.Score)
	if cfg.Debug.Enabled {
		log.Printf("Cooking score: %d", station.Score)
	}
	return true
}

// stationUnderPointer tests the pointer against the station's box with a
// one pixel probe object in the same space.
func stationUnderPointer(ecs *ecs.ECS, e *donburi.Entry, input *components.InputData) bool {
	obj := components.Object.Get(e)
	if obj.Object == nil || obj.Space == nil {
		return pointInStation(ecs, e, PointerWorld(ecs, input))
	}

	probe := resolv.NewObject(input.PointerX, input.PointerY, 1, 1)
	obj.Space.Add(probe)
	defer obj.Space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvStation)
	if check == nil {
		return false
	}
	for _, other := range check.ObjectsByTags(tags.ResolvStation) {
		if other == obj.Object && containsPoint(other, input.PointerX, input.PointerY) {
			return true
		}
	}
	return false
}

// pointInStation is the world space box test used when the station has no
// broadphase object.
func pointInStation(ecs *ecs.ECS, e *donburi.Entry, p math2.Vec2) bool {
	station := components.Station.Get(e)
	pos := components.Transform.Get(e).Position
	half := station.Size / 2
	return p.X >= pos.X-half && p.X <= pos.X+half && p.Y >= pos.Y-half && p.Y <= pos.Y+half
}

func containsPoint(obj *resolv.Object, x, y float64) bool {
	return x >= obj.X && x < obj.X+obj.W && y >= obj.Y && y < obj.Y+obj.H
}
