package factory

import (
	"github.com/automoto/shawarma/archetypes"
	"github.com/automoto/shawarma/assets"
	"github.com/automoto/shawarma/components"
	"github.com/automoto/shawarma/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateStation spawns the cooking station click target.
func CreateStation(ecs *ecs.ECS, x, y, size float64) *donburi.Entry {
	station := archetypes.Station.Spawn(ecs)
	base := math2.Vec2{X: x, Y: y}

	components.Transform.SetValue(station, components.TransformData{Position: base})
	components.Station.SetValue(station, components.StationData{
		Base: base,
		Size: size,
	})
	newObject(ecs, station, size, tags.ResolvStation)
	components.Sprite.SetValue(station, components.SpriteData{
		Key:  assets.SpriteStation,
		Size: size,
	})

	return station
}

// NewBob builds the up-and-back hop played when the station is clicked,
// as an offset above the base position.
func NewBob(distance, speed float64) *gween.Sequence {
	duration := float32(distance / speed)
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, float32(distance), duration, ease.Linear),
		gween.New(float32(distance), 0, duration, ease.Linear),
	)
	return seq
}
