package systems

import (
	"testing"

	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

func TestClickStationScoresAndIgnoresClicksWhileBobbing(t *testing.T) {
	e := newTestECS(t)
	sink := withSink(e)
	s := factory.CreateStation(e, cfg.Station.X, cfg.Station.Y, cfg.Station.Size)

	require.True(t, ClickStation(e, s))
	assert.False(t, ClickStation(e, s))

	station := components.Station.Get(s)
	assert.Equal(t, 1, station.Score)
	assert.Equal(t, []int{1}, sink.scores)
	assert.True(t, station.Bobbing())
}

func TestStationBobReturnsToBase(t *testing.T) {
	e := newTestECS(t)
	s := factory.CreateStation(e, 0, 0, 1)
	ClickStation(e, s)

	// Up one unit at two units per second takes half a second
	setFrame(e, 0.5)
	UpdateStation(e)
	assert.InDelta(t, cfg.Station.BobDistance, components.Transform.Get(s).Position.Y, 1e-5)

	setFrame(e, 0.5)
	UpdateStation(e)
	station := components.Station.Get(s)
	assert.False(t, station.Bobbing())
	assert.Equal(t, station.Base, components.Transform.Get(s).Position)

	assert.True(t, ClickStation(e, s), "idle again")
}

func TestUpdateStationClickUnderPointer(t *testing.T) {
	e := newTestECS(t)
	sink := withSink(e)
	s := factory.CreateStation(e, -3, -2, 1)

	input := pointAt(e, math2.Vec2{X: -3.2, Y: -1.8})
	input.Current[cfg.ActionInteract] = true
	UpdateStation(e)
	assert.Equal(t, 1, components.Station.Get(s).Score)

	// Held button is not a new click
	input.Previous = input.Current
	UpdateStation(e)
	assert.Equal(t, []int{1}, sink.scores)
}

func TestUpdateStationClickElsewhere(t *testing.T) {
	e := newTestECS(t)
	s := factory.CreateStation(e, -3, -2, 1)

	input := pointAt(e, math2.Vec2{X: 3, Y: 2})
	input.Current[cfg.ActionInteract] = true
	UpdateStation(e)

	assert.Zero(t, components.Station.Get(s).Score)
	space := components.Space.Get(components.Space.MustFirst(e.World))
	assert.Len(t, space.Objects(), 1, "pointer probe is removed again")
}
