package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/ecs"
)

func TestAdvanceClockClampsLongFrames(t *testing.T) {
	e := newTestECS(t)

	AdvanceClock(e, 1.0)
	clock := GetClock(e)
	assert.Equal(t, 0.25, clock.Delta)
	assert.Equal(t, 0.25, clock.Now)
	assert.Equal(t, 0.25, clock.Accumulator)

	AdvanceClock(e, -1)
	assert.Zero(t, clock.Delta)
	assert.Equal(t, 0.25, clock.Now)
}

func TestFixedStepDrainsAccumulator(t *testing.T) {
	e := newTestECS(t)
	clock := GetClock(e)
	clock.FixedDelta = 0.125
	clock.MaxDelta = 1

	calls := 0
	step := NewFixedStep(func(*ecs.ECS) { calls++ })

	AdvanceClock(e, 0.5)
	step(e)
	assert.Equal(t, 4, calls)
	assert.Equal(t, 4, clock.Steps)
	assert.Zero(t, clock.Accumulator)

	AdvanceClock(e, 0.0625)
	step(e)
	assert.Equal(t, 4, calls, "half a step must wait for the next frame")
	assert.Equal(t, 0.0625, clock.Accumulator)

	AdvanceClock(e, 0.0625)
	step(e)
	assert.Equal(t, 5, calls)
}

func TestFixedStepRunsStepsInOrder(t *testing.T) {
	e := newTestECS(t)
	clock := GetClock(e)
	clock.FixedDelta = 0.25
	clock.MaxDelta = 1

	var order []string
	step := NewFixedStep(
		func(*ecs.ECS) { order = append(order, "player") },
		func(*ecs.ECS) { order = append(order, "projectiles") },
	)
	AdvanceClock(e, 0.5)
	step(e)
	assert.Equal(t, []string{"player", "projectiles", "player", "projectiles"}, order)
}
