package systems

import (
	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/shared/gamemath"
	"github.com/automoto/shawarma/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdatePlayerControl in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	input.StickX, input.StickY = getAnalogStick(gamepadIDs)
	if input.StickX != 0 || input.StickY != 0 {
		gamepadUsed = true
	}

	cx, cy := ebiten.CursorPosition()
	input.PointerX, input.PointerY = float64(cx), float64(cy)

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getAnalogStick reads the left stick of the first gamepad that is past the
// deadzone. The vertical axis is flipped so up is positive.
func getAnalogStick(gamepads []ebiten.GamepadID) (x, y float64) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h*h+v*v < deadzone*deadzone {
			continue
		}
		return h, -v
	}
	return 0, 0
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// MoveIntent is the per-axis movement intent of the sampled input. Keys give
// -1, 0 or 1 per axis; the analog stick is used when no key is held.
func MoveIntent(input *components.InputData) math2.Vec2 {
	var intent math2.Vec2
	if input.Current[cfg.ActionMoveLeft] {
		intent.X--
	}
	if input.Current[cfg.ActionMoveRight] {
		intent.X++
	}
	if input.Current[cfg.ActionMoveUp] {
		intent.Y++
	}
	if input.Current[cfg.ActionMoveDown] {
		intent.Y--
	}
	if gamemath.IsZero(intent) {
		intent = math2.Vec2{X: input.StickX, Y: input.StickY}
	}
	return intent
}

// PointerWorld returns the pointer position in world units.
func PointerWorld(ecs *ecs.ECS, input *components.InputData) math2.Vec2 {
	return factory.Viewport(ecs).ScreenToWorld(input.PointerX, input.PointerY)
}

// ActionJustPressed reports whether id went down this frame.
func ActionJustPressed(ecs *ecs.ECS, id cfg.ActionID) bool {
	return GetAction(getOrCreateInput(ecs), id).JustPressed
}
