package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionFire
	ActionInteract
	ActionAnimIdle
	ActionAnimIdleLoop
	ActionAnimPhone
	ActionAnimRun
	ActionFaceUp
	ActionFaceLeft
	ActionFaceDown
	ActionFaceRight
	ActionPrevCharacter
	ActionNextCharacter
	ActionSlower
	ActionFaster
	ActionSwitchScene
	ActionDebug
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			ActionMoveRight: {
				Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			ActionMoveUp: {
				Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			ActionMoveDown: {
				Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			ActionFire: {
				Keys:                   []ebiten.Key{ebiten.KeySpace},
				MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
			},
			ActionInteract: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionAnimIdle:     {Keys: []ebiten.Key{ebiten.KeyDigit1}},
			ActionAnimIdleLoop: {Keys: []ebiten.Key{ebiten.KeyDigit2}},
			ActionAnimPhone:    {Keys: []ebiten.Key{ebiten.KeyDigit3}},
			ActionAnimRun:      {Keys: []ebiten.Key{ebiten.KeyDigit4}},
			ActionFaceUp:       {Keys: []ebiten.Key{ebiten.KeyI}},
			ActionFaceLeft:     {Keys: []ebiten.Key{ebiten.KeyJ}},
			ActionFaceDown:     {Keys: []ebiten.Key{ebiten.KeyK}},
			ActionFaceRight:    {Keys: []ebiten.Key{ebiten.KeyL}},
			ActionPrevCharacter: {
				Keys:                   []ebiten.Key{ebiten.KeyQ},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
			},
			ActionNextCharacter: {
				Keys:                   []ebiten.Key{ebiten.KeyE},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
			},
			ActionSlower: {Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}},
			ActionFaster: {Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}},
			ActionSwitchScene: {
				Keys:                   []ebiten.Key{ebiten.KeyTab},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
			},
			ActionDebug: {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionQuit: {
				Keys:                   []ebiten.Key{ebiten.KeyEscape},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
		},
	}
}
