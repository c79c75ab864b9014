package components

import (
	cfg "github.com/automoto/shawarma/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the pointer. JustPressed/JustReleased are computed on demand
// by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	StickX, StickY  float64 // left stick past the deadzone, y up
	PointerX        float64 // screen pixels
	PointerY        float64
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
