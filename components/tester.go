package components

import (
	"math"

	"github.com/automoto/shawarma/assets/animations"
	"github.com/automoto/shawarma/shared/spritesheet"
	"github.com/yohamta/donburi"
)

// TesterData is the state of the animation tester scene.
type TesterData struct {
	Characters     []string
	CharacterIndex int
	Clock          *animations.Clock
	FrameRate      float64
	MinFrameRate   float64
	MaxFrameRate   float64
	RateStep       float64
}

// Character returns the name of the previewed character.
func (t *TesterData) Character() string {
	if len(t.Characters) == 0 {
		return ""
	}
	return t.Characters[t.CharacterIndex]
}

var Tester = donburi.NewComponentType[TesterData]()

// CycleCharacter moves step places through the character list, wrapping at
// both ends, and rewinds the preview.
func (t *TesterData) CycleCharacter(step int) {
	n := len(t.Characters)
	if n == 0 {
		return
	}
	t.CharacterIndex = ((t.CharacterIndex+step)%n + n) % n
	t.Clock.Reset()
}

func (t *TesterData) SetKind(kind spritesheet.Kind) {
	t.Clock.SetAnimation(kind)
}

func (t *TesterData) SetDirection(dir spritesheet.Direction) {
	t.Clock.SetDirection(dir)
}

// Faster raises the frame rate by one step, up to MaxFrameRate.
func (t *TesterData) Faster() {
	t.FrameRate = math.Min(t.MaxFrameRate, t.FrameRate+t.RateStep)
}

// Slower lowers the frame rate by one step, down to MinFrameRate.
func (t *TesterData) Slower() {
	t.FrameRate = math.Max(t.MinFrameRate, t.FrameRate-t.RateStep)
}
