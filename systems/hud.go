package systems

import (
	"fmt"

	cfg "github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin = 10
	hudHint   = "WASD move  Space/click fire  1-4 anim  IJKL face  Q/E character  Tab tester"
)

// HUD shows the adversary's hit points and the cooking score. It is the
// world's display sink and owns all of the text formatting.
type HUD struct {
	lives int
	score int
}

func NewHUD(lives int) *HUD {
	return &HUD{lives: lives}
}

func (h *HUD) LivesChanged(lives int) {
	h.lives = lives
}

func (h *HUD) ScoreChanged(score int) {
	h.score = score
}

func (h *HUD) LivesText() string {
	if h.lives <= 0 {
		return fmt.Sprintf("%s DEFEATED!", cfg.Adversary.Name)
	}
	return fmt.Sprintf("%s Lives: %d", cfg.Adversary.Name, h.lives)
}

func (h *HUD) ScoreText() string {
	return fmt.Sprintf("Cooking Score: %d", h.score)
}

// Draw is registered as a renderer on the HUD layer.
func (h *HUD) Draw(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Bold.Get()
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	livesColor := cfg.White
	if h.lives <= 0 {
		livesColor = cfg.LightRed
	}
	livesText := h.LivesText()
	livesY := hudMargin + text.BoundString(face, livesText).Dy()
	text.Draw(screen, livesText, face, hudMargin, livesY, livesColor)

	scoreText := h.ScoreText()
	scoreX := width - hudMargin - text.BoundString(face, scoreText).Dx()
	text.Draw(screen, scoreText, face, scoreX, livesY, cfg.Yellow)

	hintFont := fonts.Small.Get()
	hintX := (width - text.BoundString(hintFont, hudHint).Dx()) / 2
	text.Draw(screen, hudHint, hintFont, hintX, height-hudMargin, cfg.White)
}
