package systems

import (
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the debug overlay.
func UpdateDebug(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionDebug).JustPressed {
		cfg.Debug.Enabled = !cfg.Debug.Enabled
		log.Printf("Debug overlay: %v", cfg.Debug.Enabled)
	}
}

// DrawDebug outlines every broadphase object and prints loop and agent state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvAdversary) {
				c = color.RGBA{255, 0, 0, 255}
			} else if obj.HasTags(tags.ResolvProjectile) {
				c = color.RGBA{0, 255, 0, 255}
			} else if obj.HasTags(tags.ResolvStation) {
				c = color.RGBA{255, 160, 0, 255}
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	clock := GetClock(ecs)
	msg := fmt.Sprintf("TPS %.0f  FPS %.0f  steps %d", ebiten.ActualTPS(), ebiten.ActualFPS(), clock.Steps)
	tags.Adversary.Each(ecs.World, func(e *donburi.Entry) {
		adversary := components.Adversary.Get(e)
		msg += fmt.Sprintf("\n%s: %s", cfg.Adversary.Name, adversary.Mode)
	})
	ebitenutil.DebugPrintAt(screen, msg, hudMargin, 40)
}
