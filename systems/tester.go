package systems

import (
	"fmt"
	"log"

	"github.com/automoto/shawarma/assets"
	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/shared/spritesheet"
	"github.com/automoto/shawarma/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var testerDirections = []struct {
	action cfg.ActionID
	dir    spritesheet.Direction
}{
	{cfg.ActionMoveUp, spritesheet.Up},
	{cfg.ActionMoveLeft, spritesheet.Left},
	{cfg.ActionMoveDown, spritesheet.Down},
	{cfg.ActionMoveRight, spritesheet.Right},
}

// GetTester returns the tester state, creating it if needed.
func GetTester(ecs *ecs.ECS) *components.TesterData {
	entry, ok := components.Tester.First(ecs.World)
	if !ok {
		entry = factory.CreateTester(ecs)
	}
	return components.Tester.Get(entry)
}

// UpdateTester applies keyboard shortcuts and advances the preview.
func UpdateTester(ecs *ecs.ECS) {
	tester := GetTester(ecs)
	input := getOrCreateInput(ecs)

	for _, d := range testerDirections {
		if GetAction(input, d.action).JustPressed {
			tester.SetDirection(d.dir)
		}
	}
	for _, a := range animationActions {
		if GetAction(input, a.action).JustPressed {
			tester.SetKind(a.kind)
		}
	}
	if GetAction(input, cfg.ActionPrevCharacter).JustPressed {
		tester.CycleCharacter(-1)
		logTester(tester)
	}
	if GetAction(input, cfg.ActionNextCharacter).JustPressed {
		tester.CycleCharacter(1)
		logTester(tester)
	}
	if GetAction(input, cfg.ActionSlower).JustPressed {
		tester.Slower()
	}
	if GetAction(input, cfg.ActionFaster).JustPressed {
		tester.Faster()
	}

	tester.Clock.Tick(GetClock(ecs).Delta, tester.FrameRate)
}

func logTester(tester *components.TesterData) {
	if cfg.Debug.Enabled {
		log.Printf("Tester: %s", TesterStatus(tester))
	}
}

// TesterStatus describes the previewed frame, e.g. "Adam run left 3/6 @ 8fps".
func TesterStatus(tester *components.TesterData) string {
	c := tester.Clock
	return fmt.Sprintf("%s %s %s %d/%d @ %.0ffps",
		tester.Character(), c.Kind, c.Direction, c.Frame+1,
		spritesheet.FramesPerDirection(c.Kind), tester.FrameRate)
}

// DrawTester draws the previewed frame with the overlay tile directly above
// the body tile, centered on the left half of the screen.
func DrawTester(ecs *ecs.ECS, screen *ebiten.Image) {
	tester := GetTester(ecs)
	screen.Fill(cfg.Floor)

	scale := cfg.Tester.Scale
	tile := float64(spritesheet.TileSize) * scale
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := float64(width)/4 - tile/2
	y := float64(height)/2 - tile

	c := tester.Clock
	for i, layer := range []spritesheet.Layer{spritesheet.Overlay, spritesheet.Body} {
		rect := spritesheet.MustFrameRect(c.Kind, c.Direction, layer, c.Frame)
		img := assets.GetFrame(tester.Character(), c.Kind, rect)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(scale, scale)
		drawOp.GeoM.Translate(x, y+float64(i)*tile)
		screen.DrawImage(img, drawOp)
	}
}
