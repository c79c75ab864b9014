package systems

import (
	"math"

	"github.com/automoto/shawarma/assets"
	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/shared/gamemath"
	"github.com/automoto/shawarma/shared/spritesheet"
	"github.com/automoto/shawarma/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// DrawFloor paints the arena floor as a checkerboard of one unit tiles.
func DrawFloor(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Floor)

	vp := factory.Viewport(ecs)
	ppu := vp.PixelsPerUnit()
	if ppu <= 0 {
		return
	}
	halfW, halfH := vp.HalfWidth(), vp.HalfHeight
	for y := math.Floor(-halfH); y < halfH; y++ {
		for x := math.Floor(-halfW); x < halfW; x++ {
			if (int(x)+int(y))%2 == 0 {
				continue
			}
			// Tile top-left corner is its (x, y+1) world point
			s := vp.WorldToScreen(math2.Vec2{X: x, Y: y + 1})
			vector.FillRect(screen, float32(s.X), float32(s.Y), float32(ppu), float32(ppu), cfg.FloorTile, false)
		}
	}
}

// DrawSprites renders single-image entities centered on their position.
// Entities with an active flash are drawn through the tint shader, or with a
// plain color scale when the shader is unavailable.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	vp := factory.Viewport(ecs)
	ppu := vp.PixelsPerUnit()

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		img := assets.GetSprite(sprite.Key)
		if img == nil {
			return
		}
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		scale := sprite.Size * ppu / float64(w)
		center := vp.WorldToScreen(components.Transform.Get(e).Position)

		var flash *components.FlashData
		if e.HasComponent(components.Flash) {
			flash = components.Flash.Get(e)
		}

		if flash != nil && flash.Active() && assets.TintShader != nil {
			shaderOp.GeoM.Reset()
			shaderOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
			shaderOp.GeoM.Scale(scale, scale)
			shaderOp.GeoM.Translate(center.X, center.Y)
			shaderOp.Images[0] = img
			shaderOp.Uniforms = map[string]any{
				"Tint":     []float32{flash.R, flash.G, flash.B},
				"Strength": float32(1),
			}
			screen.DrawRectShader(w, h, assets.TintShader, shaderOp)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		drawOp.GeoM.Scale(scale, scale)
		drawOp.GeoM.Translate(center.X, center.Y)
		if flash != nil && flash.Active() {
			drawOp.ColorScale.Scale(flash.R, flash.G, flash.B, 1)
		}
		screen.DrawImage(img, drawOp)
	})
}

// DrawAnimated renders animated characters as two stacked tiles: the body
// centered on the body anchor and the overlay one unit above it.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	vp := factory.Viewport(ecs)
	scale := vp.PixelsPerUnit() / spritesheet.TileSize

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.Clock == nil {
			return
		}
		body := components.Transform.Get(e).Position
		if e.HasComponent(components.Player) {
			body = gamemath.Add(body, components.Player.Get(e).BodyOffset)
		}
		overlay := gamemath.Add(body, math2.Vec2{Y: 1})

		drawCharacterTile(screen, anim, spritesheet.Body, vp.WorldToScreen(body), scale)
		drawCharacterTile(screen, anim, spritesheet.Overlay, vp.WorldToScreen(overlay), scale)
	})
}

func drawCharacterTile(screen *ebiten.Image, anim *components.AnimationData, layer spritesheet.Layer, center math2.Vec2, scale float64) {
	clock := anim.Clock
	rect := spritesheet.MustFrameRect(clock.Kind, clock.Direction, layer, clock.Frame)
	img := assets.GetFrame(anim.Character, clock.Kind, rect)

	half := float64(spritesheet.TileSize) / 2
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-half, -half)
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(center.X, center.Y)
	screen.DrawImage(img, drawOp)
}
