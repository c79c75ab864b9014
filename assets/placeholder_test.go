package assets

import (
	"image/color"
	"testing"

	"github.com/automoto/shawarma/shared/spritesheet"
	"github.com/stretchr/testify/assert"
)

func TestGenerateSheetMatchesLayout(t *testing.T) {
	for _, kind := range spritesheet.Kinds {
		img := GenerateSheet("Adam", kind)
		w, h := spritesheet.SheetSize(kind)
		assert.Equal(t, w, img.Bounds().Dx(), kind.String())
		assert.Equal(t, h, img.Bounds().Dy(), kind.String())
	}
}

func TestGenerateSheetLayersDiffer(t *testing.T) {
	img := GenerateSheet("Amelia", spritesheet.Run)
	p := paletteFor("Amelia")

	// hair sits in the overlay row, shirt in the body row
	overlay := spritesheet.MustFrameRect(spritesheet.Run, spritesheet.Right, spritesheet.Overlay, 0).TopLeft(spritesheet.SheetHeight)
	body := spritesheet.MustFrameRect(spritesheet.Run, spritesheet.Right, spritesheet.Body, 0).TopLeft(spritesheet.SheetHeight)
	assert.Equal(t, p.hair, img.RGBAAt(overlay.Min.X+6, overlay.Min.Y+5))
	assert.Equal(t, p.shirt, img.RGBAAt(body.Min.X+6, body.Min.Y+3))
}

func TestPaletteFallback(t *testing.T) {
	a := paletteFor("Zed")
	b := paletteFor("Zed")
	assert.Equal(t, a, b)
	assert.NotEqual(t, paletteFor("Adam"), a)
}

func TestGenerateCircle(t *testing.T) {
	img := GenerateCircle(16, projectileColor)
	assert.Equal(t, projectileColor, img.RGBAAt(8, 8))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))
}

func TestSheetFileName(t *testing.T) {
	assert.Equal(t, "Adam_idle_anim_16x16.png", SheetFileName("Adam", spritesheet.IdleLoop))
	assert.Equal(t, "Bob_run_16x16.png", SheetFileName("Bob", spritesheet.Run))
}
