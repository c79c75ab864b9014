package assets

import (
	"hash/fnv"
	"image"
	"image/color"
	"math"

	"github.com/automoto/shawarma/shared/spritesheet"
)

type palette struct {
	skin, hair, shirt, pants color.RGBA
}

var palettes = map[string]palette{
	"Adam":   {skin: rgb(240, 200, 160), hair: rgb(90, 60, 30), shirt: rgb(60, 110, 200), pants: rgb(40, 40, 70)},
	"Alex":   {skin: rgb(200, 150, 110), hair: rgb(30, 30, 30), shirt: rgb(70, 170, 80), pants: rgb(60, 50, 40)},
	"Amelia": {skin: rgb(250, 215, 185), hair: rgb(200, 90, 40), shirt: rgb(160, 80, 190), pants: rgb(50, 50, 90)},
	"Bob":    {skin: rgb(160, 110, 80), hair: rgb(230, 230, 230), shirt: rgb(230, 140, 40), pants: rgb(30, 60, 60)},
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func paletteFor(character string) palette {
	if p, ok := palettes[character]; ok {
		return p
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(character))
	v := h.Sum32()
	shade := uint8(80 + v%120)
	return palette{
		skin:  rgb(220, 180, 150),
		hair:  rgb(shade/2, shade/2, shade/2),
		shirt: rgb(shade, uint8(v>>8)%200+40, uint8(v>>16)%200+40),
		pants: rgb(50, 50, 50),
	}
}

// GenerateSheet draws a stand-in character sheet with the exact layout of
// the real art: one overlay row above one body row, one strip of frames per
// facing. The image uses the usual top-left origin.
func GenerateSheet(character string, kind spritesheet.Kind) *image.RGBA {
	w, h := spritesheet.SheetSize(kind)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	p := paletteFor(character)
	fpd := spritesheet.FramesPerDirection(kind)

	for col := 0; col < w/spritesheet.TileSize; col++ {
		dir := spritesheet.Down
		frame := col
		if spritesheet.HasDirections(kind) {
			dir = spritesheet.Directions[col/fpd]
			frame = col % fpd
		}
		x0 := col * spritesheet.TileSize
		drawOverlayTile(img, x0, kind, dir, frame, p)
		drawBodyTile(img, x0, spritesheet.TileSize, kind, dir, frame, p)
	}
	return img
}

// The overlay tile holds the head, which sits on top of the body tile.
func drawOverlayTile(img *image.RGBA, x0 int, kind spritesheet.Kind, dir spritesheet.Direction, frame int, p palette) {
	bob := 0
	if kind == spritesheet.IdleLoop && frame%3 == 1 {
		bob = 1
	}
	fillRect(img, x0+4, 6+bob, x0+12, 16, p.skin)
	fillRect(img, x0+4, 4+bob, x0+12, 7+bob, p.hair)

	eye := rgb(20, 20, 20)
	switch dir {
	case spritesheet.Down:
		img.SetRGBA(x0+6, 10+bob, eye)
		img.SetRGBA(x0+9, 10+bob, eye)
	case spritesheet.Right:
		img.SetRGBA(x0+10, 10+bob, eye)
	case spritesheet.Left:
		img.SetRGBA(x0+5, 10+bob, eye)
	case spritesheet.Up:
		fillRect(img, x0+4, 7+bob, x0+12, 11+bob, p.hair)
	}
}

func drawBodyTile(img *image.RGBA, x0, y0 int, kind spritesheet.Kind, dir spritesheet.Direction, frame int, p palette) {
	fillRect(img, x0+4, y0, x0+12, y0+9, p.shirt)

	stride := 0
	if kind == spritesheet.Run {
		stride = []int{0, 1, 2, 0, -1, -2}[frame%6]
	}
	fillRect(img, x0+5+stride, y0+9, x0+7+stride, y0+15, p.pants)
	fillRect(img, x0+9-stride, y0+9, x0+11-stride, y0+15, p.pants)

	if kind == spritesheet.Phone {
		glow := uint8(120 + 15*frame)
		fillRect(img, x0+10, y0+1, x0+13, y0+5, rgb(glow, glow, 255))
	}
	if dir == spritesheet.Left || dir == spritesheet.Right {
		fillRect(img, x0+7, y0+2, x0+9, y0+7, p.skin)
	}
}

// GenerateCircle draws a filled disc with a one pixel soft edge, the look of
// the player's shots.
func GenerateCircle(size int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float64(size) / 2
	radius := center
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-center, float64(y)+0.5-center)
			alpha := math.Max(0, math.Min(1, radius-d))
			if alpha <= 0 {
				continue
			}
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(float64(c.R) * alpha),
				G: uint8(float64(c.G) * alpha),
				B: uint8(float64(c.B) * alpha),
				A: uint8(float64(c.A) * alpha),
			})
		}
	}
	return img
}

// GenerateShawarma draws the adversary: a wrapped roll with filling stripes.
func GenerateShawarma(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	wrap := rgb(226, 196, 140)
	meat := rgb(150, 80, 40)
	greens := rgb(90, 160, 60)
	inset := size / 5
	fillRect(img, inset, 1, size-inset, size-1, wrap)
	for y := 3; y < size-3; y += 4 {
		fillRect(img, inset+2, y, size-inset-2, y+1, meat)
		fillRect(img, inset+3, y+2, size-inset-3, y+3, greens)
	}
	return img
}

// GenerateStation draws the cooking station: a counter with a grill.
func GenerateStation(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillRect(img, 0, size/3, size, size, rgb(150, 96, 54))
	fillRect(img, 1, size/3-2, size-1, size/3, rgb(90, 90, 95))
	for x := 2; x < size-2; x += 3 {
		fillRect(img, x, size/3-4, x+1, size/3-2, rgb(255, 120, 40))
	}
	return img
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	b := img.Bounds()
	for y := max(y0, b.Min.Y); y < min(y1, b.Max.Y); y++ {
		for x := max(x0, b.Min.X); x < min(x1, b.Max.X); x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

var projectileColor = color.RGBA{R: 255, G: 204, B: 0, A: 255}
