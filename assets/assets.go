package assets

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/shawarma/shared/spritesheet"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SheetLoader serves character sheets and cached frames. Sheets are read
// from Dir when present there and generated otherwise.
type SheetLoader struct {
	Dir        string
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewSheetLoader(dir string) *SheetLoader {
	return &SheetLoader{
		Dir:        dir,
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

// SheetFileName returns the on-disk name of a character sheet, e.g.
// "Adam_idle_anim_16x16.png".
func SheetFileName(character string, kind spritesheet.Kind) string {
	return fmt.Sprintf("%s_%s_%dx%d.png", character, kind.FileStem(), spritesheet.TileSize, spritesheet.TileSize)
}

func (l *SheetLoader) loadFromDir(character string, kind spritesheet.Kind) (*ebiten.Image, error) {
	if l.Dir == "" {
		return nil, fs.ErrNotExist
	}
	path := filepath.Join(l.Dir, SheetFileName(character, kind))
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sheet %s: %w", path, err)
	}

	wantW, wantH := spritesheet.SheetSize(kind)
	if b := img.Bounds(); b.Dx() < wantW || b.Dy() < wantH {
		return nil, fmt.Errorf("sheet %s is %dx%d, want at least %dx%d", path, b.Dx(), b.Dy(), wantW, wantH)
	}
	return img, nil
}

// Sheet returns the full sheet of kind for character.
func (l *SheetLoader) Sheet(character string, kind spritesheet.Kind) *ebiten.Image {
	key := character + "/" + kind.String()
	if img, ok := l.cache[key]; ok {
		return img
	}

	img, err := l.loadFromDir(character, kind)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: %v, using generated sheet", err)
		}
		img = ebiten.NewImageFromImage(GenerateSheet(character, kind))
	}
	l.cache[key] = img
	return img
}

// Frame returns a cached sub-image for one frame rect. The rect uses the
// bottom-left origin of spritesheet and is flipped here, once.
func (l *SheetLoader) Frame(character string, kind spritesheet.Kind, rect spritesheet.Rect) *ebiten.Image {
	key := fmt.Sprintf("%s/%s/%d/%d", character, kind, rect.X, rect.Y)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheet := l.Sheet(character, kind)
	frame := sheet.SubImage(rect.TopLeft(spritesheet.SheetHeight)).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

// Preload builds every sheet of the given characters so the first frames do
// not stall on texture uploads.
func (l *SheetLoader) Preload(characters []string) {
	for _, c := range characters {
		for _, k := range spritesheet.Kinds {
			l.Sheet(c, k)
		}
	}
}

// SpriteKey names a single-image sprite.
type SpriteKey int

const (
	SpriteNone SpriteKey = iota
	SpriteProjectile
	SpriteShawarma
	SpriteStation
)

var (
	sheetLoader = NewSheetLoader("")
	sprites     = map[SpriteKey]*ebiten.Image{}
)

// SetSheetDir points the shared loader at a directory of real sheets.
func SetSheetDir(dir string) {
	sheetLoader = NewSheetLoader(dir)
}

func GetFrame(character string, kind spritesheet.Kind, rect spritesheet.Rect) *ebiten.Image {
	return sheetLoader.Frame(character, kind, rect)
}

func PreloadCharacters(characters []string) {
	sheetLoader.Preload(characters)
}

// GenerateSprite draws the source pixels for key.
func GenerateSprite(key SpriteKey) image.Image {
	switch key {
	case SpriteProjectile:
		return GenerateCircle(spritesheet.TileSize, projectileColor)
	case SpriteShawarma:
		return GenerateShawarma(spritesheet.TileSize)
	case SpriteStation:
		return GenerateStation(spritesheet.TileSize)
	}
	return nil
}

// GetSprite returns the cached image for key, or nil for SpriteNone.
func GetSprite(key SpriteKey) *ebiten.Image {
	if img, ok := sprites[key]; ok {
		return img
	}
	src := GenerateSprite(key)
	if src == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	sprites[key] = img
	return img
}
