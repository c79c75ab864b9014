package components

import (
	"github.com/automoto/shawarma/assets"
	"github.com/yohamta/donburi"
)

// SpriteData is a single image drawn centered on the entity position. The
// image is resolved from Key when drawn.
type SpriteData struct {
	Key  assets.SpriteKey
	Size float64 // world units across
}

var Sprite = donburi.NewComponentType[SpriteData]()
