// Package spritesheet maps animation frames of the two-row character sheets
// to pixel rectangles. It must have zero dependencies on ebiten so the
// addressing rules stay testable without a graphics context.
//
// Rects use a bottom-left origin: row 0 (the body layer) is the bottom row of
// the sheet and row 16 (the overlay layer) is the top row. Callers that blit
// with a top-left origin convert once through Rect.TopLeft.
package spritesheet

import (
	"fmt"
	"image"
)

// TileSize is the width and height of one frame in pixels.
const TileSize = 16

// SheetHeight is the height of every character sheet: one overlay row on top
// of one body row.
const SheetHeight = 2 * TileSize

// Kind identifies an animation cycle.
type Kind int

const (
	Idle Kind = iota
	IdleLoop
	Phone
	Run
)

// Kinds lists every animation kind in selection order (keys 1-4).
var Kinds = []Kind{Idle, IdleLoop, Phone, Run}

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case IdleLoop:
		return "idle_loop"
	case Phone:
		return "phone"
	case Run:
		return "run"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// FileStem is the sheet file name fragment for the kind, as in
// "Adam_idle_anim_16x16.png".
func (k Kind) FileStem() string {
	if k == IdleLoop {
		return "idle_anim"
	}
	return k.String()
}

// Direction is a facing, declared in sheet order.
type Direction int

const (
	Right Direction = iota
	Up
	Left
	Down
)

// Directions lists every facing in sheet order.
var Directions = []Direction{Right, Up, Left, Down}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Layer selects one of the two rows of a character sheet.
type Layer int

const (
	Overlay Layer = iota // hat or hair
	Body
)

func (l Layer) String() string {
	if l == Overlay {
		return "overlay"
	}
	return "body"
}

// Rect is a frame rectangle in sheet pixels with a bottom-left origin.
type Rect struct {
	X, Y, W, H int
}

// TopLeft converts r into an image.Rectangle for a sheet of the given height
// whose origin is the top-left corner.
func (r Rect) TopLeft(sheetHeight int) image.Rectangle {
	top := sheetHeight - r.Y - r.H
	return image.Rect(r.X, top, r.X+r.W, top+r.H)
}

// OutOfRangeError reports a frame index outside the cycle of its kind.
type OutOfRangeError struct {
	Kind               Kind
	Frame              int
	FramesPerDirection int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("frame %d out of range for %s (%d frames per direction)",
		e.Frame, e.Kind, e.FramesPerDirection)
}

// FramesPerDirection returns the cycle length of kind. Unknown kinds use the
// idle_loop length.
func FramesPerDirection(kind Kind) int {
	switch kind {
	case Idle:
		return 1
	case Phone:
		return 8
	case IdleLoop, Run:
		return 6
	}
	return 6
}

// HasDirections reports whether the sheet of kind carries one strip per
// facing. The phone sheet is a single strip.
func HasDirections(kind Kind) bool {
	return kind != Phone
}

// DirectionOffset returns the first frame column of dir within the sheet of
// kind, in frame units.
func DirectionOffset(kind Kind, dir Direction) int {
	if !HasDirections(kind) {
		return 0
	}
	f := FramesPerDirection(kind)
	switch dir {
	case Right:
		return 0
	case Up:
		return f
	case Left:
		return 2 * f
	case Down:
		return 3 * f
	}
	return 0
}

// FrameRect returns the pixel rect of one frame.
func FrameRect(kind Kind, dir Direction, layer Layer, frame int) (Rect, error) {
	fpd := FramesPerDirection(kind)
	if frame < 0 || frame >= fpd {
		return Rect{}, &OutOfRangeError{Kind: kind, Frame: frame, FramesPerDirection: fpd}
	}

	y := 0
	if layer == Overlay {
		y = TileSize
	}
	return Rect{
		X: (DirectionOffset(kind, dir) + frame) * TileSize,
		Y: y,
		W: TileSize,
		H: TileSize,
	}, nil
}

// MustFrameRect is FrameRect for callers that already keep the frame in
// range. It panics otherwise.
func MustFrameRect(kind Kind, dir Direction, layer Layer, frame int) Rect {
	r, err := FrameRect(kind, dir, layer, frame)
	if err != nil {
		panic(err)
	}
	return r
}

// SheetSize returns the pixel size of the sheet for kind.
func SheetSize(kind Kind) (w, h int) {
	columns := FramesPerDirection(kind)
	if HasDirections(kind) {
		columns *= len(Directions)
	}
	return columns * TileSize, SheetHeight
}
