package components

import (
	"github.com/automoto/shawarma/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// ObjectData links an entity to its broadphase object. Data on the object
// points back at the entry.
type ObjectData struct {
	*resolv.Object
}

// Entry returns the entity that owns the object, if any.
func (o ObjectData) Entry() (*donburi.Entry, bool) {
	if o.Object == nil {
		return nil, false
	}
	e, ok := o.Object.Data.(*donburi.Entry)
	return e, ok
}

// CenterOn moves the object so its center sits on the screen projection of
// the world position p, then refreshes its grid cells.
func (o ObjectData) CenterOn(vp gamemath.Viewport, p math2.Vec2) {
	if o.Object == nil {
		return
	}
	s := vp.WorldToScreen(p)
	o.Object.X = s.X - o.Object.W/2
	o.Object.Y = s.Y - o.Object.H/2
	o.Object.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
