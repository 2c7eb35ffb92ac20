package components

import (
	"github.com/automoto/forest-adventure/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounding box.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// MoveTo places the object at (x, y) and re-registers it with its space.
func (o *ObjectData) MoveTo(x, y float64) {
	o.X = x
	o.Y = y
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
