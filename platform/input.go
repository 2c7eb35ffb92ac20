package platform

import (
	"image"

	cfg "github.com/automoto/forest-adventure/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource exposes the instantaneous state of logical actions.
type InputSource interface {
	Pressed(action cfg.ActionID) bool
}

// Keyboard reads actions from the keys bound in config.Input.
type Keyboard struct{}

func (Keyboard) Pressed(action cfg.ActionID) bool {
	for _, key := range cfg.Input.Bindings[action].Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// EventHandler receives discrete input events between ticks.
type EventHandler interface {
	HandleClick(pt image.Point)
	HandlePointerMove(pt image.Point)
	HandleKey(key ebiten.Key)
}

// EventPoller turns Ebitengine's polled input into discrete events.
type EventPoller struct {
	last image.Point
	seen bool
	keys []ebiten.Key
}

// Poll delivers this frame's pointer moves, left clicks and key presses to h.
func (p *EventPoller) Poll(h EventHandler) {
	x, y := ebiten.CursorPosition()
	pt := image.Pt(x, y)
	if !p.seen || pt != p.last {
		p.seen = true
		p.last = pt
		h.HandlePointerMove(pt)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.HandleClick(pt)
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, key := range p.keys {
		h.HandleKey(key)
	}
}
