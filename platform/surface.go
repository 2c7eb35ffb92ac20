// Package platform adapts Ebitengine's drawing, input and audio to the small
// interfaces the game core talks to.
package platform

import (
	"image/color"

	"github.com/automoto/forest-adventure/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface accepts the draw primitives the game issues each frame.
type Surface interface {
	// Fill clears the whole surface to clr.
	Fill(clr color.Color)
	FillRect(x, y, w, h float64, clr color.Color)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, x, y float64, clr color.Color, size float64)
	// DrawSprite blits the named sprite with its top-left corner at (x, y).
	DrawSprite(name string, x, y float64)
}

// SpriteSource resolves sprite names to images.
type SpriteSource interface {
	LoadImage(name string) (*ebiten.Image, error)
}

// EbitenSurface draws onto an Ebitengine screen image.
type EbitenSurface struct {
	screen  *ebiten.Image
	sprites SpriteSource
	op      ebiten.DrawImageOptions
}

func NewEbitenSurface(screen *ebiten.Image, sprites SpriteSource) *EbitenSurface {
	return &EbitenSurface{screen: screen, sprites: sprites}
}

// Reset points the surface at this frame's screen so it can be reused.
func (s *EbitenSurface) Reset(screen *ebiten.Image) {
	s.screen = screen
}

func (s *EbitenSurface) Fill(clr color.Color) {
	s.screen.Fill(clr)
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *EbitenSurface) DrawText(str string, x, y float64, clr color.Color, size float64) {
	face := fonts.Face(size)
	// text.Draw positions the baseline; shift down so (x, y) is the top-left.
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(s.screen, str, face, int(x), int(y)+ascent, clr)
}

func (s *EbitenSurface) DrawSprite(name string, x, y float64) {
	img, err := s.sprites.LoadImage(name)
	if err != nil {
		// Asset provisioning runs before the first frame; a missing sprite is a bug.
		panic(err)
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Translate(x, y)
	s.screen.DrawImage(img, &s.op)
}
